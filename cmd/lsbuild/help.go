// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newHelpCommand replaces cobra's default help command so that unknown
// topics and excessive arguments fail with exit status 1 instead of
// succeeding silently.
func newHelpCommand(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "help [SUBCOMMAND]",
		Short: "Print help information",
		Long:  "Print general info or help about a specific command.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return root.Help()
			case 1:
				topic := findCommand(root, args[0])
				if topic == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Error: help: unknown command `%s`\n", args[0])
					return &ExitError{Code: 1}
				}
				return topic.Help()
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "Error: help: excessive arguments")
				return &ExitError{Code: 1}
			}
		},
	}
}

// findCommand looks a topic up among the root's registered commands.
func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, sub := range root.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return sub
		}
	}
	return nil
}
