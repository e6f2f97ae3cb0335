// SPDX-License-Identifier: MPL-2.0

package main

import cmd "loadstone-cli/cmd/lsbuild"

func main() {
	cmd.Execute()
}
