// Command portfmt formats, lints, and scans port Makefiles.
package main

import (
	"fmt"
	"os"

	"github.com/Jehops/portfmt/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd()
	if err := root.Execute(); err != nil {
		if code, ok := cli.ExitCode(err); ok {
			if code != 0 {
				fmt.Fprintln(os.Stderr, cli.FormatError(err))
			}
			return code
		}
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		return 1
	}
	return 0
}
