// Command boundint evaluates domain-typed bounded integer operations and
// runs scenario files.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/boundint/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
