// semrel - Conventional commit release automation
//
// Computes the next semantic version from commit history, renders the
// changelog and runs the release pipeline (commit, tag, push, publish).
package main

import (
	"os"

	"github.com/ariel-frischer/semrel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
