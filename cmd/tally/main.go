// Command tally manages durable named counters stored in a single SQLite
// file. Exit codes: 0 success, 1 counter not found (get), 2 command error.
package main

import (
	"fmt"
	"os"

	"github.com/tallydb/tally/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
