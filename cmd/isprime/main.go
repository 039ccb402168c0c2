package main

import (
	"os"

	"github.com/isprime/isprime/cmd"
)

func main() {
	// Set up output streams.
	stdout := cmd.NewOutput(os.Stdout)
	stderr := cmd.NewOutput(os.Stderr)

	// Create the root command.
	rootCommand := newRootCommand(os.Args[0], os.Args[1:], stdout, stderr)

	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		cmd.Error(stderr, err)
		os.Exit(1)
	}
}
