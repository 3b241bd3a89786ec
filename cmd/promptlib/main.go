// Package main is the entry point for the promptlib CLI.
package main

import (
	"fmt"
	"os"

	"github.com/promptlib/cli/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Documented user errors are logged by the command and return nil,
		// so anything reaching here is unexpected.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
