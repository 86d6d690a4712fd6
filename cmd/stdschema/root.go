package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errIssuesFound makes Execute exit with status 1 without printing anything
// beyond the report.
var errIssuesFound = errors.New("validation issues found")

// newRootCmd builds a fresh command tree so flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "stdschema",
		Short:         "Validate JSON and YAML documents against schema files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the command tree and sets the exit status: 1 when documents
// fail validation and 2 for any other error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errIssuesFound) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
