package main

import (
	"fmt"

	stdschema "github.com/reoring/stdschema"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of stdschema",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stdschema version %s (contract v%d)\n", version, stdschema.Version)
		},
	}
}
