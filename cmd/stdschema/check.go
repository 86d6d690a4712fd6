package main

import (
	"github.com/spf13/cobra"

	"github.com/reoring/stdschema/internal/cli"
	"github.com/reoring/stdschema/internal/logging"
)

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check --schema FILE [FILE...]",
		Short: "Validate documents against a schema file",
		Long: `Decodes each JSON or YAML document (picked by extension, or --input-format)
and validates it against the schema definition. Use "-" to read stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}

	checkCmd.Flags().StringP("schema", "s", "", "Schema definition file (YAML or JSON)")
	checkCmd.Flags().StringP("format", "f", cli.FormatText, "Report format (text, json)")
	checkCmd.Flags().String("input-format", "", "Force input format (json, yaml)")
	checkCmd.Flags().Int64("max-bytes", 0, "Reject documents larger than this many bytes (0 = unlimited)")
	_ = checkCmd.MarkFlagRequired("schema")
	return checkCmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	logger, err := logging.New(level)
	if err != nil {
		return err
	}
	schemaPath, _ := cmd.Flags().GetString("schema")
	format, _ := cmd.Flags().GetString("format")
	inputFormat, _ := cmd.Flags().GetString("input-format")
	maxBytes, _ := cmd.Flags().GetInt64("max-bytes")

	reports, err := cli.Check(cli.CheckOptions{
		SchemaPath:  schemaPath,
		InputFormat: inputFormat,
		MaxBytes:    maxBytes,
		Files:       args,
		Stdin:       cmd.InOrStdin(),
	}, logger)
	if err != nil {
		return err
	}
	if err := cli.WriteReports(cmd.OutOrStdout(), format, reports); err != nil {
		return err
	}
	if cli.Failed(reports) {
		return errIssuesFound
	}
	return nil
}
