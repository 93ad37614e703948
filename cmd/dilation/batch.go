package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/dilation-core/internal/application/handlers"
)

type batchFlags struct {
	format string
	output string
}

func newBatchCmd() *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Run dilation scenarios from JSON or CSV",
		Long:  "Runs every scenario in a structured file through the engine. Rows that fail validation are reported without aborting the run.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, csv, auto)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output format (text, json)")

	return cmd
}

func runBatch(cmd *cobra.Command, filePath string, flags batchFlags) error {
	if !isValidFormat(flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}
	if flags.output != "" && !isValidOutput(flags.output) {
		return fmt.Errorf("invalid output %q, valid outputs: %v", flags.output, validOutputs)
	}

	return withDeps(func(d *Deps) error {
		output := flags.output
		if output == "" {
			output = d.Config.Output.Format
		}

		d.Log.Debug().
			Str("file", filePath).
			Str("format", flags.format).
			Msg("running scenario batch")

		report, err := d.BatchHandler.Handle(filePath, handlers.BatchOptions{Format: flags.format})
		if err != nil {
			return fmt.Errorf("running batch: %w", err)
		}

		if output == "json" {
			return printJSON(report)
		}

		printBatchReport(report)
		return nil
	})
}

// printBatchReport renders the text view of a batch run.
func printBatchReport(report *handlers.BatchReport) {
	fmt.Printf("Run %s: %d computed", report.RunID, report.Succeeded)
	if report.AtRest > 0 {
		fmt.Printf(", %d at rest", report.AtRest)
	}
	if report.Failed > 0 {
		fmt.Printf(", %d failed", report.Failed)
	}
	fmt.Println()
	fmt.Println()

	for i, outcome := range report.Outcomes {
		label := outcome.Label
		if label == "" {
			label = fmt.Sprintf("scenario %d", i+1)
		}

		switch {
		case outcome.Error != "":
			fmt.Printf("%d. %s: error: %s\n", i+1, label, outcome.Error)
		case outcome.AtRest:
			fmt.Printf("%d. %s: at rest, no dilation\n", i+1, label)
		default:
			r := outcome.Result
			fmt.Printf("%d. %s: %s %s -> %s %s (factor %s)\n",
				i+1, label, r.OriginalTime, r.Raw.Unit, r.DilatedTime, r.Raw.Unit, r.DilationFactor)
		}
	}
}

func isValidFormat(format string) bool {
	for _, valid := range validFormats {
		if format == valid {
			return true
		}
	}
	return false
}
