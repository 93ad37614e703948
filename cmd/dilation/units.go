package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/dilation-core/internal/domain/entities"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List supported time units",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnits()
		},
	}
}

func runUnits() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UNIT\tSECONDS")
	for _, unit := range entities.AllTimeUnits {
		fmt.Fprintf(w, "%s\t%.0f\n", unit, unit.Seconds())
	}
	return w.Flush()
}
