package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/dilation-core/internal/application/handlers"
	"github.com/ersonp/dilation-core/internal/domain/entities"
)

type calcFlags struct {
	time     float64
	unit     string
	velocity float64
	output   string
}

func newCalcCmd() *cobra.Command {
	var flags calcFlags

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute time dilation for a duration and velocity",
		Long:  "Computes the Lorentz factor and dilated duration for a traveler moving at the given velocity in meters per second.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, flags)
		},
	}

	cmd.Flags().Float64VarP(&flags.time, "time", "t", 1, "Duration experienced by the traveler")
	cmd.Flags().StringVarP(&flags.unit, "unit", "u", "", "Time unit (seconds, minutes, hours, days, years)")
	cmd.Flags().Float64VarP(&flags.velocity, "velocity", "v", 0, "Velocity in meters per second")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output format (text, json)")
	_ = cmd.MarkFlagRequired("velocity")

	return cmd
}

func runCalc(cmd *cobra.Command, flags calcFlags) error {
	if flags.output != "" && !isValidOutput(flags.output) {
		return fmt.Errorf("invalid output %q, valid outputs: %v", flags.output, validOutputs)
	}

	return withDeps(func(d *Deps) error {
		unitName := flags.unit
		if unitName == "" {
			unitName = d.Config.Output.DefaultUnit
		}
		unit, err := entities.ParseTimeUnit(unitName)
		if err != nil {
			return err
		}

		output := flags.output
		if output == "" {
			output = d.Config.Output.Format
		}

		d.Log.Debug().
			Float64("time", flags.time).
			Str("unit", string(unit)).
			Float64("velocity", flags.velocity).
			Msg("computing dilation")

		result, err := d.CalculateHandler.Handle(entities.DilationInput{
			Time:     flags.time,
			Unit:     unit,
			Velocity: flags.velocity,
		})
		if err != nil {
			return err
		}

		if result == nil {
			fmt.Println("Velocity is zero: nothing to compute.")
			return nil
		}

		if output == "json" {
			return printJSON(result)
		}

		printCalculation(result)
		return nil
	})
}

// printCalculation renders the text view of a calculation.
func printCalculation(r *handlers.CalculationResult) {
	fmt.Printf("Original time:   %s %s\n", r.OriginalTime, r.Raw.Unit)
	fmt.Printf("Dilated time:    %s %s\n", r.DilatedTime, r.Raw.Unit)
	fmt.Printf("Dilation factor: %s\n", r.DilationFactor)
	fmt.Printf("Speed:           %s%% of c\n", r.SpeedRatioPercent)
}

// printJSON renders a result as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func isValidOutput(output string) bool {
	for _, valid := range validOutputs {
		if output == valid {
			return true
		}
	}
	return false
}
