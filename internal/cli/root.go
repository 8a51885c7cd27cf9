// Package cli implements the cobra-based command line of the calculator.
//
// Each subcommand (calc, form, watch) lives in its own file.  This file
// defines the root command, the global flags and error reporting.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iliyamo/bmi-calculator/internal/bmi"
	"github.com/iliyamo/bmi-calculator/internal/config"
)

// Global flag variables shared across all subcommands.
var (
	// jsonOutput switches result and error output to JSON.
	jsonOutput bool

	// thresholdsName selects the classification table (legacy or who).
	// Empty falls back to BMI_THRESHOLDS.
	thresholdsName string

	// verbose enables debug logging on stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bmi",
		Short: "Body Mass Index calculator",
		Long: `bmi computes Body Mass Index from weight (kg) and height (cm) and
classifies it as Underweight, Normal weight, Overweight or Obese.

Nothing you enter is stored.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadDotEnv()
			level := "warn"
			if verbose {
				level = "debug"
			}
			config.SetupLogger(level, true)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&thresholdsName, "thresholds", "", "Classification table: legacy, who (default from BMI_THRESHOLDS, else legacy)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewCalcCommand())
	rootCmd.AddCommand(NewFormCommand())
	rootCmd.AddCommand(NewWatchCommand())

	return rootCmd
}

// Execute runs rootCmd and exits with the code carried by the error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(reportError(os.Stderr, err)))
	}
}

// reportError prints err in text or JSON form and returns the exit code.
func reportError(w io.Writer, err error) ExitCode {
	code := ExitGeneralError
	message := err.Error()
	var detail error

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		code = cliErr.Code
		message = cliErr.Message
		detail = cliErr.Err
	}

	if jsonOutput {
		errObj := map[string]interface{}{"message": message}
		if detail != nil {
			errObj["detail"] = detail.Error()
		}
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return code
	}
	if detail != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, detail)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
	return code
}

// newEvaluator resolves the thresholds flag (or BMI_THRESHOLDS) into an
// evaluator.
func newEvaluator() (*bmi.Evaluator, error) {
	name := thresholdsName
	if name == "" {
		name = os.Getenv("BMI_THRESHOLDS")
	}
	th, err := bmi.ParseThresholds(name)
	if err != nil {
		return nil, WrapCLIError(ExitInvalidInput, "invalid --thresholds", err)
	}
	return bmi.NewEvaluator(bmi.WithThresholds(th)), nil
}
