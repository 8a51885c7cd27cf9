package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iliyamo/bmi-calculator/internal/bmi"
	"github.com/iliyamo/bmi-calculator/internal/form"
)

// calcFlags holds the raw flag values of the calc command.  They stay
// strings so that parsing errors read the same as in the web form.
type calcFlags struct {
	name   string
	age    string
	weight string
	height string
}

// NewCalcCommand creates the "calc" command.
func NewCalcCommand() *cobra.Command {
	flags := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute and classify a BMI",
		Long: `Compute a BMI once and print it with its category.

Examples:
  bmi calc --weight 70 --height 175
  bmi calc --name Ada --age 36 --weight 60 --height 165 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := newEvaluator()
			if err != nil {
				return err
			}
			return runCalc(cmd.OutOrStdout(), ev, flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "Name shown with the result")
	cmd.Flags().StringVar(&flags.age, "age", "0", "Age in years (0-120)")
	cmd.Flags().StringVar(&flags.weight, "weight", "", "Weight in kilograms")
	cmd.Flags().StringVar(&flags.height, "height", "", "Height in centimeters")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

type calcOutput struct {
	Name     string  `json:"name,omitempty"`
	Age      int     `json:"age"`
	BMI      float64 `json:"bmi"`
	Display  string  `json:"bmi_display"`
	Category string  `json:"category"`
	Message  string  `json:"message"`
	Severity string  `json:"severity"`
}

func runCalc(w io.Writer, ev *bmi.Evaluator, flags *calcFlags) error {
	in, err := form.Parse(flags.name, flags.age, flags.weight, flags.height)
	if err != nil {
		return WrapCLIError(ExitInvalidInput, err.Error(), nil)
	}

	res, err := ev.EvaluateInput(in.Name, in.Age, in.Weight, in.Height)
	if errors.Is(err, bmi.ErrInvalidMeasurement) {
		return WrapCLIError(ExitInvalidInput, err.Error(), nil)
	} else if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(calcOutput{
			Name:     res.Name,
			Age:      res.Age,
			BMI:      res.BMI,
			Display:  res.Display(),
			Category: res.Category.String(),
			Message:  res.Category.Message(),
			Severity: string(res.Category.Severity()),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if res.Name != "" {
		fmt.Fprintf(w, "%s, your BMI is: %s\n", res.Name, res.Display())
	} else {
		fmt.Fprintf(w, "Your BMI is: %s\n", res.Display())
	}
	fmt.Fprintf(w, "[%s] %s\n", res.Category.Severity(), res.Category.Message())
	return nil
}
