package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iliyamo/bmi-calculator/internal/bmi"
	"github.com/iliyamo/bmi-calculator/internal/config"
	"github.com/iliyamo/bmi-calculator/internal/queue"
	"github.com/iliyamo/bmi-calculator/internal/tui"
)

// NewFormCommand creates the "form" command, which opens the interactive
// terminal form.
func NewFormCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Open the interactive BMI form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := newEvaluator()
			if err != nil {
				return err
			}
			pub := queue.NewPublisher(config.LoadQueueConfig())
			if err := tui.Run(ev, publishInBackground(cmd.Context(), pub, ev.Thresholds().Name)); err != nil {
				return WrapCLIError(ExitGeneralError, "terminal form failed", err)
			}
			return nil
		},
	}
}

// publishInBackground returns an evaluation hook that hands each result to
// pub on its own goroutine, so a slow broker never stalls the form.
func publishInBackground(ctx context.Context, pub queue.Publisher, thresholds string) func(bmi.Result) {
	return func(res bmi.Result) {
		event := queue.NewEvaluationEvent(res, thresholds, "tui", time.Now())
		go func() {
			ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := pub.Publish(ctx, event); err != nil {
				log.Debug().Err(err).Msg("publish evaluation event failed")
			}
		}()
	}
}
