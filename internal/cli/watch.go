package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iliyamo/bmi-calculator/internal/config"
	"github.com/iliyamo/bmi-calculator/internal/queue"
)

// NewWatchCommand creates the "watch" command.  It follows the evaluation
// event queue and prints one line per event until interrupted.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print evaluation events as they are published",
		Long: `Consume the evaluation event queue (RABBITMQ_URL, QUEUE_NAME) and print
each event.  Events carry the BMI and its category only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg := config.LoadQueueConfig()
			err := queue.Consume(ctx, cfg.URL, cfg.Queue, printEvent(cmd.OutOrStdout()))
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
}

func printEvent(w io.Writer) queue.HandlerFunc {
	return func(ev queue.EvaluationEvent) error {
		if jsonOutput {
			data, err := json.Marshal(ev)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(data))
			return err
		}
		_, err := fmt.Fprintf(w, "%s  %-7s %-13s %6.2f  (%s, %s)\n",
			ev.EvaluatedAt, ev.Severity, ev.Category, ev.BMI, ev.Source, ev.Thresholds)
		return err
	}
}
