// Package queue defines message payloads exchanged over the message broker
// and the publisher/consumer pair that moves them.
package queue

import (
    "time"

    "github.com/iliyamo/bmi-calculator/internal/bmi"
)

// EvaluationEvent is published after a successful evaluation.  It carries
// the outcome only: no name, age, weight or height leaves the process.
type EvaluationEvent struct {
    BMI         float64 `json:"bmi"`
    Category    string  `json:"category"`
    Severity    string  `json:"severity"`
    Thresholds  string  `json:"thresholds"`
    Source      string  `json:"source"` // "web", "api", "cli", "tui"
    EvaluatedAt string  `json:"evaluated_at"`
}

// NewEvaluationEvent builds the event for res.
func NewEvaluationEvent(res bmi.Result, thresholds, source string, at time.Time) EvaluationEvent {
    return EvaluationEvent{
        BMI:         res.BMI,
        Category:    res.Category.String(),
        Severity:    string(res.Category.Severity()),
        Thresholds:  thresholds,
        Source:      source,
        EvaluatedAt: at.UTC().Format(time.RFC3339),
    }
}
