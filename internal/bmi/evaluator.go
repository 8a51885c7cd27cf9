package bmi

import (
	"fmt"
	"math"
)

// Result is a computed, classified BMI. It is never stored.
type Result struct {
	Name     string
	Age      int
	BMI      float64
	Category Category
}

// Display formats the BMI with two decimals.
func (r Result) Display() string {
	return fmt.Sprintf("%.2f", r.BMI)
}

// Evaluator binds a formula to a threshold table. It holds no mutable state
// and can be shared between goroutines.
type Evaluator struct {
	formula    Formula
	thresholds Thresholds
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithFormula replaces the Standard formula.
func WithFormula(f Formula) Option {
	return func(e *Evaluator) { e.formula = f }
}

// WithThresholds replaces DefaultThresholds.
func WithThresholds(t Thresholds) Option {
	return func(e *Evaluator) { e.thresholds = t }
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{formula: Standard{}, thresholds: DefaultThresholds}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Thresholds returns the table used for classification.
func (e *Evaluator) Thresholds() Thresholds { return e.thresholds }

// Evaluate computes and classifies p's BMI.
func (e *Evaluator) Evaluate(p *Person) Result {
	v := e.formula.Compute(p.Measurement)
	return Result{
		Name:     p.Name,
		Age:      p.Age,
		BMI:      v,
		Category: e.thresholds.Classify(v),
	}
}

// EvaluateInput builds a fresh Person from raw input and evaluates it. On a
// rejected measurement nothing is computed and the error matches
// ErrInvalidMeasurement. A height so small that the BMI overflows is
// rejected the same way.
func (e *Evaluator) EvaluateInput(name string, age int, weight, height float64) (Result, error) {
	p, err := NewPerson(name, age, weight, height)
	if err != nil {
		return Result{}, err
	}
	res := e.Evaluate(p)
	if math.IsNaN(res.BMI) || math.IsInf(res.BMI, 0) {
		return Result{}, &MeasurementError{Field: FieldHeight, Value: height, Reason: MsgHeightTooSmall}
	}
	return res, nil
}
