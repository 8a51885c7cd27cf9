// Package form parses the four fields every front end collects (name, age,
// weight, height).  It owns the presentation-level rules: age is a whole
// number in 0..120 and numeric fields must parse.  The sign of weight and
// height is left to the bmi package.
package form

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	MinAge = 0
	MaxAge = 120
)

var (
	ErrAge    = errors.New("Age must be a whole number between 0 and 120")
	ErrWeight = errors.New("Weight must be a number")
	ErrHeight = errors.New("Height must be a number")
)

// Input is one submission.
type Input struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

// Validate checks the age range.
func (in Input) Validate() error {
	if in.Age < MinAge || in.Age > MaxAge {
		return ErrAge
	}
	return nil
}

// Parse converts raw field values.  Empty numeric fields count as zero,
// matching the defaults shown in the form.
func Parse(name, age, weight, height string) (Input, error) {
	in := Input{Name: strings.TrimSpace(name)}

	if s := strings.TrimSpace(age); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return in, ErrAge
		}
		in.Age = n
	}
	var err error
	if in.Weight, err = ParseNumber(weight, ErrWeight); err != nil {
		return in, err
	}
	if in.Height, err = ParseNumber(height, ErrHeight); err != nil {
		return in, err
	}
	return in, in.Validate()
}

// ParseNumber parses raw as a finite float, returning fail otherwise.
func ParseNumber(raw string, fail error) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fail
	}
	// NaN and infinities would slip past the sign check.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fail
	}
	return f, nil
}
