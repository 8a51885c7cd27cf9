package bmi

import (
	"fmt"
	"strings"
)

// Thresholds holds the category boundaries. Intervals are half-open:
//
//	bmi < Underweight                        -> Underweight
//	Underweight <= bmi < NormalUpper         -> Normal weight
//	OverweightLower <= bmi < ObeseLower      -> Overweight
//	anything else                            -> Obese
//
// When NormalUpper < OverweightLower the values in between fall through to
// Obese.
type Thresholds struct {
	Name            string
	Underweight     float64
	NormalUpper     float64
	OverweightLower float64
	ObeseLower      float64
}

var (
	// DefaultThresholds keeps the calculator's historical table, including
	// the [24.9, 25) gap that classifies as Obese.
	DefaultThresholds = Thresholds{
		Name:            "legacy",
		Underweight:     18.5,
		NormalUpper:     24.9,
		OverweightLower: 25,
		ObeseLower:      29.9,
	}

	// WHOThresholds uses the contiguous 18.5 / 25 / 30 cut-offs.
	WHOThresholds = Thresholds{
		Name:            "who",
		Underweight:     18.5,
		NormalUpper:     25,
		OverweightLower: 25,
		ObeseLower:      30,
	}
)

// ParseThresholds resolves a table by name. The empty string selects the
// default table.
func ParseThresholds(name string) (Thresholds, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DefaultThresholds.Name:
		return DefaultThresholds, nil
	case WHOThresholds.Name:
		return WHOThresholds, nil
	}
	return Thresholds{}, fmt.Errorf("unknown thresholds %q: valid values are legacy, who", name)
}

// Classify maps a BMI value to its category. It depends on nothing but bmi.
func (t Thresholds) Classify(bmi float64) Category {
	if bmi < t.Underweight {
		return Underweight
	} else if t.Underweight <= bmi && bmi < t.NormalUpper {
		return NormalWeight
	} else if t.OverweightLower <= bmi && bmi < t.ObeseLower {
		return Overweight
	}
	return Obese
}

// Classify uses DefaultThresholds.
func Classify(bmi float64) Category {
	return DefaultThresholds.Classify(bmi)
}

// Range is the closed-open interval a category covers. A nil bound is
// unbounded.
type Range struct {
	Category Category
	Min      *float64
	Max      *float64
}

// Ranges describes each category's interval under t.
func (t Thresholds) Ranges() []Range {
	f := func(v float64) *float64 { return &v }
	return []Range{
		{Category: Underweight, Max: f(t.Underweight)},
		{Category: NormalWeight, Min: f(t.Underweight), Max: f(t.NormalUpper)},
		{Category: Overweight, Min: f(t.OverweightLower), Max: f(t.ObeseLower)},
		{Category: Obese, Min: f(t.ObeseLower)},
	}
}
