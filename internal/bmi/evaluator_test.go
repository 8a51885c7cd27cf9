package bmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateInputScenarios(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		wantBMI  float64
		wantCat  Category
		wantShow string
	}{
		{name: "average adult", weight: 70, height: 175, wantBMI: 22.857142857142858, wantCat: NormalWeight, wantShow: "22.86"},
		{name: "light adult", weight: 50, height: 160, wantBMI: 19.53125, wantCat: NormalWeight, wantShow: "19.53"},
		{name: "heavy adult", weight: 90, height: 170, wantBMI: 31.14186851211073, wantCat: Obese, wantShow: "31.14"},
		{name: "zero height", weight: 60, height: 0, wantBMI: 0, wantCat: Underweight, wantShow: "0.00"},
	}

	e := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.EvaluateInput("Sam", 30, tt.weight, tt.height)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantBMI, res.BMI, 1e-9)
			assert.Equal(t, tt.wantCat, res.Category)
			assert.Equal(t, tt.wantShow, res.Display())
			assert.Equal(t, "Sam", res.Name)
			assert.Equal(t, 30, res.Age)
		})
	}
}

func TestEvaluateInputNegativeWeight(t *testing.T) {
	res, err := NewEvaluator().EvaluateInput("Sam", 30, -5, 170)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
	assert.EqualError(t, err, "Weight cannot be negative")
	assert.Equal(t, Result{}, res)
}

func TestEvaluateInputNonFiniteBMI(t *testing.T) {
	tests := []struct {
		name           string
		weight, height float64
	}{
		{"overflow", 1e308, 0.0001},
		{"height squares to zero", 0, 1e-200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewEvaluator().EvaluateInput("Sam", 30, tt.weight, tt.height)
			require.ErrorIs(t, err, ErrInvalidMeasurement)
			assert.EqualError(t, err, MsgHeightTooSmall)

			var me *MeasurementError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, FieldHeight, me.Field)
			assert.Equal(t, Result{}, res)
		})
	}
}

func TestEvaluateIgnoresNameAndAge(t *testing.T) {
	e := NewEvaluator()
	a, err := e.EvaluateInput("A", 1, 82, 181)
	require.NoError(t, err)
	b, err := e.EvaluateInput("Somebody else", 119, 82, 181)
	require.NoError(t, err)

	assert.Equal(t, a.BMI, b.BMI)
	assert.Equal(t, a.Category, b.Category)
}

type fixedFormula float64

func (f fixedFormula) Compute(Measurement) float64 { return float64(f) }

func TestEvaluatorOptions(t *testing.T) {
	e := NewEvaluator(WithFormula(fixedFormula(24.95)), WithThresholds(WHOThresholds))
	res, err := e.EvaluateInput("", 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 24.95, res.BMI)
	assert.Equal(t, NormalWeight, res.Category)
	assert.Equal(t, WHOThresholds, e.Thresholds())

	res, err = NewEvaluator(WithFormula(fixedFormula(24.95))).EvaluateInput("", 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, Obese, res.Category)
}
