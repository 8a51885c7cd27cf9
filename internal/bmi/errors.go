package bmi

import "errors"

// ErrInvalidMeasurement is the sentinel matched by every rejected weight or
// height assignment. Callers compare with errors.Is and use errors.As on
// *MeasurementError when they need the offending field.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// MsgHeightTooSmall is the message used when a positive height is too small
// to produce a finite BMI for the given weight.
const MsgHeightTooSmall = "Height is too small for the given weight"

// Field names a measurement attribute.
type Field string

const (
	FieldWeight Field = "weight"
	FieldHeight Field = "height"
)

// MeasurementError reports which field was rejected and why. Reason
// overrides the default "cannot be negative" message.
type MeasurementError struct {
	Field  Field
	Value  float64
	Reason string
}

func (e *MeasurementError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	switch e.Field {
	case FieldWeight:
		return "Weight cannot be negative"
	case FieldHeight:
		return "Height cannot be negative"
	}
	return string(e.Field) + " cannot be negative"
}

// Is lets errors.Is(err, ErrInvalidMeasurement) succeed.
func (e *MeasurementError) Is(target error) bool {
	return target == ErrInvalidMeasurement
}
