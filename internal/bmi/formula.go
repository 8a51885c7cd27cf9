package bmi

// Formula computes a body mass index from a validated measurement.
// Variants (pediatric, age-adjusted) plug in here and are chosen when the
// Evaluator is built.
type Formula interface {
	Compute(m Measurement) float64
}

// Standard is weight_kg / height_m^2 with height given in centimeters.
type Standard struct{}

// Compute returns 0 when height is 0 instead of dividing by zero. The
// result is not rounded.
func (Standard) Compute(m Measurement) float64 {
	if m.height == 0 {
		return 0
	}
	meters := m.height / 100
	return m.weight / (meters * meters)
}
