package bmi

// Measurement is a validated weight (kilograms) and height (centimeters)
// pair. Both values are always >= 0: the constructor and the setters reject
// negatives before anything is stored.
type Measurement struct {
	weight float64
	height float64
}

// NewMeasurement validates both values and returns the pair.
func NewMeasurement(weight, height float64) (Measurement, error) {
	var m Measurement
	if err := m.SetWeight(weight); err != nil {
		return Measurement{}, err
	}
	if err := m.SetHeight(height); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

// Weight returns the weight in kilograms.
func (m Measurement) Weight() float64 { return m.weight }

// Height returns the height in centimeters.
func (m Measurement) Height() float64 { return m.height }

// SetWeight stores v unless it is negative, in which case the stored value
// is left unchanged.
func (m *Measurement) SetWeight(v float64) error {
	if v < 0 {
		return &MeasurementError{Field: FieldWeight, Value: v}
	}
	m.weight = v
	return nil
}

// SetHeight stores v unless it is negative, in which case the stored value
// is left unchanged.
func (m *Measurement) SetHeight(v float64) error {
	if v < 0 {
		return &MeasurementError{Field: FieldHeight, Value: v}
	}
	m.height = v
	return nil
}

// BMI computes the index with the standard formula.
func (m Measurement) BMI() float64 {
	return Standard{}.Compute(m)
}
