package bmi

// Person wraps a measurement with a display name and an age. Neither name
// nor age takes part in the computation.
type Person struct {
	Name string
	Age  int
	Measurement
}

// NewPerson builds a person, validating weight and height.
func NewPerson(name string, age int, weight, height float64) (*Person, error) {
	m, err := NewMeasurement(weight, height)
	if err != nil {
		return nil, err
	}
	return &Person{Name: name, Age: age, Measurement: m}, nil
}
