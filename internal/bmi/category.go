package bmi

// Category is one of the four ordinal BMI classes.
type Category int

const (
	Underweight Category = iota
	NormalWeight
	Overweight
	Obese
)

// AllCategories lists the categories in ascending order.
var AllCategories = []Category{Underweight, NormalWeight, Overweight, Obese}

func (c Category) String() string {
	switch c {
	case Underweight:
		return "Underweight"
	case NormalWeight:
		return "Normal weight"
	case Overweight:
		return "Overweight"
	case Obese:
		return "Obese"
	}
	return "Unknown"
}

// Message is the sentence shown to the user next to the result.
func (c Category) Message() string {
	switch c {
	case Underweight:
		return "You are underweight."
	case NormalWeight:
		return "You have a normal weight."
	case Overweight:
		return "You are overweight."
	case Obese:
		return "You are obese."
	}
	return ""
}

// Severity is the display tier used by the presentation layers.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func (c Category) Severity() Severity {
	switch c {
	case Underweight:
		return SeverityInfo
	case NormalWeight:
		return SeveritySuccess
	case Overweight:
		return SeverityWarning
	}
	return SeverityError
}
