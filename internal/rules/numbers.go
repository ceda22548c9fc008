// Package rules holds stateless business rules: validators, graders and
// price calculators. Validators answer with fixed labels rather than errors;
// only unsupported categorical input (a shipping method) is an error.
package rules

const (
	InvalidTemperature = "Invalid Temperature"

	triangleYes = "Yes, it's a triangle!"
	triangleNo  = "No, it's not a triangle."
)

func IsEven(n int) bool {
	return n%2 == 0
}

// Divide returns a / b, and 0 when b is 0.
func Divide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func CheckNumberStatus(n float64) string {
	switch {
	case n > 0:
		return "Positive"
	case n < 0:
		return "Negative"
	default:
		return "Zero"
	}
}

func GetGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	default:
		return "F"
	}
}

func IsTriangle(a, b, c float64) string {
	if a+b > c && a+c > b && b+c > a {
		return triangleYes
	}
	return triangleNo
}

// CelsiusToFahrenheit converts temperatures in [-100, 100]. ok is false
// outside that range.
func CelsiusToFahrenheit(celsius float64) (fahrenheit float64, ok bool) {
	if celsius < -100 || celsius > 100 {
		return 0, false
	}
	return celsius*9/5 + 32, true
}

// FahrenheitLabel renders CelsiusToFahrenheit, using InvalidTemperature for
// out of range input.
func FahrenheitLabel(celsius float64) string {
	f, ok := CelsiusToFahrenheit(celsius)
	if !ok {
		return InvalidTemperature
	}
	return FormatNumber(f)
}
