package rules

func VerifyAge(age int) string {
	if age >= 18 && age <= 65 {
		return "Eligible"
	}
	return "Not Eligible"
}

func CheckFlightEligibility(age int, frequentFlyer bool) string {
	if (age >= 18 && age <= 65) || frequentFlyer {
		return "Eligible to Book"
	}
	return "Not Eligible to Book"
}

func CheckLoanEligibility(income float64, creditScore int) string {
	switch {
	case income < 30000:
		return "Not Eligible"
	case income <= 60000:
		if creditScore > 700 {
			return "Standard Loan"
		}
		return "Secured Loan"
	default:
		if creditScore > 750 {
			return "Premium Loan"
		}
		return "Standard Loan"
	}
}

func GradeQuiz(correct, incorrect int) string {
	switch {
	case correct >= 7 && incorrect <= 2:
		return "Pass"
	case correct >= 5 && incorrect <= 3:
		return "Conditional Pass"
	default:
		return "Fail"
	}
}

func GetWeatherAdvisory(temperature, humidity float64) string {
	switch {
	case temperature > 30 && humidity > 70:
		return "High Temperature and Humidity. Stay Hydrated."
	case temperature < 0:
		return "Low Temperature. Bundle Up!"
	default:
		return "No Specific Advisory"
	}
}
