package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckyComet55/whitebox-sim/internal/rules"
)

func TestNumbers(t *testing.T) {
	assert.True(t, rules.IsEven(0))
	assert.False(t, rules.IsEven(7))
	assert.True(t, rules.IsEven(-4))

	assert.Equal(t, 5.0, rules.Divide(10, 2))
	assert.Equal(t, 0.0, rules.Divide(10, 0))

	assert.Equal(t, "Positive", rules.CheckNumberStatus(5))
	assert.Equal(t, "Negative", rules.CheckNumberStatus(-3))
	assert.Equal(t, "Zero", rules.CheckNumberStatus(0))
}

func TestGetGrade(t *testing.T) {
	tests := map[float64]string{95: "A", 90: "A", 85: "B", 80: "B", 75: "C", 70: "C", 69.9: "F", 65: "F"}
	for score, want := range tests {
		assert.Equal(t, want, rules.GetGrade(score), "score %v", score)
	}
}

func TestIsTriangle(t *testing.T) {
	assert.Equal(t, "Yes, it's a triangle!", rules.IsTriangle(3, 4, 5))
	assert.Equal(t, "No, it's not a triangle.", rules.IsTriangle(3, 4, 7))
	assert.Equal(t, "No, it's not a triangle.", rules.IsTriangle(2, 3, 1))
	assert.Equal(t, "No, it's not a triangle.", rules.IsTriangle(2, 1, 1))
}

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		celsius float64
		want    float64
	}{
		{0, 32},
		{30, 86},
		{-20, -4},
		{-100, -148},
		{100, 212},
	}
	for _, tt := range tests {
		got, ok := rules.CelsiusToFahrenheit(tt.celsius)
		require.True(t, ok, "celsius %v", tt.celsius)
		assert.Equal(t, tt.want, got)
	}

	for _, c := range []float64{-101, 101} {
		_, ok := rules.CelsiusToFahrenheit(c)
		assert.False(t, ok)
		assert.Equal(t, "Invalid Temperature", rules.FahrenheitLabel(c))
	}
	assert.Equal(t, "212", rules.FahrenheitLabel(100))
	assert.Equal(t, "1000000", rules.FormatNumber(1e6))
	assert.Equal(t, "0.5", rules.FormatNumber(0.5))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"short", "Ab1!", false},
		{"no uppercase", "abcdefg1!", false},
		{"no lowercase", "ABCDEFG1!", false},
		{"no digit", "ABCDEFGh!", false},
		{"no special", "ABCDEFGh1", false},
		{"valid", "Abcdefg1!", true},
		{"seven multibyte characters", "Äbcde1!", false},
		{"eight multibyte characters", "Äbcdéf1!", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.ValidatePassword(tt.password))
		})
	}
}

func TestCalculateTotalDiscount(t *testing.T) {
	assert.Equal(t, 0.0, rules.CalculateTotalDiscount(50))
	assert.Equal(t, 0.0, rules.CalculateTotalDiscount(99.99))
	assert.Equal(t, 10.0, rules.CalculateTotalDiscount(100))
	assert.Equal(t, 20.0, rules.CalculateTotalDiscount(200))
	assert.Equal(t, 50.0, rules.CalculateTotalDiscount(500))
	assert.Equal(t, 120.0, rules.CalculateTotalDiscount(600))
}

func TestCalculateOrderTotal(t *testing.T) {
	assert.Zero(t, rules.CalculateOrderTotal(nil))
	assert.Equal(t, 100.0, rules.CalculateOrderTotal([]rules.OrderItem{{Quantity: 1, Price: 100}}))
	assert.InDelta(t, 570.0, rules.CalculateOrderTotal([]rules.OrderItem{{Quantity: 6, Price: 100}}), 1e-9)
	assert.InDelta(t, 990.0, rules.CalculateOrderTotal([]rules.OrderItem{{Quantity: 11, Price: 100}}), 1e-9)

	items := []rules.OrderItem{
		{Quantity: 1, Price: 100},
		{Quantity: 6, Price: 100},
		{Quantity: 11, Price: 100},
	}
	assert.InDelta(t, 1660.0, rules.CalculateOrderTotal(items), 1e-9)
}

func TestCalculateItemsShippingCost(t *testing.T) {
	light := []rules.ShipmentItem{{Weight: 2}, {Weight: 3}}
	medium := []rules.ShipmentItem{{Weight: 3}, {Weight: 7}}
	heavy := []rules.ShipmentItem{{Weight: 6}, {Weight: 7}}

	tests := []struct {
		items  []rules.ShipmentItem
		method rules.ShippingMethod
		want   float64
	}{
		{light, rules.ShippingStandard, 10},
		{medium, rules.ShippingStandard, 15},
		{heavy, rules.ShippingStandard, 20},
		{light, rules.ShippingExpress, 20},
		{medium, rules.ShippingExpress, 30},
		{heavy, rules.ShippingExpress, 40},
	}
	for _, tt := range tests {
		got, err := rules.CalculateItemsShippingCost(tt.items, tt.method)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := rules.CalculateItemsShippingCost(light, "invalid")
	require.ErrorIs(t, err, rules.ErrInvalidShippingMethod)
}

func TestValidateLogin(t *testing.T) {
	assert.Equal(t, "Login Successful", rules.ValidateLogin("username", "password123"))
	assert.Equal(t, "Login Failed", rules.ValidateLogin("user", "password123"))
	assert.Equal(t, "Login Failed", rules.ValidateLogin("thisisaverylongusername", "password123"))
	assert.Equal(t, "Login Failed", rules.ValidateLogin("username", "pass"))
	assert.Equal(t, "Login Failed", rules.ValidateLogin("username", "thisisaverylongpassword"))
	assert.Equal(t, "Login Failed", rules.ValidateLogin("josé", "password1"))
	assert.Equal(t, "Login Successful", rules.ValidateLogin("josé1", "pässwörd"))
	assert.Equal(t, "Login Successful", rules.ValidateLogin(strings.Repeat("é", 20), strings.Repeat("ü", 15)))
}

func TestVerifyAge(t *testing.T) {
	for age, want := range map[int]string{30: "Eligible", 17: "Not Eligible", 66: "Not Eligible", 18: "Eligible", 65: "Eligible"} {
		assert.Equal(t, want, rules.VerifyAge(age), "age %d", age)
	}
}

func TestCategorizeProduct(t *testing.T) {
	assert.Equal(t, "Category A", rules.CategorizeProduct(25))
	assert.Equal(t, "Category B", rules.CategorizeProduct(75))
	assert.Equal(t, "Category C", rules.CategorizeProduct(150))
	assert.Equal(t, "Category D", rules.CategorizeProduct(250))
	assert.Equal(t, "Category D", rules.CategorizeProduct(5))
}

func TestValidateEmail(t *testing.T) {
	assert.Equal(t, "Valid Email", rules.ValidateEmail("test@example.com"))
	assert.Equal(t, "Valid Email", rules.ValidateEmail("a@b.c"))
	assert.Equal(t, "Invalid Email", rules.ValidateEmail("a@b"))
	assert.Equal(t, "Invalid Email", rules.ValidateEmail(strings.Repeat("a", 46)+"@b.com"))
	assert.Equal(t, "Invalid Email", rules.ValidateEmail("test.example.com"))
	assert.Equal(t, "Invalid Email", rules.ValidateEmail("test@examplecom"))
	assert.Equal(t, "Valid Email", rules.ValidateEmail(strings.Repeat("é", 39)+"@b.com"))
	assert.Equal(t, "Invalid Email", rules.ValidateEmail(strings.Repeat("é", 40)+"@b.com"))
}

func TestValidateCreditCard(t *testing.T) {
	assert.Equal(t, "Valid Card", rules.ValidateCreditCard("1234567890123"))
	assert.Equal(t, "Valid Card", rules.ValidateCreditCard("1234567890123456"))
	assert.Equal(t, "Invalid Card", rules.ValidateCreditCard("123456789012"))
	assert.Equal(t, "Invalid Card", rules.ValidateCreditCard("12345678901234567"))
	assert.Equal(t, "Invalid Card", rules.ValidateCreditCard("1234567890123A"))
	assert.Equal(t, "Invalid Card", rules.ValidateCreditCard("123456789012٣"))
}

func TestValidateDate(t *testing.T) {
	assert.Equal(t, "Valid Date", rules.ValidateDate(2000, 12, 31))
	assert.Equal(t, "Valid Date", rules.ValidateDate(2001, 2, 31))

	invalid := [][3]int{
		{1899, 12, 31},
		{2101, 12, 31},
		{2000, 0, 31},
		{2000, 13, 31},
		{2000, 12, 0},
		{2000, 12, 32},
	}
	for _, d := range invalid {
		assert.Equal(t, "Invalid Date", rules.ValidateDate(d[0], d[1], d[2]), "date %v", d)
	}
}

func TestCheckFlightEligibility(t *testing.T) {
	assert.Equal(t, "Eligible to Book", rules.CheckFlightEligibility(30, false))
	assert.Equal(t, "Eligible to Book", rules.CheckFlightEligibility(70, true))
	assert.Equal(t, "Not Eligible to Book", rules.CheckFlightEligibility(17, false))
	assert.Equal(t, "Not Eligible to Book", rules.CheckFlightEligibility(66, false))
}

func TestValidateURL(t *testing.T) {
	assert.Equal(t, "Valid URL", rules.ValidateURL("http://example.com"))
	assert.Equal(t, "Valid URL", rules.ValidateURL("https://example.com"))
	assert.Equal(t, "Invalid URL", rules.ValidateURL("ftp://example.com"))
	assert.Equal(t, "Invalid URL", rules.ValidateURL("http://"+strings.Repeat("a", 250)+".com"))
	assert.Equal(t, "Valid URL", rules.ValidateURL("http://"+strings.Repeat("ü", 244)+".com"))
}

func TestCalculateQuantityDiscount(t *testing.T) {
	for q, want := range map[int]string{1: "No Discount", 5: "No Discount", 6: "5% Discount", 10: "5% Discount", 11: "10% Discount", 20: "10% Discount"} {
		assert.Equal(t, want, rules.CalculateQuantityDiscount(q), "quantity %d", q)
	}
}

func TestCheckFileSize(t *testing.T) {
	assert.Equal(t, "Valid File Size", rules.CheckFileSize(500000))
	assert.Equal(t, "Invalid File Size", rules.CheckFileSize(2000000))
	assert.Equal(t, "Invalid File Size", rules.CheckFileSize(-500))
	assert.Equal(t, "Valid File Size", rules.CheckFileSize(0))
	assert.Equal(t, "Valid File Size", rules.CheckFileSize(1048576))
	assert.Equal(t, "Invalid File Size", rules.CheckFileSize(1048577))
}

func TestCheckLoanEligibility(t *testing.T) {
	assert.Equal(t, "Not Eligible", rules.CheckLoanEligibility(25000, 650))
	assert.Equal(t, "Standard Loan", rules.CheckLoanEligibility(35000, 710))
	assert.Equal(t, "Secured Loan", rules.CheckLoanEligibility(35000, 650))
	assert.Equal(t, "Premium Loan", rules.CheckLoanEligibility(65000, 760))
	assert.Equal(t, "Standard Loan", rules.CheckLoanEligibility(65000, 740))
}

func TestCalculateShippingCost(t *testing.T) {
	assert.Equal(t, 5.0, rules.CalculateShippingCost(1, 10, 10, 10))
	assert.Equal(t, 10.0, rules.CalculateShippingCost(2, 15, 15, 15))
	assert.Equal(t, 20.0, rules.CalculateShippingCost(6, 31, 31, 31))
	assert.Equal(t, 20.0, rules.CalculateShippingCost(1, 11, 11, 11))
	assert.Equal(t, 20.0, rules.CalculateShippingCost(2, 10, 10, 10))
}

func TestGradeQuiz(t *testing.T) {
	assert.Equal(t, "Pass", rules.GradeQuiz(7, 2))
	assert.Equal(t, "Pass", rules.GradeQuiz(8, 1))
	assert.Equal(t, "Conditional Pass", rules.GradeQuiz(5, 3))
	assert.Equal(t, "Conditional Pass", rules.GradeQuiz(6, 3))
	assert.Equal(t, "Fail", rules.GradeQuiz(4, 4))
	assert.Equal(t, "Fail", rules.GradeQuiz(6, 4))
}

func TestAuthenticateUser(t *testing.T) {
	auth := rules.DefaultAuthenticator()
	assert.Equal(t, "Admin", auth.AuthenticateUser("admin", "admin123"))
	assert.Equal(t, "User", auth.AuthenticateUser("user123", "password123"))
	assert.Equal(t, "Invalid", auth.AuthenticateUser("usr", "password123"))
	assert.Equal(t, "Invalid", auth.AuthenticateUser("user123", "pwd"))
	assert.Equal(t, "Invalid", auth.AuthenticateUser("usr", "pwd"))
	assert.Equal(t, "Invalid", auth.AuthenticateUser("josé", "password1"))
	assert.Equal(t, "User", auth.AuthenticateUser("josé1", "pässwörd"))

	t.Run("injected admin credential", func(t *testing.T) {
		custom := rules.NewAuthenticator("root", "toor")
		assert.Equal(t, "Admin", custom.AuthenticateUser("root", "toor"))
		assert.Equal(t, "Invalid", custom.AuthenticateUser("admin", "admin1"))
		assert.Equal(t, "User", custom.AuthenticateUser("admin", "admin123"))
	})
}

func TestGetWeatherAdvisory(t *testing.T) {
	assert.Equal(t, "High Temperature and Humidity. Stay Hydrated.", rules.GetWeatherAdvisory(35, 75))
	assert.Equal(t, "Low Temperature. Bundle Up!", rules.GetWeatherAdvisory(-5, 50))
	assert.Equal(t, "No Specific Advisory", rules.GetWeatherAdvisory(20, 50))
	assert.Equal(t, "No Specific Advisory", rules.GetWeatherAdvisory(35, 70))
}
