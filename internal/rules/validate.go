package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	passwordSpecials = "!@#$%^&*"
	maxFileSize      = 1 << 20
	maxURLLength     = 255
)

func ValidatePassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

func ValidateLogin(username, password string) string {
	u, p := utf8.RuneCountInString(username), utf8.RuneCountInString(password)
	if u >= 5 && u <= 20 && p >= 8 && p <= 15 {
		return "Login Successful"
	}
	return "Login Failed"
}

func ValidateEmail(email string) string {
	if n := utf8.RuneCountInString(email); n < 5 || n > 45 {
		return "Invalid Email"
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return "Invalid Email"
	}
	return "Valid Email"
}

func ValidateCreditCard(number string) string {
	if n := utf8.RuneCountInString(number); n < 13 || n > 16 || !allDigits(number) {
		return "Invalid Card"
	}
	return "Valid Card"
}

// ValidateDate checks ranges only; month lengths and leap years are not
// considered.
func ValidateDate(year, month, day int) string {
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "Invalid Date"
	}
	return "Valid Date"
}

func ValidateURL(url string) string {
	if (strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")) && utf8.RuneCountInString(url) <= maxURLLength {
		return "Valid URL"
	}
	return "Invalid URL"
}

func CheckFileSize(size int64) string {
	if size >= 0 && size <= maxFileSize {
		return "Valid File Size"
	}
	return "Invalid File Size"
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
