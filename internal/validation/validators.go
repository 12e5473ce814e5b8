package validation

import (
	"regexp"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidEmail reports whether email has a plausible address shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether phone is exactly ten digits.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidRating reports whether rating is an integer star value between 1 and 5.
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// ValidPrice reports whether price is strictly positive.
func ValidPrice(price decimal.Decimal) bool {
	return price.GreaterThan(decimal.Zero)
}

// ValidBedrooms reports whether bedrooms is a non-negative count.
func ValidBedrooms(bedrooms int) bool {
	return bedrooms >= 0
}

// ValidBathrooms reports whether bathrooms is a non-negative count.
func ValidBathrooms(bathrooms int) bool {
	return bathrooms >= 0
}

// ValidPassword checks password strength: at least 8 characters with one
// digit, one uppercase and one lowercase letter. Returns (false, reason) on
// the first failed rule.
func ValidPassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	var hasDigit, hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasDigit {
		return false, "Password must contain at least one number"
	}
	if !hasUpper {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasLower {
		return false, "Password must contain at least one lowercase letter"
	}
	return true, "Password is valid"
}
