package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.domain.co", true},
		{"no-at-sign", false},
		{"user@", false},
		{"@example.com", false},
		{"user@example", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("9876543210"))
	assert.False(t, ValidPhone("987654321"))
	assert.False(t, ValidPhone("98765432100"))
	assert.False(t, ValidPhone("98765-4321"))
	assert.False(t, ValidPhone(""))
}

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
	assert.False(t, ValidRating(-1))
}

func TestValidPrice(t *testing.T) {
	assert.True(t, ValidPrice(decimal.NewFromFloat(0.01)))
	assert.False(t, ValidPrice(decimal.Zero))
	assert.False(t, ValidPrice(decimal.NewFromInt(-100)))
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
		reason   string
	}{
		{"valid password", "Password1", true, "Password is valid"},
		{"too short", "Pass1", false, "Password must be at least 8 characters long"},
		{"no digit", "Passwords", false, "Password must contain at least one number"},
		{"no uppercase", "password1", false, "Password must contain at least one uppercase letter"},
		{"no lowercase", "PASSWORD1", false, "Password must contain at least one lowercase letter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := ValidPassword(tt.password)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}
