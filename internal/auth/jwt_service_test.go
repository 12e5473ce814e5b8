package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	apperrors "estately/internal/errors"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(42, "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := service.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, "admin", identity.Role)
	assert.True(t, identity.IsAdmin())
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(1, "user")
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").VerifyToken(token)
	assert.Equal(t, apperrors.ErrTokenInvalid, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret")

	claims := &Claims{
		UserID:   1,
		UserRole: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Equal(t, apperrors.ErrTokenExpired, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	service := NewJWTService("test-secret")

	_, err := service.VerifyToken("not-a-token")
	assert.Equal(t, apperrors.ErrTokenInvalid, err)
}

func TestPasswordHashing(t *testing.T) {
	digest, err := HashPassword("Password1")
	assert.NoError(t, err)
	assert.NotEqual(t, "Password1", digest)

	assert.True(t, CheckPassword(digest, "Password1"))
	assert.False(t, CheckPassword(digest, "WrongPass1"))
}
