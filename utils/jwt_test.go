package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	token, err := GenerateJWT("64f1c0ffee0000000000abcd")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT("someone")
	assert.Error(t, err)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	token, err := GenerateJWT("someone")
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsEmptySecret(t *testing.T) {
	// A token signed with an empty key must never verify when
	// JWT_SECRET is unset, otherwise a missing secret would accept
	// forged tokens.
	t.Setenv("JWT_SECRET", "")

	claims := &Claims{
		UserID: "someone",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
	require.NoError(t, err)

	_, err = ValidateJWT(forged)
	assert.Error(t, err)
}

func TestTokenTTL(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "")
	assert.Equal(t, DefaultTokenTTL, TokenTTL())

	t.Setenv("JWT_EXPIRES_IN", "30m")
	assert.Equal(t, 30*time.Minute, TokenTTL())

	t.Setenv("JWT_EXPIRES_IN", "not-a-duration")
	assert.Equal(t, DefaultTokenTTL, TokenTTL())
}
