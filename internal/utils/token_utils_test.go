package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "grn-tracker")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithIssuer("grn-tracker"), jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "user-1", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWT_RejectsEmptyInputs(t *testing.T) {
	_, err := GenerateJWT("", "secret", time.Hour, "")
	assert.ErrorIs(t, err, ErrEmptySubject)

	_, err = GenerateJWT("user-1", "", time.Hour, "")
	assert.Error(t, err)
}

func TestGenerateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", -time.Minute, "")
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
