package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a token would not identify any user.
var ErrEmptySubject = errors.New("token subject cannot be empty")

// GenerateJWT signs an HS256 bearer token whose subject is the acting user id
// accepted by the API auth middleware.
func GenerateJWT(subject string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}
	if secret == "" {
		return "", errors.New("signing secret cannot be empty")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
