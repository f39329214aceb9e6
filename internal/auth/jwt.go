// Package auth verifies the admin bearer tokens issued for the CMS dashboard.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// MinSecretLen is the shortest accepted HS256 secret.
	MinSecretLen = 32
	issuer       = "news-cms"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carry the admin id in the subject.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

func validateSecret(secret []byte) error {
	if len(secret) < MinSecretLen {
		return fmt.Errorf("secret must be at least %d bytes", MinSecretLen)
	}
	return nil
}

// GenerateToken signs an HS256 token for the admin valid for expiry.
func GenerateToken(secret []byte, adminID, name string, expiry time.Duration) (string, error) {
	if err := validateSecret(secret); err != nil {
		return "", fmt.Errorf("auth: %w", err)
	}
	if adminID == "" {
		return "", errors.New("auth: admin id is required")
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Name: name,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken validates the signature, expiry and issuer. Only HS256 is accepted.
func ParseToken(secret []byte, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
