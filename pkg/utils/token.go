package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminSubject = "admin"

// AdminClaims represents the claims in an admin session token
type AdminClaims struct {
	jwt.RegisteredClaims
}

// TokenManager mints and validates admin session tokens. There is a single
// admin identity behind the static shared password, so the token carries no
// user data beyond its expiry.
type TokenManager struct {
	secretKey     []byte
	sessionExpiry time.Duration
}

// NewTokenManager creates a new token manager
func NewTokenManager(secret string, sessionExpiry time.Duration) *TokenManager {
	return &TokenManager{
		secretKey:     []byte(secret),
		sessionExpiry: sessionExpiry,
	}
}

// GenerateAdminToken generates a new admin session token
func (m *TokenManager) GenerateAdminToken() (string, error) {
	claims := &AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.sessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "madhuram-pos",
			Subject:   adminSubject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// ValidateAdminToken validates an admin session token
func (m *TokenManager) ValidateAdminToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}
	if claims.Subject != adminSubject {
		return errors.New("invalid token subject")
	}
	return nil
}
