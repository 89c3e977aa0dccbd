package service

import (
	"crypto/subtle"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/madhuram-pos/pos-api/internal/config"
	"github.com/madhuram-pos/pos-api/pkg/apperror"
	"github.com/madhuram-pos/pos-api/pkg/utils"
)

// AuthService verifies the static shared admin password and mints session
// tokens. There is exactly one admin identity; the password comes from
// config, either plain (compared in constant time) or as a bcrypt hash.
type AuthService struct {
	cfg    config.AdminConfig
	tokens *utils.TokenManager
	logger *logrus.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(cfg config.AdminConfig, tokens *utils.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{cfg: cfg, tokens: tokens, logger: logger}
}

// Login verifies the shared password and returns a session token. Login is
// disabled entirely when no password is configured.
func (s *AuthService) Login(password string) (string, error) {
	if !s.verify(password) {
		s.logger.Warn("Admin login failed")
		return "", apperror.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAdminToken()
	if err != nil {
		return "", err
	}
	s.logger.Info("Admin logged in")
	return token, nil
}

// ValidateToken checks an admin session token.
func (s *AuthService) ValidateToken(token string) error {
	if err := s.tokens.ValidateAdminToken(token); err != nil {
		return apperror.ErrInvalidToken
	}
	return nil
}

func (s *AuthService) verify(password string) bool {
	if s.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) == nil
	}
	if s.cfg.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.Password), []byte(password)) == 1
}
