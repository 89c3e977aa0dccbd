package service

import (
	"context"

	"github.com/madhuram-pos/pos-api/internal/domain/repository"
	"github.com/madhuram-pos/pos-api/pkg/apperror"
)

// SettingsService exposes the generic key/value settings store to the admin
// surface. The sequence counter keys live in the same store but are managed
// through SequenceService, not through here.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSetting returns the value for key. A missing key is a 404.
func (s *SettingsService) GetSetting(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", apperror.NewBadRequestError("Setting key is required")
	}
	value, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", apperror.NewNotFoundError("Setting")
	}
	return value, nil
}

// SetSetting upserts a key.
func (s *SettingsService) SetSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return apperror.NewBadRequestError("Setting key is required")
	}
	return s.settingsRepo.Set(ctx, key, value)
}
