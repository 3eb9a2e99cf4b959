package services

import (
	"context"
	"log"

	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/core/domain"
)

// SettingsService handles the app settings singleton
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the current settings
func (s *SettingsService) Get(ctx context.Context) domain.AppSettings {
	return s.settingsRepo.Get(ctx)
}

// Replace overwrites the settings wholesale
func (s *SettingsService) Replace(ctx context.Context, settings domain.AppSettings) error {
	if err := s.settingsRepo.Replace(ctx, settings); err != nil {
		return err
	}
	log.Printf("✅ Settings updated: school %q", settings.SchoolName)
	return nil
}
