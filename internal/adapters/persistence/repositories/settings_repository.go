package repositories

import (
	"context"
	"sync"

	"amps-backend/internal/adapters/persistence/blob"
	"amps-backend/internal/core/domain"
)

// settingsRepository implements SettingsRepository over the blob store
type settingsRepository struct {
	mu       sync.RWMutex
	store    blob.Store
	settings domain.AppSettings
}

// NewSettingsRepository creates a settings repository, hydrating from storage
func NewSettingsRepository(store blob.Store, seed domain.AppSettings) SettingsRepository {
	return &settingsRepository{
		store:    store,
		settings: loadCollection(store, KeySettings, seed),
	}
}

// Get returns the current app settings
func (r *settingsRepository) Get(_ context.Context) domain.AppSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// Replace overwrites the settings singleton wholesale
func (r *settingsRepository) Replace(ctx context.Context, settings domain.AppSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = settings
	return persist(ctx, r.store, KeySettings, r.settings)
}
