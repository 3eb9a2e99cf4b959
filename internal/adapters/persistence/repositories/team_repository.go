package repositories

import (
	"context"
	"sync"

	"amps-backend/internal/adapters/persistence/blob"
	"amps-backend/internal/core/domain"
)

// teamRepository implements TeamRepository over the blob store
type teamRepository struct {
	mu    sync.RWMutex
	store blob.Store
	teams []domain.Team
}

// NewTeamRepository creates a team repository, hydrating from storage
func NewTeamRepository(store blob.Store, seed []domain.Team) TeamRepository {
	return &teamRepository{
		store: store,
		teams: loadCollection(store, KeyTeams, seed),
	}
}

// List returns a copy of the team list in insertion order
func (r *teamRepository) List(_ context.Context) []domain.Team {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Team, len(r.teams))
	copy(out, r.teams)
	return out
}

// GetByID gets a team by ID
func (r *teamRepository) GetByID(_ context.Context, id string) (*domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.teams {
		if r.teams[i].ID == id {
			t := r.teams[i]
			return &t, nil
		}
	}
	return nil, domain.ErrTeamNotFound
}

// Update replaces the stored team with matching ID wholesale
func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.teams {
		if r.teams[i].ID == team.ID {
			r.teams[i] = *team
			return persist(ctx, r.store, KeyTeams, r.teams)
		}
	}
	return domain.ErrTeamNotFound
}
