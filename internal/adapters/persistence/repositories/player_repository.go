package repositories

import (
	"context"
	"sync"

	"amps-backend/internal/adapters/persistence/blob"
	"amps-backend/internal/core/domain"
)

// playerRepository implements PlayerRepository over the blob store
type playerRepository struct {
	mu      sync.RWMutex
	store   blob.Store
	players []domain.Player
}

// NewPlayerRepository creates a player repository, hydrating from storage
func NewPlayerRepository(store blob.Store, seed []domain.Player) PlayerRepository {
	return &playerRepository{
		store:   store,
		players: loadCollection(store, KeyPlayers, seed),
	}
}

// List returns a copy of the player list in insertion order
func (r *playerRepository) List(_ context.Context) []domain.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Player, len(r.players))
	copy(out, r.players)
	return out
}

// GetByID gets a player by ID
func (r *playerRepository) GetByID(_ context.Context, id string) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.players {
		if r.players[i].ID == id {
			p := r.players[i]
			return &p, nil
		}
	}
	return nil, domain.ErrPlayerNotFound
}

// ListByTeam returns the players whose teamId equals teamID, preserving
// insertion order. An unknown team yields an empty slice, not an error.
func (r *playerRepository) ListByTeam(_ context.Context, teamID string) []domain.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Player, 0)
	for i := range r.players {
		if r.players[i].TeamID == teamID {
			out = append(out, r.players[i])
		}
	}
	return out
}

// Create appends a new player. The teamId is taken as-is, matching the
// store contract: no referential check against the team list.
func (r *playerRepository) Create(ctx context.Context, player *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = append(r.players, *player)
	return persist(ctx, r.store, KeyPlayers, r.players)
}

// Update replaces the stored player with matching ID wholesale
func (r *playerRepository) Update(ctx context.Context, player *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.players {
		if r.players[i].ID == player.ID {
			r.players[i] = *player
			return persist(ctx, r.store, KeyPlayers, r.players)
		}
	}
	return domain.ErrPlayerNotFound
}

// Delete removes exactly the player with the given ID
func (r *playerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.players[:0]
	found := false
	for i := range r.players {
		if r.players[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, r.players[i])
	}
	if !found {
		return domain.ErrPlayerNotFound
	}

	r.players = kept
	return persist(ctx, r.store, KeyPlayers, r.players)
}
