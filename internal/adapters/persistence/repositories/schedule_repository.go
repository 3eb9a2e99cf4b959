package repositories

import (
	"context"
	"sync"

	"amps-backend/internal/adapters/persistence/blob"
	"amps-backend/internal/core/domain"
)

// scheduleRepository implements ScheduleRepository over the blob store
type scheduleRepository struct {
	mu     sync.RWMutex
	store  blob.Store
	events []domain.ScheduleEvent
}

// NewScheduleRepository creates a schedule repository, hydrating from storage
func NewScheduleRepository(store blob.Store, seed []domain.ScheduleEvent) ScheduleRepository {
	return &scheduleRepository{
		store:  store,
		events: loadCollection(store, KeySchedule, seed),
	}
}

// List returns a copy of the schedule in insertion order
func (r *scheduleRepository) List(_ context.Context) []domain.ScheduleEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ScheduleEvent, len(r.events))
	copy(out, r.events)
	return out
}

// ListByTeam returns the events whose teamId equals teamID
func (r *scheduleRepository) ListByTeam(_ context.Context, teamID string) []domain.ScheduleEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ScheduleEvent, 0)
	for i := range r.events {
		if r.events[i].TeamID == teamID {
			out = append(out, r.events[i])
		}
	}
	return out
}

// Create appends a new event. The schedule is append-only: no update or
// delete operation exists.
func (r *scheduleRepository) Create(ctx context.Context, event *domain.ScheduleEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, *event)
	return persist(ctx, r.store, KeySchedule, r.events)
}
