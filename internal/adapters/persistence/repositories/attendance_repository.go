package repositories

import (
	"context"
	"sync"

	"amps-backend/internal/adapters/persistence/blob"
	"amps-backend/internal/core/domain"
)

// attendanceRepository implements AttendanceRepository over the blob store
type attendanceRepository struct {
	mu      sync.RWMutex
	store   blob.Store
	records []domain.AttendanceRecord
}

// NewAttendanceRepository creates an attendance repository, hydrating from storage
func NewAttendanceRepository(store blob.Store, seed []domain.AttendanceRecord) AttendanceRepository {
	return &attendanceRepository{
		store:   store,
		records: loadCollection(store, KeyAttendance, seed),
	}
}

// List returns a copy of all attendance records
func (r *attendanceRepository) List(_ context.Context) []domain.AttendanceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.AttendanceRecord, len(r.records))
	copy(out, r.records)
	return out
}

// ListByPlayer returns a player's full attendance history
func (r *attendanceRepository) ListByPlayer(_ context.Context, playerID string) []domain.AttendanceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.AttendanceRecord, 0)
	for i := range r.records {
		if r.records[i].PlayerID == playerID {
			out = append(out, r.records[i])
		}
	}
	return out
}

// ListByTeamAndDate returns a team's records for one calendar date
func (r *attendanceRepository) ListByTeamAndDate(_ context.Context, teamID, date string) []domain.AttendanceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.AttendanceRecord, 0)
	for i := range r.records {
		if r.records[i].TeamID == teamID && r.records[i].Date == date {
			out = append(out, r.records[i])
		}
	}
	return out
}

// Mark writes a batch of records, keeping the at-most-one-per-(player, date)
// invariant: duplicate pairs inside the batch collapse to the last entry,
// then any stored record with a matching pair is removed before the batch
// is appended. The newest status always wins.
func (r *attendanceRepository) Mark(ctx context.Context, records []domain.AttendanceRecord) error {
	if len(records) == 0 {
		return domain.ErrEmptyBatch
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	type pair struct{ player, date string }

	// Last entry in the batch wins for duplicate pairs
	latest := make(map[pair]int, len(records))
	for i, rec := range records {
		latest[pair{rec.PlayerID, rec.Date}] = i
	}
	batch := make([]domain.AttendanceRecord, 0, len(latest))
	for i, rec := range records {
		if latest[pair{rec.PlayerID, rec.Date}] == i {
			batch = append(batch, rec)
		}
	}

	kept := make([]domain.AttendanceRecord, 0, len(r.records))
	for _, rec := range r.records {
		if _, overwritten := latest[pair{rec.PlayerID, rec.Date}]; !overwritten {
			kept = append(kept, rec)
		}
	}

	r.records = append(kept, batch...)
	return persist(ctx, r.store, KeyAttendance, r.records)
}
