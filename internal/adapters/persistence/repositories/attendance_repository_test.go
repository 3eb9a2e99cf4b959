package repositories

import (
	"context"
	"testing"

	"amps-backend/internal/adapters/persistence/blob"
	"amps-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) blob.Store {
	t.Helper()

	store, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func rec(playerID, date string, status domain.AttendanceStatus) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		ID:       playerID + "-" + date,
		PlayerID: playerID,
		TeamID:   "t1",
		Date:     date,
		Status:   status,
	}
}

func TestMarkOverwritesSamePlayerAndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(newTestStore(t), nil)

	require.NoError(t, repo.Mark(ctx, []domain.AttendanceRecord{rec("p1", "2026-08-30", domain.AttendanceAbsent)}))
	require.NoError(t, repo.Mark(ctx, []domain.AttendanceRecord{rec("p1", "2026-08-30", domain.AttendancePresent)}))

	records := repo.ListByPlayer(ctx, "p1")
	require.Len(t, records, 1)
	assert.Equal(t, domain.AttendancePresent, records[0].Status)
}

func TestMarkKeepsOtherDatesAndPlayers(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(newTestStore(t), nil)

	require.NoError(t, repo.Mark(ctx, []domain.AttendanceRecord{
		rec("p1", "2026-08-29", domain.AttendancePresent),
		rec("p2", "2026-08-29", domain.AttendanceLate),
	}))
	require.NoError(t, repo.Mark(ctx, []domain.AttendanceRecord{rec("p1", "2026-08-30", domain.AttendanceAbsent)}))

	assert.Len(t, repo.List(ctx), 3)
	assert.Len(t, repo.ListByPlayer(ctx, "p1"), 2)
	assert.Len(t, repo.ListByTeamAndDate(ctx, "t1", "2026-08-29"), 2)
}

func TestMarkDuplicatePairInBatchCollapsesToLast(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(newTestStore(t), nil)

	require.NoError(t, repo.Mark(ctx, []domain.AttendanceRecord{
		rec("p1", "2026-08-30", domain.AttendanceAbsent),
		rec("p1", "2026-08-30", domain.AttendanceExcused),
	}))

	records := repo.ListByPlayer(ctx, "p1")
	require.Len(t, records, 1)
	assert.Equal(t, domain.AttendanceExcused, records[0].Status)
}

func TestMarkEmptyBatch(t *testing.T) {
	repo := NewAttendanceRepository(newTestStore(t), nil)
	err := repo.Mark(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestAttendanceSurvivesRehydration(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	repo := NewAttendanceRepository(store, nil)
	require.NoError(t, repo.Mark(ctx, []domain.AttendanceRecord{rec("p1", "2026-08-30", domain.AttendancePresent)}))

	// A fresh repository over the same store must not fall back to the seed
	seed := []domain.AttendanceRecord{rec("p9", "2020-01-01", domain.AttendanceAbsent)}
	rehydrated := NewAttendanceRepository(store, seed)

	records := rehydrated.List(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, "p1", records[0].PlayerID)
}

func TestCorruptDataFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Set(ctx, KeyAttendance, []byte("{not json")))

	seed := []domain.AttendanceRecord{rec("p1", "2026-08-30", domain.AttendancePresent)}
	repo := NewAttendanceRepository(store, seed)

	records := repo.List(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, "p1", records[0].PlayerID)
}
