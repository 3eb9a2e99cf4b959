package services

import (
	"testing"

	"amps-backend/internal/adapters/persistence/blob"
	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/config"
	"amps-backend/internal/core/domain"
	"amps-backend/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

// testConfig keeps bcrypt at its cheapest cost so seeding stays fast
func testConfig() *config.Config {
	return &config.Config{
		AppMode:    "dev",
		BcryptCost: password.MinCost,
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 60,
		},
	}
}

func newTestStore(t *testing.T) blob.Store {
	t.Helper()

	store, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// testRoster is a two-team fixture with three players on t1 and one on t2
func testRoster(t *testing.T) (repositories.TeamRepository, repositories.PlayerRepository) {
	t.Helper()

	store := newTestStore(t)
	teams := []domain.Team{
		{ID: "t1", Name: "Rugby", Category: domain.CategorySports, Icon: "🏉",
			Coaches: []domain.CoachInfo{{Name: "Mr. Silva", Role: domain.HeadCoach, JoinedDate: "2020-01-15"}}},
		{ID: "t2", Name: "Chess", Category: domain.CategoryActivity, Icon: "♟️"},
	}
	players := []domain.Player{
		{ID: "p1", TeamID: "t1", Name: "Alpha", Grade: "11", Position: "Captain", AttendanceRate: 90, Status: domain.PlayerActive},
		{ID: "p2", TeamID: "t1", Name: "Bravo", Grade: "10", Position: "Member", AttendanceRate: 80, Status: domain.PlayerActive},
		{ID: "p3", TeamID: "t1", Name: "Charlie", Grade: "12", Position: "Member", AttendanceRate: 70, Status: domain.PlayerInjured},
		{ID: "p4", TeamID: "t2", Name: "Delta", Grade: "10", Position: "Member", AttendanceRate: 85, Status: domain.PlayerActive},
	}
	return repositories.NewTeamRepository(store, teams), repositories.NewPlayerRepository(store, players)
}
