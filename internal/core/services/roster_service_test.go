package services

import (
	"context"
	"strings"
	"testing"

	"amps-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRosterEnv(t *testing.T) *RosterService {
	t.Helper()

	teamRepo, playerRepo := testRoster(t)
	return NewRosterService(teamRepo, playerRepo)
}

func TestUpdateTeamCoachCap(t *testing.T) {
	svc := newRosterEnv(t)
	ctx := context.Background()

	team, err := svc.GetTeam(ctx, "t1")
	require.NoError(t, err)

	team.Coaches = []domain.CoachInfo{
		{Name: "A", Role: domain.HeadCoach},
		{Name: "B", Role: domain.AssistantCoach},
		{Name: "C", Role: domain.AssistantCoach},
		{Name: "D", Role: domain.AssistantCoach},
	}
	err = svc.UpdateTeam(ctx, team)
	assert.ErrorIs(t, err, domain.ErrTooManyCoaches)

	// Exactly three is allowed
	team.Coaches = team.Coaches[:3]
	require.NoError(t, svc.UpdateTeam(ctx, team))

	updated, err := svc.GetTeam(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, updated.Coaches, 3)
}

func TestAddPlayerDefaults(t *testing.T) {
	svc := newRosterEnv(t)
	ctx := context.Background()

	player := &domain.Player{TeamID: "t2", Name: "Echo"}
	require.NoError(t, svc.AddPlayer(ctx, player))

	assert.NotEmpty(t, player.ID)
	assert.Equal(t, domain.PlayerActive, player.Status)

	roster := svc.GetPlayersByTeam(ctx, "t2")
	require.Len(t, roster, 2)
	assert.Equal(t, "Echo", roster[1].Name)
}

func TestDeletePlayer(t *testing.T) {
	svc := newRosterEnv(t)
	ctx := context.Background()

	require.NoError(t, svc.DeletePlayer(ctx, "p2"))
	assert.Len(t, svc.GetPlayersByTeam(ctx, "t1"), 2)

	err := svc.DeletePlayer(ctx, "p2")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestExportRosterCSV(t *testing.T) {
	svc := newRosterEnv(t)

	content, filename, err := svc.ExportRosterCSV(context.Background(), "t1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "Rugby_Roster_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 4) // header + three players
	assert.Contains(t, lines[0], "Attendance Rate")
	assert.Contains(t, lines[1], "Alpha")
	assert.Contains(t, lines[1], "90%")
	assert.Contains(t, lines[3], "Injured")
}

func TestExportRosterCSVUnknownTeam(t *testing.T) {
	svc := newRosterEnv(t)

	_, _, err := svc.ExportRosterCSV(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}
