package config

import (
	"testing"

	"amps-backend/internal/core/domain"
	"amps-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeedData(t *testing.T) {
	seed, err := BuildSeedData(password.MinCost)
	require.NoError(t, err)

	assert.Len(t, seed.Teams, 9)
	assert.Len(t, seed.Players, 9*12)
	// Four fixed accounts plus one coach per team
	assert.Len(t, seed.Users, 4+9)
	assert.Len(t, seed.Schedule, 3)
	assert.Len(t, seed.Attendance, 3)
	assert.Equal(t, "Greenwood College", seed.Settings.SchoolName)
}

func TestSeedCoachAccounts(t *testing.T) {
	seed, err := BuildSeedData(password.MinCost)
	require.NoError(t, err)

	byEmail := map[string]domain.User{}
	for _, u := range seed.Users {
		byEmail[u.Email] = u
	}

	// Multi-word team names collapse to one lowercase word
	kungfu, ok := byEmail["kungfu@school.com"]
	require.True(t, ok)
	assert.Equal(t, domain.RoleCoach, kungfu.Role)
	assert.Equal(t, "t4", kungfu.AssignedTeamID)
	assert.True(t, password.Verify("Kung Fu", kungfu.PasswordHash))

	admin := byEmail["admin@school.com"]
	assert.True(t, password.Verify("Rugby@al", admin.PasswordHash))
	assert.False(t, password.Verify("wrong", admin.PasswordHash))
}

func TestSeedPlayersDeterministic(t *testing.T) {
	a, err := BuildSeedData(password.MinCost)
	require.NoError(t, err)
	b, err := BuildSeedData(password.MinCost)
	require.NoError(t, err)

	assert.Equal(t, a.Players, b.Players)
	assert.Equal(t, a.Teams, b.Teams)

	// Every team gets one captain and one injured player
	for _, team := range a.Teams {
		captains, injured := 0, 0
		for _, p := range a.Players {
			if p.TeamID != team.ID {
				continue
			}
			if p.Position == "Captain" {
				captains++
			}
			if p.Status == domain.PlayerInjured {
				injured++
			}
		}
		assert.Equal(t, 1, captains, team.Name)
		assert.Equal(t, 1, injured, team.Name)
	}

	// The parent account links to the first seeded player
	for _, u := range a.Users {
		if u.Role == domain.RoleParent {
			assert.Equal(t, a.Players[0].ID, u.LinkedPlayerID)
		}
	}
}
