package services

import (
	"context"
	"testing"
	"time"

	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardEnv(t *testing.T) (*DashboardService, *AttendanceService) {
	t.Helper()

	teamRepo, playerRepo := testRoster(t)
	store := newTestStore(t)

	today := time.Now().Format("2006-01-02")
	scheduleRepo := repositories.NewScheduleRepository(store, []domain.ScheduleEvent{
		{ID: "e1", TeamID: "t1", Title: "Practice", Date: today, Type: domain.EventPractice},
		{ID: "e2", TeamID: "t2", Title: "Tournament", Date: "2099-01-01", Type: domain.EventMatch},
		{ID: "e3", TeamID: "t1", Title: "Old Match", Date: "2020-01-01", Type: domain.EventMatch},
	})
	attendanceRepo := repositories.NewAttendanceRepository(store, nil)

	dashboard := NewDashboardService(teamRepo, playerRepo, scheduleRepo, attendanceRepo)
	attendance := NewAttendanceService(teamRepo, playerRepo, attendanceRepo)
	return dashboard, attendance
}

func TestStats(t *testing.T) {
	dashboard, attendance := newDashboardEnv(t)
	ctx := context.Background()

	today := time.Now().Format("2006-01-02")
	_, err := attendance.Mark(ctx, &MarkInput{
		TeamID: "t1",
		Date:   today,
		Marks: map[string]domain.AttendanceStatus{
			"p1": domain.AttendancePresent,
			"p2": domain.AttendancePresent,
			"p3": domain.AttendanceAbsent,
		},
	})
	require.NoError(t, err)

	stats := dashboard.Stats(ctx)
	assert.Equal(t, 4, stats.TotalPlayers)
	assert.Equal(t, 2, stats.ActiveTeams)
	// Only Present marks count, Absent does not
	assert.Equal(t, 2, stats.AttendanceToday)
	// Past events are excluded
	assert.Equal(t, 2, stats.UpcomingEvents)
}

func TestSchoolOverview(t *testing.T) {
	dashboard, _ := newDashboardEnv(t)

	overview := dashboard.SchoolOverview(context.Background())

	require.Len(t, overview.AttendanceByTeam, 2)
	// Sorted by average stored rate, best first: t1 = (90+80+70)/3 = 80, t2 = 85
	assert.Equal(t, "Chess", overview.AttendanceByTeam[0].Name)
	assert.Equal(t, 85, overview.AttendanceByTeam[0].Attendance)
	assert.Equal(t, 80, overview.AttendanceByTeam[1].Attendance)

	dist := map[string]int{}
	for _, s := range overview.StatusDistribution {
		dist[s.Name] = s.Value
	}
	assert.Equal(t, 3, dist["Active"])
	assert.Equal(t, 1, dist["Injured"])
	assert.Equal(t, 0, dist["Inactive"])

	assert.Len(t, overview.UpcomingEvents, 2)
}

func TestCoachOverview(t *testing.T) {
	dashboard, attendance := newDashboardEnv(t)
	ctx := context.Background()

	today := time.Now().Format("2006-01-02")
	_, err := attendance.Mark(ctx, &MarkInput{
		TeamID:         "t1",
		Date:           today,
		Marks:          map[string]domain.AttendanceStatus{"p1": domain.AttendancePresent},
		ConfirmPartial: true,
	})
	require.NoError(t, err)

	overview, err := dashboard.CoachOverview(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Rugby", overview.Team.Name)
	assert.Len(t, overview.Roster, 3)
	assert.Len(t, overview.TodayMarked, 1)

	// Upcoming events are scoped to the team
	for _, e := range overview.UpcomingEvents {
		assert.Equal(t, "t1", e.TeamID)
	}

	_, err = dashboard.CoachOverview(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestParentOverview(t *testing.T) {
	dashboard, attendance := newDashboardEnv(t)
	ctx := context.Background()

	for _, date := range []string{"2026-08-01", "2026-08-02", "2026-08-03"} {
		_, err := attendance.Mark(ctx, &MarkInput{
			TeamID:         "t1",
			Date:           date,
			Marks:          map[string]domain.AttendanceStatus{"p1": domain.AttendancePresent},
			ConfirmPartial: true,
		})
		require.NoError(t, err)
	}

	overview, err := dashboard.ParentOverview(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", overview.Player.Name)
	require.NotNil(t, overview.Team)
	assert.Equal(t, "Rugby", overview.Team.Name)

	// History comes newest first
	require.Len(t, overview.RecentHistory, 3)
	assert.Equal(t, "2026-08-03", overview.RecentHistory[0].Date)

	_, err = dashboard.ParentOverview(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
