package services

import (
	"context"
	"sort"
	"time"

	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/core/domain"
)

// DashboardService aggregates store state into role-aware dashboard views
type DashboardService struct {
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	scheduleRepo   repositories.ScheduleRepository
	attendanceRepo repositories.AttendanceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	scheduleRepo repositories.ScheduleRepository,
	attendanceRepo repositories.AttendanceRepository,
) *DashboardService {
	return &DashboardService{
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
	}
}

// TeamAttendanceAvg is one bar of the attendance-by-team chart
type TeamAttendanceAvg struct {
	Name       string `json:"name"`
	Attendance int    `json:"attendance"`
}

// StatusCount is one slice of the player-status distribution
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SchoolOverview is the Principal / Master In-Charge / Admin dashboard
type SchoolOverview struct {
	Stats              domain.DashboardStats  `json:"stats"`
	AttendanceByTeam   []TeamAttendanceAvg    `json:"attendanceByTeam"`
	StatusDistribution []StatusCount          `json:"statusDistribution"`
	UpcomingEvents     []domain.ScheduleEvent `json:"upcomingEvents"`
}

// CoachOverview is the dashboard scoped to a coach's assigned team
type CoachOverview struct {
	Team           *domain.Team              `json:"team"`
	Roster         []domain.Player           `json:"roster"`
	TodayMarked    []domain.AttendanceRecord `json:"todayMarked"`
	UpcomingEvents []domain.ScheduleEvent    `json:"upcomingEvents"`
}

// ParentOverview is the dashboard scoped to a parent's linked player
type ParentOverview struct {
	Player         *domain.Player            `json:"player"`
	Team           *domain.Team              `json:"team,omitempty"`
	RecentHistory  []domain.AttendanceRecord `json:"recentHistory"`
	UpcomingEvents []domain.ScheduleEvent    `json:"upcomingEvents"`
}

// Stats computes the headline counters: player and team totals, players
// marked Present today, and events dated today or later
func (s *DashboardService) Stats(ctx context.Context) domain.DashboardStats {
	today := time.Now().Format("2006-01-02")

	attendanceToday := 0
	for _, r := range s.attendanceRepo.List(ctx) {
		if r.Date == today && r.Status == domain.AttendancePresent {
			attendanceToday++
		}
	}

	upcoming := 0
	for _, e := range s.scheduleRepo.List(ctx) {
		if e.Date >= today {
			upcoming++
		}
	}

	return domain.DashboardStats{
		TotalPlayers:    len(s.playerRepo.List(ctx)),
		ActiveTeams:     len(s.teamRepo.List(ctx)),
		AttendanceToday: attendanceToday,
		UpcomingEvents:  upcoming,
	}
}

// SchoolOverview builds the school-wide dashboard
func (s *DashboardService) SchoolOverview(ctx context.Context) *SchoolOverview {
	return &SchoolOverview{
		Stats:              s.Stats(ctx),
		AttendanceByTeam:   s.attendanceByTeam(ctx),
		StatusDistribution: s.statusDistribution(ctx),
		UpcomingEvents:     s.upcomingEvents(ctx, ""),
	}
}

// CoachOverview builds the dashboard for one team. The team must exist.
func (s *DashboardService) CoachOverview(ctx context.Context, teamID string) (*CoachOverview, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	return &CoachOverview{
		Team:           team,
		Roster:         s.playerRepo.ListByTeam(ctx, teamID),
		TodayMarked:    s.attendanceRepo.ListByTeamAndDate(ctx, teamID, today),
		UpcomingEvents: s.upcomingEvents(ctx, teamID),
	}, nil
}

// ParentOverview builds the dashboard for one linked player. A missing
// player is reported as not found, never dereferenced.
func (s *DashboardService) ParentOverview(ctx context.Context, playerID string) (*ParentOverview, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	// The player's team may have been removed; render without it
	team, err := s.teamRepo.GetByID(ctx, player.TeamID)
	if err != nil {
		team = nil
	}

	history := s.attendanceRepo.ListByPlayer(ctx, playerID)
	sort.Slice(history, func(i, j int) bool { return history[i].Date > history[j].Date })
	if len(history) > 10 {
		history = history[:10]
	}

	return &ParentOverview{
		Player:         player,
		Team:           team,
		RecentHistory:  history,
		UpcomingEvents: s.upcomingEvents(ctx, player.TeamID),
	}, nil
}

// attendanceByTeam averages the stored attendance rate per team and keeps
// the top five
func (s *DashboardService) attendanceByTeam(ctx context.Context) []TeamAttendanceAvg {
	players := s.playerRepo.List(ctx)

	out := make([]TeamAttendanceAvg, 0)
	for _, team := range s.teamRepo.List(ctx) {
		sum, count := 0, 0
		for _, p := range players {
			if p.TeamID == team.ID {
				sum += p.AttendanceRate
				count++
			}
		}
		avg := 0
		if count > 0 {
			avg = (sum + count/2) / count
		}
		out = append(out, TeamAttendanceAvg{Name: team.Name, Attendance: avg})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Attendance > out[j].Attendance })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func (s *DashboardService) statusDistribution(ctx context.Context) []StatusCount {
	counts := map[domain.PlayerStatus]int{}
	for _, p := range s.playerRepo.List(ctx) {
		counts[p.Status]++
	}
	return []StatusCount{
		{Name: string(domain.PlayerActive), Value: counts[domain.PlayerActive]},
		{Name: string(domain.PlayerInjured), Value: counts[domain.PlayerInjured]},
		{Name: string(domain.PlayerInactive), Value: counts[domain.PlayerInactive]},
	}
}

// upcomingEvents returns events dated today or later, optionally scoped to
// one team
func (s *DashboardService) upcomingEvents(ctx context.Context, teamID string) []domain.ScheduleEvent {
	today := time.Now().Format("2006-01-02")

	out := make([]domain.ScheduleEvent, 0)
	for _, e := range s.scheduleRepo.List(ctx) {
		if e.Date < today {
			continue
		}
		if teamID != "" && e.TeamID != teamID {
			continue
		}
		out = append(out, e)
	}
	return out
}
