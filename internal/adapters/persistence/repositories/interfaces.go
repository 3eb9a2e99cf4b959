package repositories

import (
	"context"

	"amps-backend/internal/core/domain"
)

// Storage keys, one per collection. Each key is read once at startup and
// rewritten in full after every mutation.
const (
	KeyUsers      = "amps_users"
	KeySession    = "amps_session"
	KeyTeams      = "amps_teams"
	KeyPlayers    = "amps_players"
	KeySchedule   = "amps_schedule"
	KeyAttendance = "amps_attendance"
	KeySettings   = "amps_settings"
)

// UserRepository owns the user list and the current session
type UserRepository interface {
	List(ctx context.Context) []domain.User
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Session(ctx context.Context) *domain.User
	SetSession(ctx context.Context, user *domain.User) error
}

// TeamRepository owns the team list
type TeamRepository interface {
	List(ctx context.Context) []domain.Team
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
}

// PlayerRepository owns the player list
type PlayerRepository interface {
	List(ctx context.Context) []domain.Player
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	ListByTeam(ctx context.Context, teamID string) []domain.Player
	Create(ctx context.Context, player *domain.Player) error
	Update(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, id string) error
}

// ScheduleRepository owns the append-only schedule list
type ScheduleRepository interface {
	List(ctx context.Context) []domain.ScheduleEvent
	ListByTeam(ctx context.Context, teamID string) []domain.ScheduleEvent
	Create(ctx context.Context, event *domain.ScheduleEvent) error
}

// AttendanceRepository owns the attendance record list
type AttendanceRepository interface {
	List(ctx context.Context) []domain.AttendanceRecord
	ListByPlayer(ctx context.Context, playerID string) []domain.AttendanceRecord
	ListByTeamAndDate(ctx context.Context, teamID, date string) []domain.AttendanceRecord
	// Mark writes a batch, overwriting any stored record with a matching
	// (playerId, date) pair. Duplicate pairs inside the batch collapse to
	// the last entry.
	Mark(ctx context.Context, records []domain.AttendanceRecord) error
}

// SettingsRepository owns the app settings singleton
type SettingsRepository interface {
	Get(ctx context.Context) domain.AppSettings
	Replace(ctx context.Context, settings domain.AppSettings) error
}
