package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/core/domain"
)

// AttendanceService handles the attendance-taking workflow for one team and
// one date: build a batch from per-player marks, confirm partial batches,
// then commit through the repository's overwrite rule.
type AttendanceService struct {
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	attendanceRepo repositories.AttendanceRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	attendanceRepo repositories.AttendanceRepository,
) *AttendanceService {
	return &AttendanceService{
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		attendanceRepo: attendanceRepo,
	}
}

// MarkInput represents one attendance-taking session commit
type MarkInput struct {
	TeamID string `json:"teamId"`
	Date   string `json:"date"` // ISO date
	// Marks maps playerId -> status; unmarked roster players are omitted
	Marks map[string]domain.AttendanceStatus `json:"marks"`
	// AllPresent marks the whole roster Present, ignoring Marks
	AllPresent bool `json:"allPresent"`
	// ConfirmPartial must be set when fewer players are marked than the
	// roster holds; declining leaves the store untouched
	ConfirmPartial bool `json:"confirmPartial"`
}

// Mark commits an attendance batch. Only marked roster players are included;
// a partial batch without confirmation fails with ErrPartialUnconfirmed and
// writes nothing.
func (s *AttendanceService) Mark(ctx context.Context, input *MarkInput) ([]domain.AttendanceRecord, error) {
	if _, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		return nil, err
	}
	if input.Date == "" {
		return nil, domain.ErrInvalidInput
	}

	roster := s.playerRepo.ListByTeam(ctx, input.TeamID)

	marks := input.Marks
	if input.AllPresent {
		marks = make(map[string]domain.AttendanceStatus, len(roster))
		for _, p := range roster {
			marks[p.ID] = domain.AttendancePresent
		}
	}

	// Batch holds only roster players with a mark, in roster order
	records := make([]domain.AttendanceRecord, 0, len(marks))
	for _, p := range roster {
		status, ok := marks[p.ID]
		if !ok {
			continue
		}
		if !status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		records = append(records, domain.AttendanceRecord{
			ID:       fmt.Sprintf("%s-%s", p.ID, input.Date),
			PlayerID: p.ID,
			TeamID:   input.TeamID,
			Date:     input.Date,
			Status:   status,
		})
	}

	if len(records) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if len(records) < len(roster) && !input.ConfirmPartial {
		return nil, domain.ErrPartialUnconfirmed
	}

	if err := s.attendanceRepo.Mark(ctx, records); err != nil {
		return nil, err
	}

	log.Printf("✅ Attendance saved: team %s, %s, %d/%d marked",
		input.TeamID, input.Date, len(records), len(roster))
	return records, nil
}

// GetTeamAttendance returns a team's records for one date
func (s *AttendanceService) GetTeamAttendance(ctx context.Context, teamID, date string) ([]domain.AttendanceRecord, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListByTeamAndDate(ctx, teamID, date), nil
}

// GetPlayerHistory returns a player's attendance history, optionally limited
// to one month ("2006-01")
func (s *AttendanceService) GetPlayerHistory(ctx context.Context, playerID, month string) ([]domain.AttendanceRecord, error) {
	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, err
	}

	records := s.attendanceRepo.ListByPlayer(ctx, playerID)
	if month == "" {
		return records, nil
	}

	out := make([]domain.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if strings.HasPrefix(r.Date, month) {
			out = append(out, r)
		}
	}
	return out, nil
}
