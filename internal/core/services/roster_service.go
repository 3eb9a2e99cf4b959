package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"time"

	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/core/domain"

	"github.com/google/uuid"
)

// RosterService handles team and player business logic
type RosterService struct {
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
}

// NewRosterService creates a new roster service
func NewRosterService(teamRepo repositories.TeamRepository, playerRepo repositories.PlayerRepository) *RosterService {
	return &RosterService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

// ListTeams returns every team
func (s *RosterService) ListTeams(ctx context.Context) []domain.Team {
	return s.teamRepo.List(ctx)
}

// GetTeam gets a team by ID
func (s *RosterService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

// UpdateTeam replaces a team wholesale. The coaches list is capped at three;
// the repository itself stays unvalidating.
func (s *RosterService) UpdateTeam(ctx context.Context, team *domain.Team) error {
	if len(team.Coaches) > domain.MaxCoachesPerTeam {
		return domain.ErrTooManyCoaches
	}
	return s.teamRepo.Update(ctx, team)
}

// ListPlayers returns every player
func (s *RosterService) ListPlayers(ctx context.Context) []domain.Player {
	return s.playerRepo.List(ctx)
}

// GetPlayer gets a player by ID
func (s *RosterService) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	return s.playerRepo.GetByID(ctx, id)
}

// GetPlayersByTeam returns a team's players in insertion order
func (s *RosterService) GetPlayersByTeam(ctx context.Context, teamID string) []domain.Player {
	return s.playerRepo.ListByTeam(ctx, teamID)
}

// AddPlayer creates a new player, assigning an ID when none is given
func (s *RosterService) AddPlayer(ctx context.Context, player *domain.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	if player.Status == "" {
		player.Status = domain.PlayerActive
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return err
	}
	log.Printf("✅ Player added: %s (team %s)", player.Name, player.TeamID)
	return nil
}

// UpdatePlayer replaces a player wholesale by ID
func (s *RosterService) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	return s.playerRepo.Update(ctx, player)
}

// DeletePlayer removes a player by ID
func (s *RosterService) DeletePlayer(ctx context.Context, id string) error {
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("✅ Player deleted: %s", id)
	return nil
}

// ExportRosterCSV renders a team's roster as CSV and returns the content
// together with a dated filename
func (s *RosterService) ExportRosterCSV(ctx context.Context, teamID string) ([]byte, string, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, "", err
	}

	players := s.playerRepo.ListByTeam(ctx, teamID)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Name", "Grade", "Position", "Status", "Attendance Rate", "Parent Contact", "Emergency Contact", "Emergency Phone"})
	for _, p := range players {
		_ = w.Write([]string{
			p.Name,
			p.Grade,
			p.Position,
			string(p.Status),
			fmt.Sprintf("%d%%", p.AttendanceRate),
			p.ContactParent,
			p.EmergencyContactName,
			p.EmergencyContactPhone,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_Roster_%s.csv", team.Name, time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
