package services

import (
	"context"
	"log"
	"time"

	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/core/domain"

	"github.com/google/uuid"
)

// ScheduleService handles schedule business logic
type ScheduleService struct {
	scheduleRepo repositories.ScheduleRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(scheduleRepo repositories.ScheduleRepository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo}
}

// ListSchedule returns every event
func (s *ScheduleService) ListSchedule(ctx context.Context) []domain.ScheduleEvent {
	return s.scheduleRepo.List(ctx)
}

// GetEventsByTeam returns a team's events
func (s *ScheduleService) GetEventsByTeam(ctx context.Context, teamID string) []domain.ScheduleEvent {
	return s.scheduleRepo.ListByTeam(ctx, teamID)
}

// AddEvent appends a new event, assigning an ID when none is given.
// The schedule is append-only.
func (s *ScheduleService) AddEvent(ctx context.Context, event *domain.ScheduleEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if err := s.scheduleRepo.Create(ctx, event); err != nil {
		return err
	}
	log.Printf("✅ Event added: %s on %s (team %s)", event.Title, event.Date, event.TeamID)
	return nil
}

// UpcomingEvents returns events dated today or later, in insertion order
func (s *ScheduleService) UpcomingEvents(ctx context.Context) []domain.ScheduleEvent {
	today := time.Now().Format("2006-01-02")
	events := s.scheduleRepo.List(ctx)

	out := make([]domain.ScheduleEvent, 0)
	for _, e := range events {
		if e.Date >= today {
			out = append(out, e)
		}
	}
	return out
}

// TodaysEvents returns events dated today
func (s *ScheduleService) TodaysEvents(ctx context.Context) []domain.ScheduleEvent {
	today := time.Now().Format("2006-01-02")
	events := s.scheduleRepo.List(ctx)

	out := make([]domain.ScheduleEvent, 0)
	for _, e := range events {
		if e.Date == today {
			out = append(out, e)
		}
	}
	return out
}
