package services

import (
	"context"
	"log"

	"amps-backend/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService logs each team's events for the day every morning so
// coaches see them in the operational log
type ReminderService struct {
	scheduleRepo repositories.ScheduleRepository
	teamRepo     repositories.TeamRepository
	cron         *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(scheduleRepo repositories.ScheduleRepository, teamRepo repositories.TeamRepository) *ReminderService {
	return &ReminderService{
		scheduleRepo: scheduleRepo,
		teamRepo:     teamRepo,
		cron:         cron.New(),
	}
}

// Start schedules the daily reminder at 06:30
func (s *ReminderService) Start() {
	_, err := s.cron.AddFunc("30 6 * * *", s.sendDailyReminders)
	if err != nil {
		log.Printf("❌ Failed to schedule daily reminders: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 ReminderService started (daily 06:30)")
}

// Stop stops the cron scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReminderService stopped")
}

func (s *ReminderService) sendDailyReminders() {
	ctx := context.Background()

	schedule := NewScheduleService(s.scheduleRepo)
	events := schedule.TodaysEvents(ctx)
	if len(events) == 0 {
		return
	}

	for _, e := range events {
		teamName := e.TeamID
		if team, err := s.teamRepo.GetByID(ctx, e.TeamID); err == nil {
			teamName = team.Name
		}
		log.Printf("📅 Today: %s — %s %s-%s at %s", teamName, e.Title, e.StartTime, e.EndTime, e.Location)
	}
}
