package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"amps-backend/internal/config"
	"amps-backend/internal/core/domain"
)

// InsightService calls the external text-generation collaborator with
// aggregate dashboard statistics. Any failure degrades to an empty insight;
// the dashboard never blocks or errors on this path.
type InsightService struct {
	url     string
	apiKey  string
	client  *http.Client
	enabled bool
}

// NewInsightService creates a new insight service. It is disabled when no
// endpoint is configured.
func NewInsightService(cfg *config.Config) *InsightService {
	return &InsightService{
		url:     cfg.Insights.URL,
		apiKey:  cfg.Insights.APIKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		enabled: cfg.Insights.URL != "",
	}
}

// IsEnabled checks if insight generation is enabled
func (s *InsightService) IsEnabled() bool {
	return s.enabled
}

// insightRequest is the payload sent to the generator
type insightRequest struct {
	Prompt string                `json:"prompt"`
	Stats  domain.DashboardStats `json:"stats"`
}

// insightResponse is the generator's reply
type insightResponse struct {
	Insight string `json:"insight"`
}

// GenerateAttendanceInsights asks the collaborator for a short analysis of
// the current stats and top teams. It returns "" when disabled or on any
// failure.
func (s *InsightService) GenerateAttendanceInsights(ctx context.Context, stats domain.DashboardStats, teams []domain.Team) string {
	if !s.enabled {
		return ""
	}

	if len(teams) > 3 {
		teams = teams[:3]
	}
	prompt := fmt.Sprintf(
		"Analyse this school sports program: %d players across %d teams, %d checked in today, %d upcoming events.",
		stats.TotalPlayers, stats.ActiveTeams, stats.AttendanceToday, stats.UpcomingEvents)
	for _, t := range teams {
		prompt += fmt.Sprintf(" Team %s (%s).", t.Name, t.Category)
	}

	body, err := json.Marshal(insightRequest{Prompt: prompt, Stats: stats})
	if err != nil {
		log.Printf("⚠️ Insight request build failed: %v", err)
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewBuffer(body))
	if err != nil {
		log.Printf("⚠️ Insight request build failed: %v", err)
		return ""
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("⚠️ Insight generator unreachable: %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ Insight generator returned status %d", resp.StatusCode)
		return ""
	}

	var out insightResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("⚠️ Insight response decode failed: %v", err)
		return ""
	}
	return out.Insight
}
