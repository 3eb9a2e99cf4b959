package handlers

import (
	"errors"
	"fmt"

	"amps-backend/internal/core/domain"
	"amps-backend/internal/core/services"
	"amps-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TeamHandler handles team endpoints
type TeamHandler struct {
	rosterService   *services.RosterService
	scheduleService *services.ScheduleService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(rosterService *services.RosterService, scheduleService *services.ScheduleService) *TeamHandler {
	return &TeamHandler{
		rosterService:   rosterService,
		scheduleService: scheduleService,
	}
}

// ListTeams handles listing all teams
// @Summary List teams
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *fiber.Ctx) error {
	teams := h.rosterService.ListTeams(c.Context())
	return response.Success(c, "Teams retrieved successfully", fiber.Map{
		"teams": teams,
	})
}

// GetTeam handles getting a team by ID
// @Summary Get team by ID
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *fiber.Ctx) error {
	team, err := h.rosterService.GetTeam(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return response.NotFound(c, "Team not found")
		}
		return response.InternalServerError(c, "Failed to get team")
	}

	return response.Success(c, "Team retrieved successfully", fiber.Map{
		"team": team,
	})
}

// UpdateTeamRequest represents update team request body
type UpdateTeamRequest struct {
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Coaches  []domain.CoachInfo `json:"coaches"`
	Icon     string             `json:"icon"`
	LogoURL  string             `json:"logoUrl"`
}

// UpdateTeam handles updating a team (Admin / Master In-Charge)
// @Summary Update team
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param body body UpdateTeamRequest true "Team data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *fiber.Ctx) error {
	var req UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	team := &domain.Team{
		ID:       c.Params("id"),
		Name:     req.Name,
		Category: domain.TeamCategory(req.Category),
		Coaches:  req.Coaches,
		Icon:     req.Icon,
		LogoURL:  req.LogoURL,
	}

	if err := h.rosterService.UpdateTeam(c.Context(), team); err != nil {
		switch {
		case errors.Is(err, domain.ErrTeamNotFound):
			return response.NotFound(c, "Team not found")
		case errors.Is(err, domain.ErrTooManyCoaches):
			return response.BadRequest(c, fmt.Sprintf("A team may have at most %d coaches", domain.MaxCoachesPerTeam))
		default:
			return response.InternalServerError(c, "Failed to update team")
		}
	}

	return response.Success(c, "Team updated successfully", fiber.Map{
		"team": team,
	})
}

// GetTeamPlayers handles listing a team's roster
// @Summary Get team roster
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} response.Response
// @Router /teams/{id}/players [get]
func (h *TeamHandler) GetTeamPlayers(c *fiber.Ctx) error {
	players := h.rosterService.GetPlayersByTeam(c.Context(), c.Params("id"))
	return response.Success(c, "Players retrieved successfully", fiber.Map{
		"players": players,
	})
}

// GetTeamEvents handles listing a team's schedule
// @Summary Get team events
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} response.Response
// @Router /teams/{id}/events [get]
func (h *TeamHandler) GetTeamEvents(c *fiber.Ctx) error {
	events := h.scheduleService.GetEventsByTeam(c.Context(), c.Params("id"))
	return response.Success(c, "Events retrieved successfully", fiber.Map{
		"events": events,
	})
}

// ExportRoster streams a team's roster as a CSV download
// @Summary Export team roster as CSV
// @Tags Teams
// @Produce text/csv
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} response.Response
// @Router /teams/{id}/roster/export [get]
func (h *TeamHandler) ExportRoster(c *fiber.Ctx) error {
	content, filename, err := h.rosterService.ExportRosterCSV(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return response.NotFound(c, "Team not found")
		}
		return response.InternalServerError(c, "Failed to export roster")
	}

	return response.CSV(c, filename, content)
}
