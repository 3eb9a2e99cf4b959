package handlers

import (
	"errors"

	"amps-backend/internal/core/domain"
	"amps-backend/internal/core/services"
	"amps-backend/internal/pkg/pagination"
	"amps-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	rosterService     *services.RosterService
	attendanceService *services.AttendanceService
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *services.RosterService, attendanceService *services.AttendanceService) *PlayerHandler {
	return &PlayerHandler{
		rosterService:     rosterService,
		attendanceService: attendanceService,
	}
}

// PlayerRequest represents create/update player request body
type PlayerRequest struct {
	TeamID                string `json:"teamId"`
	Name                  string `json:"name"`
	Grade                 string `json:"grade"`
	Position              string `json:"position"`
	ContactParent         string `json:"contactParent"`
	PhotoURL              string `json:"photoUrl"`
	DOB                   string `json:"dob"`
	JoinedDate            string `json:"joinedDate"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	PerformanceNotes      string `json:"performanceNotes"`
	MedicalNotes          string `json:"medicalNotes"`
	AttendanceRate        int    `json:"attendanceRate"`
	Status                string `json:"status"`
}

func (r *PlayerRequest) toDomain(id string) *domain.Player {
	return &domain.Player{
		ID:                    id,
		TeamID:                r.TeamID,
		Name:                  r.Name,
		Grade:                 r.Grade,
		Position:              r.Position,
		ContactParent:         r.ContactParent,
		PhotoURL:              r.PhotoURL,
		DOB:                   r.DOB,
		JoinedDate:            r.JoinedDate,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
		PerformanceNotes:      r.PerformanceNotes,
		MedicalNotes:          r.MedicalNotes,
		AttendanceRate:        r.AttendanceRate,
		Status:                domain.PlayerStatus(r.Status),
	}
}

// ListPlayers handles listing all players, paginated
// @Summary List players
// @Tags Players
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(c *fiber.Ctx) error {
	players := h.rosterService.ListPlayers(c.Context())

	params := pagination.GetParams(c)
	lo, hi := pagination.Slice(params, len(players))

	return response.Success(c, "Players retrieved successfully",
		pagination.NewResponse(players[lo:hi], params, int64(len(players))))
}

// GetPlayer handles getting a player by ID
// @Summary Get player by ID
// @Tags Players
// @Produce json
// @Security BearerAuth
// @Param id path string true "Player ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *fiber.Ctx) error {
	player, err := h.rosterService.GetPlayer(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return response.NotFound(c, "Player not found")
		}
		return response.InternalServerError(c, "Failed to get player")
	}

	return response.Success(c, "Player retrieved successfully", fiber.Map{
		"player": player,
	})
}

// CreatePlayer handles adding a player (Admin / Master In-Charge)
// @Summary Create player
// @Tags Players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PlayerRequest true "Player data"
// @Success 201 {object} response.Response
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *fiber.Ctx) error {
	var req PlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" || req.TeamID == "" {
		return response.BadRequest(c, "Name and teamId are required")
	}

	player := req.toDomain("")
	if err := h.rosterService.AddPlayer(c.Context(), player); err != nil {
		return response.InternalServerError(c, "Failed to create player")
	}

	return response.Created(c, "Player created successfully", fiber.Map{
		"player": player,
	})
}

// UpdatePlayer handles updating a player (Admin / Master In-Charge)
// @Summary Update player
// @Tags Players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Player ID"
// @Param body body PlayerRequest true "Player data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *fiber.Ctx) error {
	var req PlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" || req.TeamID == "" {
		return response.BadRequest(c, "Name and teamId are required")
	}

	player := req.toDomain(c.Params("id"))
	if err := h.rosterService.UpdatePlayer(c.Context(), player); err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return response.NotFound(c, "Player not found")
		}
		return response.InternalServerError(c, "Failed to update player")
	}

	return response.Success(c, "Player updated successfully", fiber.Map{
		"player": player,
	})
}

// DeletePlayer handles removing a player (Admin / Master In-Charge)
// @Summary Delete player
// @Tags Players
// @Produce json
// @Security BearerAuth
// @Param id path string true "Player ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *fiber.Ctx) error {
	if err := h.rosterService.DeletePlayer(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return response.NotFound(c, "Player not found")
		}
		return response.InternalServerError(c, "Failed to delete player")
	}

	return response.Success(c, "Player deleted successfully", nil)
}

// GetPlayerAttendance handles a player's attendance history, optionally
// filtered by month (?month=2006-01)
// @Summary Get player attendance history
// @Tags Players
// @Produce json
// @Security BearerAuth
// @Param id path string true "Player ID"
// @Param month query string false "Month filter (YYYY-MM)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /players/{id}/attendance [get]
func (h *PlayerHandler) GetPlayerAttendance(c *fiber.Ctx) error {
	records, err := h.attendanceService.GetPlayerHistory(c.Context(), c.Params("id"), c.Query("month"))
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return response.NotFound(c, "Player not found")
		}
		return response.InternalServerError(c, "Failed to get attendance history")
	}

	return response.Success(c, "Attendance history retrieved successfully", fiber.Map{
		"records": records,
	})
}
