package handlers

import (
	"errors"

	"amps-backend/internal/core/domain"
	"amps-backend/internal/core/services"
	"amps-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// MarkAttendanceRequest represents an attendance batch commit
type MarkAttendanceRequest struct {
	TeamID         string            `json:"teamId"`
	Date           string            `json:"date"`
	Marks          map[string]string `json:"marks"`
	AllPresent     bool              `json:"allPresent"`
	ConfirmPartial bool              `json:"confirmPartial"`
}

// Mark commits an attendance batch for one team and date. Coaches are
// confined to their assigned team.
// @Summary Mark attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MarkAttendanceRequest true "Attendance batch"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /attendance [post]
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.TeamID == "" || req.Date == "" {
		return response.BadRequest(c, "teamId and date are required")
	}

	role, _ := c.Locals("role").(string)
	if domain.Role(role) == domain.RoleCoach {
		assignedTeamID, _ := c.Locals("assignedTeamID").(string)
		if assignedTeamID != req.TeamID {
			return response.Forbidden(c, "Coaches may only mark their assigned team")
		}
	}

	marks := make(map[string]domain.AttendanceStatus, len(req.Marks))
	for playerID, status := range req.Marks {
		marks[playerID] = domain.AttendanceStatus(status)
	}

	records, err := h.attendanceService.Mark(c.Context(), &services.MarkInput{
		TeamID:         req.TeamID,
		Date:           req.Date,
		Marks:          marks,
		AllPresent:     req.AllPresent,
		ConfirmPartial: req.ConfirmPartial,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTeamNotFound):
			return response.NotFound(c, "Team not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid attendance status")
		case errors.Is(err, domain.ErrEmptyBatch):
			return response.BadRequest(c, "No players marked")
		case errors.Is(err, domain.ErrPartialUnconfirmed):
			return response.Conflict(c, "Not all players are marked; set confirmPartial to save anyway")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Date is required")
		default:
			return response.InternalServerError(c, "Failed to save attendance")
		}
	}

	return response.Success(c, "Attendance saved successfully", fiber.Map{
		"records": records,
	})
}

// GetTeamAttendance returns a team's records for one date (?date=YYYY-MM-DD)
// @Summary Get team attendance for a date
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendance/team/{teamId} [get]
func (h *AttendanceHandler) GetTeamAttendance(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return response.BadRequest(c, "date query parameter is required")
	}

	records, err := h.attendanceService.GetTeamAttendance(c.Context(), c.Params("teamId"), date)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return response.NotFound(c, "Team not found")
		}
		return response.InternalServerError(c, "Failed to get attendance")
	}

	return response.Success(c, "Attendance retrieved successfully", fiber.Map{
		"records": records,
	})
}
