package handlers

import (
	"amps-backend/internal/core/domain"
	"amps-backend/internal/core/services"
	"amps-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ScheduleHandler handles schedule endpoints
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// ListSchedule handles listing all events
// @Summary List schedule
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /schedule [get]
func (h *ScheduleHandler) ListSchedule(c *fiber.Ctx) error {
	events := h.scheduleService.ListSchedule(c.Context())
	return response.Success(c, "Schedule retrieved successfully", fiber.Map{
		"events": events,
	})
}

// UpcomingEvents handles listing events dated today or later
// @Summary List upcoming events
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /schedule/upcoming [get]
func (h *ScheduleHandler) UpcomingEvents(c *fiber.Ctx) error {
	events := h.scheduleService.UpcomingEvents(c.Context())
	return response.Success(c, "Upcoming events retrieved successfully", fiber.Map{
		"events": events,
	})
}

// AddEventRequest represents add event request body
type AddEventRequest struct {
	TeamID    string `json:"teamId"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Location  string `json:"location"`
	Type      string `json:"type"`
}

// AddEvent handles appending an event (Admin / Master In-Charge)
// @Summary Add schedule event
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddEventRequest true "Event data"
// @Success 201 {object} response.Response
// @Router /schedule [post]
func (h *ScheduleHandler) AddEvent(c *fiber.Ctx) error {
	var req AddEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Title == "" || req.Date == "" || req.TeamID == "" {
		return response.BadRequest(c, "teamId, title and date are required")
	}

	event := &domain.ScheduleEvent{
		TeamID:    req.TeamID,
		Title:     req.Title,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Type:      domain.EventType(req.Type),
	}
	if err := h.scheduleService.AddEvent(c.Context(), event); err != nil {
		return response.InternalServerError(c, "Failed to add event")
	}

	return response.Created(c, "Event added successfully", fiber.Map{
		"event": event,
	})
}
