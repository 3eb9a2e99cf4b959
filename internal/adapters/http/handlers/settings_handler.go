package handlers

import (
	"amps-backend/internal/core/domain"
	"amps-backend/internal/core/services"
	"amps-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles app settings endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles reading the app settings
// @Summary Get app settings
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings := h.settingsService.Get(c.Context())
	return response.Success(c, "Settings retrieved successfully", fiber.Map{
		"settings": settings,
	})
}

// UpdateSettingsRequest represents update settings request body
type UpdateSettingsRequest struct {
	SchoolName string `json:"schoolName"`
	LogoURL    string `json:"logoUrl"`
}

// UpdateSettings handles replacing the app settings (Admin only)
// @Summary Update app settings
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateSettingsRequest true "Settings"
// @Success 200 {object} response.Response
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.SchoolName == "" {
		return response.BadRequest(c, "schoolName is required")
	}

	settings := domain.AppSettings{
		SchoolName: req.SchoolName,
		LogoURL:    req.LogoURL,
	}
	if err := h.settingsService.Replace(c.Context(), settings); err != nil {
		return response.InternalServerError(c, "Failed to update settings")
	}

	return response.Success(c, "Settings updated successfully", fiber.Map{
		"settings": settings,
	})
}
