package handlers

import (
	"errors"

	"amps-backend/internal/core/domain"
	"amps-backend/internal/core/services"
	"amps-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles role-aware dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
	rosterService    *services.RosterService
	insightService   *services.InsightService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	dashboardService *services.DashboardService,
	rosterService *services.RosterService,
	insightService *services.InsightService,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		rosterService:    rosterService,
		insightService:   insightService,
	}
}

// GetStats handles the headline counters
// @Summary Dashboard stats
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats := h.dashboardService.Stats(c.Context())
	return response.Success(c, "Stats retrieved successfully", fiber.Map{
		"stats": stats,
	})
}

// GetMyDashboard renders the dashboard view matching the caller's role.
// Principals, Masters In-Charge and Admins get the school-wide overview,
// coaches their team, parents their linked player.
// @Summary Role-aware dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetMyDashboard(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	switch domain.Role(role) {
	case domain.RolePrincipal, domain.RoleMasterInCharge, domain.RoleAdmin:
		overview := h.dashboardService.SchoolOverview(c.Context())
		return response.Success(c, "Dashboard retrieved successfully", overview)

	case domain.RoleCoach:
		teamID, _ := c.Locals("assignedTeamID").(string)
		if teamID == "" {
			return response.BadRequest(c, "No team assigned to this account")
		}
		overview, err := h.dashboardService.CoachOverview(c.Context(), teamID)
		if err != nil {
			if errors.Is(err, domain.ErrTeamNotFound) {
				return response.NotFound(c, "Assigned team not found")
			}
			return response.InternalServerError(c, "Failed to build dashboard")
		}
		return response.Success(c, "Dashboard retrieved successfully", overview)

	case domain.RoleParent:
		playerID, _ := c.Locals("linkedPlayerID").(string)
		if playerID == "" {
			return response.BadRequest(c, "No player linked to this account")
		}
		overview, err := h.dashboardService.ParentOverview(c.Context(), playerID)
		if err != nil {
			if errors.Is(err, domain.ErrPlayerNotFound) {
				return response.NotFound(c, "Linked player not found")
			}
			return response.InternalServerError(c, "Failed to build dashboard")
		}
		return response.Success(c, "Dashboard retrieved successfully", overview)

	default:
		return response.Forbidden(c, "Unknown role")
	}
}

// GetInsights asks the external generator for a short attendance analysis.
// When the generator is disabled or unreachable the endpoint still answers
// 200 with a placeholder text.
// @Summary Attendance insights
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard/insights [get]
func (h *DashboardHandler) GetInsights(c *fiber.Ctx) error {
	stats := h.dashboardService.Stats(c.Context())
	teams := h.rosterService.ListTeams(c.Context())

	insight := h.insightService.GenerateAttendanceInsights(c.Context(), stats, teams)
	if insight == "" {
		insight = "No insight available right now."
	}

	return response.Success(c, "Insights retrieved successfully", fiber.Map{
		"insight": insight,
	})
}
