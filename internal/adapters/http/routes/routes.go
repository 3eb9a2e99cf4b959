package routes

import (
	"time"

	"amps-backend/internal/adapters/http/handlers"
	"amps-backend/internal/adapters/http/middleware"
	"amps-backend/internal/adapters/persistence/blob"
	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/config"
	"amps-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Services bundles the wired service layer so the caller can share it with
// background workers
type Services struct {
	Auth       *services.AuthService
	User       *services.UserService
	Roster     *services.RosterService
	Schedule   *services.ScheduleService
	Attendance *services.AttendanceService
	Dashboard  *services.DashboardService
	Settings   *services.SettingsService
	Insight    *services.InsightService
	Reminder   *services.ReminderService
}

// Setup wires repositories, services and handlers onto the app and returns
// the service layer
func Setup(app *fiber.App, store blob.Store, seed *config.SeedData, cfg *config.Config) *Services {
	// Repositories hydrate from storage, falling back to the seed dataset
	userRepo := repositories.NewUserRepository(store, seed.Users)
	teamRepo := repositories.NewTeamRepository(store, seed.Teams)
	playerRepo := repositories.NewPlayerRepository(store, seed.Players)
	scheduleRepo := repositories.NewScheduleRepository(store, seed.Schedule)
	attendanceRepo := repositories.NewAttendanceRepository(store, seed.Attendance)
	settingsRepo := repositories.NewSettingsRepository(store, seed.Settings)

	svc := &Services{
		Auth:       services.NewAuthService(userRepo, cfg),
		User:       services.NewUserService(userRepo, cfg),
		Roster:     services.NewRosterService(teamRepo, playerRepo),
		Schedule:   services.NewScheduleService(scheduleRepo),
		Attendance: services.NewAttendanceService(teamRepo, playerRepo, attendanceRepo),
		Dashboard:  services.NewDashboardService(teamRepo, playerRepo, scheduleRepo, attendanceRepo),
		Settings:   services.NewSettingsService(settingsRepo),
		Insight:    services.NewInsightService(cfg),
		Reminder:   services.NewReminderService(scheduleRepo, teamRepo),
	}

	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(svc.Auth)
	userHandler := handlers.NewUserHandler(svc.User, svc.Auth)
	teamHandler := handlers.NewTeamHandler(svc.Roster, svc.Schedule)
	playerHandler := handlers.NewPlayerHandler(svc.Roster, svc.Attendance)
	attendanceHandler := handlers.NewAttendanceHandler(svc.Attendance)
	scheduleHandler := handlers.NewScheduleHandler(svc.Schedule)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard, svc.Roster, svc.Insight)
	settingsHandler := handlers.NewSettingsHandler(svc.Settings)

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api/v1")
	api.Get("/", healthHandler.APIInfo)

	setupAuthRoutes(api, authHandler, cfg)

	protected := api.Group("", middleware.AuthMiddleware(cfg))
	setupUserRoutes(protected, userHandler)
	setupTeamRoutes(protected, teamHandler)
	setupPlayerRoutes(protected, playerHandler)
	setupAttendanceRoutes(protected, attendanceHandler)
	setupScheduleRoutes(protected, scheduleHandler)
	setupDashboardRoutes(protected, dashboardHandler)
	setupSettingsRoutes(protected, settingsHandler)

	return svc
}

func setupAuthRoutes(api fiber.Router, h *handlers.AuthHandler, cfg *config.Config) {
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), h.Login)
	auth.Post("/forgot-password", middleware.AuthRateLimiter(), h.ForgotPassword)
	auth.Post("/logout", middleware.AuthMiddleware(cfg), h.Logout)
	auth.Get("/me", middleware.AuthMiddleware(cfg), h.Me)
}

func setupUserRoutes(api fiber.Router, h *handlers.UserHandler) {
	// Own profile, any role
	api.Get("/profile", h.GetProfile)
	api.Put("/profile", h.UpdateProfile)

	// User administration, Admin only
	users := api.Group("/users", middleware.AdminOnly())
	users.Get("/", h.ListUsers)
	users.Post("/", h.CreateUser)
	users.Get("/:id", h.GetUser)
	users.Put("/:id", h.UpdateUser)
	users.Put("/:id/password", h.ResetPassword)
}

func setupTeamRoutes(api fiber.Router, h *handlers.TeamHandler) {
	// Rosters and team lists change rarely; let clients cache them briefly
	teams := api.Group("/teams", middleware.CacheControl(time.Minute))
	teams.Get("/", h.ListTeams)
	teams.Get("/:id", h.GetTeam)
	teams.Get("/:id/players", h.GetTeamPlayers)
	teams.Get("/:id/events", h.GetTeamEvents)
	teams.Get("/:id/roster/export", h.ExportRoster)
	teams.Put("/:id", middleware.ManagementOnly(), h.UpdateTeam)
}

func setupPlayerRoutes(api fiber.Router, h *handlers.PlayerHandler) {
	players := api.Group("/players")
	players.Get("/", h.ListPlayers)
	players.Get("/:id", h.GetPlayer)
	players.Get("/:id/attendance", h.GetPlayerAttendance)
	players.Post("/", middleware.ManagementOnly(), h.CreatePlayer)
	players.Put("/:id", middleware.ManagementOnly(), h.UpdatePlayer)
	players.Delete("/:id", middleware.ManagementOnly(), h.DeletePlayer)
}

func setupAttendanceRoutes(api fiber.Router, h *handlers.AttendanceHandler) {
	attendance := api.Group("/attendance")
	attendance.Post("/", middleware.AttendanceTakers(), h.Mark)
	attendance.Get("/team/:teamId", h.GetTeamAttendance)
}

func setupScheduleRoutes(api fiber.Router, h *handlers.ScheduleHandler) {
	schedule := api.Group("/schedule", middleware.CacheControl(time.Minute))
	schedule.Get("/", h.ListSchedule)
	schedule.Get("/upcoming", h.UpcomingEvents)
	schedule.Post("/", middleware.ManagementOnly(), h.AddEvent)
}

func setupDashboardRoutes(api fiber.Router, h *handlers.DashboardHandler) {
	dashboard := api.Group("/dashboard", middleware.PrivateCacheControl(30*time.Second))
	dashboard.Get("/", h.GetMyDashboard)
	dashboard.Get("/stats", h.GetStats)
	dashboard.Get("/insights", h.GetInsights)
}

func setupSettingsRoutes(api fiber.Router, h *handlers.SettingsHandler) {
	settings := api.Group("/settings")
	settings.Get("/", h.GetSettings)
	settings.Put("/", middleware.AdminOnly(), h.UpdateSettings)
}
