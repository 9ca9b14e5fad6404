package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"smartstock/handlers"
	"smartstock/metrics"
	"smartstock/middleware"
	"smartstock/models"
)

// SetupRoutes defines all the routes for the application. m may be nil, in
// which case /metrics is not served.
func SetupRoutes(app *fiber.App, h *handlers.Handler, jwtSecret []byte, m *metrics.Metrics) {
	app.Get("/healthz", h.HandleHealth)
	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", h.HandleLogin)

	// Everything below requires a token; writes also require a manager role.
	protected := api.Group("", middleware.JWTMiddleware(jwtSecret))
	managers := middleware.CheckRole(models.RoleStoreManager, models.RoleRegionalManager, models.RoleAdmin)

	// Dashboard
	protected.Get("/dashboard", h.HandleGetDashboard)
	protected.Get("/kpis", h.HandleGetKPIs)
	protected.Get("/bundles", h.HandleGetBundles)
	protected.Get("/demand-bubbles", h.HandleGetDemandBubbles)
	protected.Get("/weather", h.HandleGetWeather)
	protected.Get("/profile", h.HandleGetProfile)
	protected.Get("/metrics/store", h.HandleGetStoreMetrics)
	protected.Patch("/metrics/store", managers, h.HandleUpdateStoreMetrics)

	// Recommendations
	recs := protected.Group("/recommendations")
	recs.Get("/", h.HandleListRecommendations)
	recs.Get("/summary", h.HandleRecommendationSummary) // Must be before /:id routes
	recs.Post("/select-all", h.HandleSelectAll)
	recs.Post("/deselect-all", h.HandleDeselectAll)
	recs.Post("/batch-approve", managers, h.HandleBatchApprove)
	recs.Post("/next", h.HandleNextRecommendation)
	recs.Post("/previous", h.HandlePreviousRecommendation)
	recs.Put("/cursor", h.HandleSetCursor)
	recs.Post("/:id/approve", managers, h.HandleApproveRecommendation)
	recs.Post("/:id/reject", managers, h.HandleRejectRecommendation)
	recs.Post("/:id/defer", managers, h.HandleDeferRecommendation)
	recs.Post("/:id/select", h.HandleToggleSelection)

	// Events
	events := protected.Group("/events")
	events.Get("/", h.HandleListEvents)
	events.Post("/", managers, h.HandleCreateEvent)
	events.Post("/generate", managers, h.HandleGenerateEventRecommendations)

	// UI state
	ui := protected.Group("/ui")
	ui.Get("/", h.HandleGetUI)
	ui.Put("/tab", h.HandleSetActiveTab)
	ui.Put("/search", h.HandleSetSearchQuery)
	ui.Post("/theme/toggle", h.HandleToggleTheme)

	protected.Post("/refresh", h.HandleRefresh)
}
