package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleGetUI returns the UI/session fields.
// GET /api/v1/ui
func (h *Handler) HandleGetUI(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	return success(c, fiber.Map{
		"activeTab":                  snap.ActiveTab,
		"searchQuery":                snap.SearchQuery,
		"theme":                      snap.Theme,
		"resolvedTheme":              snap.ResolvedTheme,
		"isLoading":                  snap.IsLoading,
		"selectedRecommendations":    snap.SelectedRecommendations,
		"currentRecommendationIndex": snap.CurrentRecommendationIndex,
	})
}

// HandleSetActiveTab switches the active tab.
// PUT /api/v1/ui/tab
func (h *Handler) HandleSetActiveTab(c *fiber.Ctx) error {
	var body struct {
		Tab string `json:"tab" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := h.validate.Struct(body); err != nil || !h.store.SetActiveTab(body.Tab) {
		return fail(c, fiber.StatusBadRequest, "tab must not be blank")
	}
	return success(c, fiber.Map{"activeTab": body.Tab})
}

// HandleSetSearchQuery stores the search text.
// PUT /api/v1/ui/search
func (h *Handler) HandleSetSearchQuery(c *fiber.Ctx) error {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	h.store.SetSearchQuery(body.Query)
	return success(c, fiber.Map{"searchQuery": body.Query})
}

// HandleToggleTheme advances the theme cycle.
// POST /api/v1/ui/theme/toggle
func (h *Handler) HandleToggleTheme(c *fiber.Ctx) error {
	theme, resolved := h.store.ToggleTheme()
	return success(c, fiber.Map{"theme": theme, "resolvedTheme": resolved})
}
