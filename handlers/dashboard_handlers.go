package handlers

import (
	"github.com/gofiber/fiber/v2"

	"smartstock/models"
)

// HandleGetDashboard returns the full dashboard snapshot.
// GET /api/v1/dashboard
func (h *Handler) HandleGetDashboard(c *fiber.Ctx) error {
	return success(c, h.store.Snapshot())
}

// HandleGetKPIs returns the KPI tiles.
// GET /api/v1/kpis
func (h *Handler) HandleGetKPIs(c *fiber.Ctx) error {
	return success(c, h.store.Snapshot().KPITiles)
}

// HandleGetBundles returns bundle offers, only active ones when ?active=true.
// GET /api/v1/bundles
func (h *Handler) HandleGetBundles(c *fiber.Ctx) error {
	bundles := h.store.Snapshot().Bundles
	if c.QueryBool("active", false) {
		active := make([]models.Bundle, 0, len(bundles))
		for _, b := range bundles {
			if b.Active {
				active = append(active, b)
			}
		}
		bundles = active
	}
	return success(c, bundles)
}

// HandleGetDemandBubbles returns the demand chart points.
// GET /api/v1/demand-bubbles
func (h *Handler) HandleGetDemandBubbles(c *fiber.Ctx) error {
	return success(c, h.store.Snapshot().DemandBubbles)
}

// HandleGetWeather returns the weather impact card.
// GET /api/v1/weather
func (h *Handler) HandleGetWeather(c *fiber.Ctx) error {
	return success(c, h.store.Snapshot().WeatherImpact)
}

// HandleGetProfile returns the signed-in user's profile.
// GET /api/v1/profile
func (h *Handler) HandleGetProfile(c *fiber.Ctx) error {
	return success(c, h.store.Snapshot().UserProfile)
}

// HandleGetStoreMetrics returns the store metrics card.
// GET /api/v1/metrics/store
func (h *Handler) HandleGetStoreMetrics(c *fiber.Ctx) error {
	return success(c, h.store.Snapshot().StoreMetrics)
}

// HandleUpdateStoreMetrics merges the given fields into the store metrics.
// PATCH /api/v1/metrics/store
func (h *Handler) HandleUpdateStoreMetrics(c *fiber.Ctx) error {
	var patch models.StoreMetricsPatch
	if err := c.BodyParser(&patch); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	return success(c, h.store.UpdateStoreMetrics(patch))
}
