package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"smartstock/store"
)

// HandleRefresh starts a refresh and answers 202 immediately. With
// ?wait=true it blocks until the refresh finishes.
// POST /api/v1/refresh
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	if !c.QueryBool("wait", false) {
		go func() {
			if err := h.store.RefreshData(h.background); err != nil {
				h.log.Warn("background refresh failed", zap.Error(err))
			}
		}()
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "success", "data": fiber.Map{"isLoading": true}})
	}

	err := h.store.RefreshData(c.UserContext())
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNoRefresher):
		return fail(c, fiber.StatusServiceUnavailable, "No refresh source configured")
	case errors.Is(err, context.DeadlineExceeded):
		return fail(c, fiber.StatusGatewayTimeout, "Refresh timed out")
	default:
		return fail(c, fiber.StatusBadGateway, "Refresh failed")
	}

	snap := h.store.Snapshot()
	return success(c, fiber.Map{
		"isLoading":    snap.IsLoading,
		"storeMetrics": snap.StoreMetrics,
		"briefing":     snap.Briefing,
	})
}
