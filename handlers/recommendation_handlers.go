package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartstock/models"
	"smartstock/utils"
)

// HandleListRecommendations returns one page of recommendations filtered by
// ?q= (name or SKU, case-insensitive) and ?action=. Without q the store's
// search query is used.
// GET /api/v1/recommendations
func (h *Handler) HandleListRecommendations(c *fiber.Ctx) error {
	snap := h.store.Snapshot()

	query, hasQuery := c.Queries()["q"]
	if !hasQuery {
		query = snap.SearchQuery
	}
	query = strings.TrimSpace(query)

	var action models.RecAction
	if raw := c.Query("action"); raw != "" {
		action = models.RecAction(strings.ToUpper(raw))
		if !action.Valid() {
			return fail(c, fiber.StatusBadRequest, "Unknown action")
		}
	}

	filtered := make([]models.Recommendation, 0, len(snap.Recommendations))
	for _, r := range snap.Recommendations {
		if action != "" && r.Action != action {
			continue
		}
		if query != "" && !utils.ContainsFold(r.SKUName, query) && !utils.ContainsFold(r.SKU, query) {
			continue
		}
		filtered = append(filtered, r)
	}

	pagination := utils.CreatePagination(len(filtered), c.QueryInt("page", 1), c.QueryInt("pageSize", utils.DefaultPageSize))
	start, end := pagination.Bounds()

	return success(c, fiber.Map{
		"items":        filtered[start:end],
		"pagination":   pagination,
		"selected":     snap.SelectedRecommendations,
		"currentIndex": snap.CurrentRecommendationIndex,
	})
}

// HandleRecommendationSummary counts recommendations per action.
// GET /api/v1/recommendations/summary
func (h *Handler) HandleRecommendationSummary(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	byAction := make(map[models.RecAction]int, len(models.AllActions))
	for _, a := range models.AllActions {
		byAction[a] = 0
	}
	byPriority := map[models.Priority]int{}
	for _, r := range snap.Recommendations {
		byAction[r.Action]++
		byPriority[r.Priority]++
	}
	return success(c, fiber.Map{
		"total":                  len(snap.Recommendations),
		"pendingRecommendations": snap.StoreMetrics.PendingRecommendations,
		"selected":               len(snap.SelectedRecommendations),
		"byAction":               byAction,
		"byPriority":             byPriority,
	})
}

// HandleApproveRecommendation removes a recommendation as approved.
// POST /api/v1/recommendations/:id/approve
func (h *Handler) HandleApproveRecommendation(c *fiber.Ctx) error {
	id := c.Params("id")
	found := h.store.ApproveRecommendation(id)
	return h.resolved(c, id, found)
}

// HandleRejectRecommendation removes a recommendation as rejected.
// POST /api/v1/recommendations/:id/reject
func (h *Handler) HandleRejectRecommendation(c *fiber.Ctx) error {
	id := c.Params("id")
	found := h.store.RejectRecommendation(id)
	return h.resolved(c, id, found)
}

// resolved reports an approve/reject. Unknown ids still count against the
// pending counter, so they are answered with 200 and found=false.
func (h *Handler) resolved(c *fiber.Ctx, id string, found bool) error {
	return success(c, fiber.Map{
		"id":                     id,
		"found":                  found,
		"pendingRecommendations": h.store.Snapshot().StoreMetrics.PendingRecommendations,
	})
}

// HandleDeferRecommendation lowers a recommendation's priority to LOW.
// POST /api/v1/recommendations/:id/defer
func (h *Handler) HandleDeferRecommendation(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.store.DeferRecommendation(id) {
		return fail(c, fiber.StatusNotFound, "Recommendation not found")
	}
	return success(c, fiber.Map{"id": id, "priority": models.PriorityLow})
}

// HandleToggleSelection flips a recommendation in or out of the selection.
// POST /api/v1/recommendations/:id/select
func (h *Handler) HandleToggleSelection(c *fiber.Ctx) error {
	h.store.ToggleRecommendationSelection(c.Params("id"))
	return success(c, fiber.Map{"selected": h.store.Snapshot().SelectedRecommendations})
}

// HandleSelectAll selects every recommendation.
// POST /api/v1/recommendations/select-all
func (h *Handler) HandleSelectAll(c *fiber.Ctx) error {
	h.store.SelectAllRecommendations()
	return success(c, fiber.Map{"selected": h.store.Snapshot().SelectedRecommendations})
}

// HandleDeselectAll clears the selection.
// POST /api/v1/recommendations/deselect-all
func (h *Handler) HandleDeselectAll(c *fiber.Ctx) error {
	h.store.DeselectAllRecommendations()
	return success(c, fiber.Map{"selected": []string{}})
}

// HandleBatchApprove approves every selected recommendation.
// POST /api/v1/recommendations/batch-approve
func (h *Handler) HandleBatchApprove(c *fiber.Ctx) error {
	removed := h.store.BatchApproveRecommendations()
	return success(c, fiber.Map{
		"removed":                removed,
		"pendingRecommendations": h.store.Snapshot().StoreMetrics.PendingRecommendations,
	})
}

// HandleNextRecommendation advances the cursor.
// POST /api/v1/recommendations/next
func (h *Handler) HandleNextRecommendation(c *fiber.Ctx) error {
	h.store.NextRecommendation()
	return h.cursor(c)
}

// HandlePreviousRecommendation moves the cursor back.
// POST /api/v1/recommendations/previous
func (h *Handler) HandlePreviousRecommendation(c *fiber.Ctx) error {
	h.store.PreviousRecommendation()
	return h.cursor(c)
}

// HandleSetCursor moves the cursor to {"index": n}.
// PUT /api/v1/recommendations/cursor
func (h *Handler) HandleSetCursor(c *fiber.Ctx) error {
	var body struct {
		Index *int `json:"index" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := h.validate.Struct(body); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}
	h.store.SetRecommendationIndex(*body.Index)
	return h.cursor(c)
}

func (h *Handler) cursor(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	data := fiber.Map{"index": snap.CurrentRecommendationIndex, "total": len(snap.Recommendations)}
	if rec, ok := snap.CurrentRecommendation(); ok {
		data["recommendation"] = rec
	}
	return success(c, data)
}
