package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartstock/models"
	"smartstock/utils"
)

type eventRequest struct {
	ID                        string           `json:"id"`
	Name                      string           `json:"name" validate:"required"`
	Type                      models.EventType `json:"type" validate:"omitempty,oneof=FOOTBALL FESTIVAL CONCERT WEATHER HOLIDAY"`
	Date                      time.Time        `json:"date" validate:"required"`
	Impact                    models.Priority  `json:"impact" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	AffectedCategories        []string         `json:"affectedCategories" validate:"dive,required"`
	EstimatedDemandMultiplier float64          `json:"estimatedDemandMultiplier" validate:"gte=0"`
	Location                  string           `json:"location"`
	Description               string           `json:"description"`
}

func (r eventRequest) toEvent() models.Event {
	return models.Event{
		ID:                        r.ID,
		Name:                      r.Name,
		Type:                      r.Type,
		Date:                      r.Date,
		Impact:                    r.Impact,
		AffectedCategories:        r.AffectedCategories,
		EstimatedDemandMultiplier: r.EstimatedDemandMultiplier,
		Location:                  utils.StringPtr(r.Location),
		Description:               utils.StringPtr(r.Description),
	}
}

func (h *Handler) parseEvent(c *fiber.Ctx) (models.Event, bool, error) {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return models.Event{}, false, fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := h.validate.Struct(req); err != nil {
		return models.Event{}, false, fail(c, fiber.StatusBadRequest, validationMessage(err))
	}
	return req.toEvent(), true, nil
}

// HandleListEvents returns events, newest first. ?upcomingDays=N keeps only
// events within the next N days.
// GET /api/v1/events
func (h *Handler) HandleListEvents(c *fiber.Ctx) error {
	events := h.store.Snapshot().Events
	days := c.QueryInt("upcomingDays", 0)
	if days < 0 {
		return fail(c, fiber.StatusBadRequest, "upcomingDays must not be negative")
	}
	if days > 0 {
		now := h.now()
		window := time.Duration(days) * 24 * time.Hour
		upcoming := make([]models.Event, 0, len(events))
		for _, e := range events {
			if e.Upcoming(now, window) {
				upcoming = append(upcoming, e)
			}
		}
		events = upcoming
	}
	return success(c, events)
}

// HandleCreateEvent adds an event. With ?generate=true recommendations are
// synthesised from it in the same request.
// POST /api/v1/events
func (h *Handler) HandleCreateEvent(c *fiber.Ctx) error {
	e, ok, err := h.parseEvent(c)
	if !ok {
		return err
	}

	stored := h.store.AddEvent(e)
	data := fiber.Map{"event": stored}
	if c.QueryBool("generate", false) {
		data["recommendations"] = h.store.GenerateEventRecommendations(stored)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": data})
}

// HandleGenerateEventRecommendations synthesises recommendations from an
// event without adding the event itself.
// POST /api/v1/events/generate
func (h *Handler) HandleGenerateEventRecommendations(c *fiber.Ctx) error {
	e, ok, err := h.parseEvent(c)
	if !ok {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	recs := h.store.GenerateEventRecommendations(e)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"recommendations":        recs,
			"pendingRecommendations": h.store.Snapshot().StoreMetrics.PendingRecommendations,
		},
	})
}
