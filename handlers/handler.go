// Package handlers exposes the dashboard store over HTTP.
package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"smartstock/store"
)

const defaultJWTTTL = 72 * time.Hour

// Config wires a Handler.
type Config struct {
	Store     *store.Store
	JWTSecret []byte
	JWTTTL    time.Duration
	Logger    *zap.Logger
	// Background bounds work that outlives a request, such as async refreshes.
	Background context.Context
	Now        func() time.Time
}

// Handler serves the dashboard API.
type Handler struct {
	store      *store.Store
	validate   *validator.Validate
	jwtSecret  []byte
	jwtTTL     time.Duration
	log        *zap.Logger
	background context.Context
	now        func() time.Time
}

// New returns a Handler for cfg.
func New(cfg Config) *Handler {
	h := &Handler{
		store:      cfg.Store,
		validate:   validator.New(),
		jwtSecret:  cfg.JWTSecret,
		jwtTTL:     cfg.JWTTTL,
		log:        cfg.Logger,
		background: cfg.Background,
		now:        cfg.Now,
	}
	if h.jwtTTL <= 0 {
		h.jwtTTL = defaultJWTTTL
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if h.background == nil {
		h.background = context.Background()
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"status": "success", "data": data})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"status": "error", "message": message})
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" failed on "+fe.Tag())
	}
	return "Validation failed: " + strings.Join(msgs, "; ")
}

// HandleHealth reports liveness.
// GET /healthz
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return success(c, fiber.Map{"loading": h.store.IsLoading()})
}
