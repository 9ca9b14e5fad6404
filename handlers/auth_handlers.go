package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"smartstock/models"
)

// HandleLogin accepts any non-empty username and password and returns a JWT
// carrying the dashboard profile's role.
// POST /api/v1/auth/login
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return fail(c, fiber.StatusUnauthorized, "Username and password are required")
	}

	profile := h.store.Snapshot().UserProfile
	token, err := h.createJWT(req.Username, profile.Role)
	if err != nil {
		h.log.Error("could not sign token", zap.String("username", req.Username), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Could not sign token")
	}

	return success(c, fiber.Map{"accessToken": token, "user": profile})
}

func (h *Handler) createJWT(username string, role models.UserRole) (string, error) {
	now := h.now()
	claims := models.JwtClaims{
		Username: username,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.jwtTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}
