package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/models"
)

var testSecret = []byte("test-secret")

// Helper to create an app with a pre-local middleware that sets userRole
func makeAppWithRole(role string, check fiber.Handler) *fiber.App {
	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		return c.Next()
	})

	app.Use(check)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(200).SendString("ok")
	})

	return app
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, expires time.Time) string {
	t.Helper()
	claims := models.JwtClaims{
		Username: "takeshi",
		Role:     string(models.RoleStoreManager),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func jwtApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTMiddleware(testSecret))
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("username").(string) + ":" + c.Locals("userRole").(string))
	})
	return app
}

func TestCheckRole_AllowsListedRole(t *testing.T) {
	app := makeAppWithRole("STORE_MANAGER", CheckRole(models.RoleStoreManager, models.RoleAdmin))
	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestCheckRole_NormalizesRole(t *testing.T) {
	app := makeAppWithRole("admin", CheckRole(models.RoleAdmin))
	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestCheckRole_DeniesOtherRole(t *testing.T) {
	app := makeAppWithRole("STORE_MANAGER", CheckRole(models.RoleAdmin))
	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestCheckRole_DeniesMissingRole(t *testing.T) {
	app := fiber.New()
	app.Use(CheckRole(models.RoleAdmin))
	app.Get("/test", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestJWTMiddleware_AcceptsValidToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, time.Now().Add(time.Hour)))

	resp, err := jwtApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestJWTMiddleware_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"no bearer":      signToken(t, jwt.SigningMethodHS256, testSecret, time.Now().Add(time.Hour)),
		"wrong secret":   "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), time.Now().Add(time.Hour)),
		"expired":        "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, time.Now().Add(-time.Hour)),
		"garbage":        "Bearer not-a-token",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp, err := jwtApp().Test(req)
			require.NoError(t, err)
			assert.Equal(t, 401, resp.StatusCode)
		})
	}
}
