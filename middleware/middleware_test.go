package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanjijikfarm/config"
	"sanjijikfarm/models"
)

func signToken(t *testing.T, secret, username string) string {
	t.Helper()
	claims := models.JwtClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", JWTMiddleware, func(c *fiber.Ctx) error {
		username, err := ExtractUsername(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}
		return c.JSON(fiber.Map{"username": username})
	})
	return app
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := protectedApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "jeju-user"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewarePassesUsernameThrough(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := protectedApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "jeju-user"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
