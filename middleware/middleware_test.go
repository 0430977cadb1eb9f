package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"bakehouse/config"
	"bakehouse/models"
)

func makeProtectedApp() *fiber.App {
	app := fiber.New()
	app.Use(Authenticate)
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(200).SendString("ok")
	})
	return app
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	claims := models.JwtClaims{
		UserID: "user-1",
		Role:   "owner",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	app := makeProtectedApp()
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 without header, got %d", resp.StatusCode)
	}
}

func TestAuthenticate_BadFormat(t *testing.T) {
	app := makeProtectedApp()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 for bad format, got %d", resp.StatusCode)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := makeProtectedApp()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for valid token, got %d", resp.StatusCode)
	}
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := makeProtectedApp()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 for wrong secret, got %d", resp.StatusCode)
	}
}

func TestCheckRole(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", "staff")
		return c.Next()
	})
	app.Use(CheckRole("owner"))
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Fatalf("expected 403 for wrong role, got %d", resp.StatusCode)
	}
}
