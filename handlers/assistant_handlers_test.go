package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"bakehouse/branchgroups"
)

func TestAskAssistantRejectsEmptyQuestion(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/assistant/ask", HandleAskAssistant)

	req := httptest.NewRequest("POST", "/api/v1/assistant/ask", strings.NewReader(`{"question":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAskAssistantRejectsBadBody(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/assistant/ask", HandleAskAssistant)

	req := httptest.NewRequest("POST", "/api/v1/assistant/ask", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	assert.Equal(t, 400, resp.StatusCode)
}

func TestBranchRegistryStartsEmpty(t *testing.T) {
	reg := branchgroups.NewStore().Current()
	assert.Equal(t, branchgroups.GroupNone, reg.Membership("anything"))
}

func TestCreateOrderValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/orders", HandleCreateOrder)

	cases := []struct {
		name string
		body string
	}{
		{"missing branch", `{"orderDate":"2024-01-01","product":"Eclair","quantity":2}`},
		{"missing product", `{"orderDate":"2024-01-01","branch":"Arbat","quantity":2}`},
		{"non-positive quantity", `{"orderDate":"2024-01-01","branch":"Arbat","product":"Eclair","quantity":0}`},
		{"bad date", `{"orderDate":"someday","branch":"Arbat","product":"Eclair","quantity":2}`},
	}
	for _, c := range cases {
		req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(c.body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app test error: %v", c.name, err)
		}
		if resp.StatusCode != 400 {
			t.Fatalf("%s: expected 400, got %d", c.name, resp.StatusCode)
		}
	}
}

func TestCreateNeedValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/needs", HandleCreateNeed)

	req := httptest.NewRequest("POST", "/api/v1/needs", strings.NewReader(`{"branch":"","item":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	assert.Equal(t, 400, resp.StatusCode)
}

func TestSalesStatsRejectsBadDates(t *testing.T) {
	app := fiber.New()
	app.Get("/api/v1/stats/sales", HandleGetSalesStats)

	req := httptest.NewRequest("GET", "/api/v1/stats/sales?startDate=nope&endDate=2024-01-31", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	assert.Equal(t, 400, resp.StatusCode)
}
