package routes

import (
	"bakehouse/handlers"
	"bakehouse/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// Everything below requires a valid token.
	protected := api.Group("", middleware.Authenticate)

	// --- Branches ---
	branches := protected.Group("/branches")
	branches.Get("/", handlers.HandleListBranches)
	branches.Post("/refresh", middleware.CheckRole("owner"), handlers.HandleRefreshBranchRegistry)

	// --- Order entry ---
	orders := protected.Group("/orders")
	orders.Post("/", handlers.HandleCreateOrder)
	orders.Get("/", handlers.HandleListOrders)

	// --- Inventory needs ---
	needs := protected.Group("/needs")
	needs.Get("/", handlers.HandleListNeeds)
	needs.Post("/", handlers.HandleCreateNeed)
	needs.Put("/:needId/done", handlers.HandleSetNeedDone)

	// --- Statistics ---
	stats := protected.Group("/stats")
	stats.Get("/sales", handlers.HandleGetSalesStats)

	// --- Sales assistant ---
	assistant := protected.Group("/assistant")
	assistant.Post("/ask", handlers.HandleAskAssistant)
}
