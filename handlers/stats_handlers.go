package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"bakehouse/analytics"
	"bakehouse/models"
	"bakehouse/store"
	"bakehouse/utils"
)

// HandleGetSalesStats aggregates the raw orders for a date range and
// returns the per-product records and tier buckets the statistics
// screens render.
// GET /api/v1/stats/sales?startDate=...&endDate=...
func HandleGetSalesStats(c *fiber.Ctx) error {
	startDate, err := utils.ParseFlexibleDate(c.Query("startDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid startDate format"})
	}
	endDate, err := utils.ParseFlexibleDate(c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid endDate format"})
	}

	dr := models.DateRange{
		StartDate: startDate.Format("2006-01-02"),
		EndDate:   endDate.Format("2006-01-02"),
	}

	doc, err := store.FetchOrders(c.Context(), dr)
	if err != nil {
		log.Printf("❌ [STATS] Order fetch failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load sales data"})
	}

	sales, tiers := analytics.Aggregate(doc, BranchRegistry.Current())

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"period":   dr,
		"products": sales,
		"tiers":    tiers,
	}})
}
