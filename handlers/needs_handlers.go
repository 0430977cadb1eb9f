package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"bakehouse/models"
	"bakehouse/store"
)

// CreateNeedInput defines the expected input for a new needs entry.
type CreateNeedInput struct {
	Branch string `json:"branch"`
	Item   string `json:"item"`
	Amount string `json:"amount"`
}

// HandleListNeeds lists the inventory needs, pending entries first.
// GET /api/v1/needs?branch=...
func HandleListNeeds(c *fiber.Ctx) error {
	needs, err := store.ListNeeds(c.Context(), c.Query("branch"))
	if err != nil {
		log.Printf("Error listing needs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve needs"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": needs})
}

// HandleCreateNeed records a new needs-list entry.
// POST /api/v1/needs
func HandleCreateNeed(c *fiber.Ctx) error {
	var input CreateNeedInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.Branch == "" || input.Item == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "branch and item are required"})
	}

	need := models.NeedItem{Branch: input.Branch, Item: input.Item, Amount: input.Amount}
	if err := store.CreateNeed(c.Context(), &need); err != nil {
		log.Printf("Error creating need item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create need item"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": need})
}

// HandleSetNeedDone toggles the done flag of a needs-list entry.
// PUT /api/v1/needs/:needId/done
func HandleSetNeedDone(c *fiber.Ctx) error {
	var input struct {
		Done bool `json:"done"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if err := store.SetNeedDone(c.Context(), c.Params("needId"), input.Done); err != nil {
		log.Printf("Error updating need item: %v", err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Need item not found"})
	}
	return c.JSON(fiber.Map{"status": "success"})
}
