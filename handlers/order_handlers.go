package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"bakehouse/models"
	"bakehouse/store"
	"bakehouse/utils"
)

// CreateOrderInput defines the expected input for recording an order.
type CreateOrderInput struct {
	OrderDate string  `json:"orderDate"`
	Branch    string  `json:"branch"`
	Product   string  `json:"product"`
	Quantity  float64 `json:"quantity"`
	Note      *string `json:"note,omitempty"`
}

// HandleCreateOrder records a new order row from the order-entry screen.
// POST /api/v1/orders
func HandleCreateOrder(c *fiber.Ctx) error {
	var input CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.Branch == "" || input.Product == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "branch and product are required"})
	}
	if input.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "quantity must be positive"})
	}

	orderDate, err := utils.ParseFlexibleDate(input.OrderDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid orderDate format"})
	}

	order := models.Order{
		OrderDate: orderDate.Format("2006-01-02"),
		Branch:    input.Branch,
		Product:   input.Product,
		Quantity:  input.Quantity,
		Note:      input.Note,
	}
	if err := store.CreateOrder(c.Context(), &order); err != nil {
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create order"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": order})
}

// HandleListOrders lists recorded orders, newest first.
// GET /api/v1/orders?branch=...&page=1&pageSize=10
func HandleListOrders(c *fiber.Ctx) error {
	branch := c.Query("branch")
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)

	orders, total, err := store.ListOrders(c.Context(), branch, page, pageSize)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve orders"})
	}

	response := models.PaginatedOrdersResponse{
		Items:      orders,
		Pagination: utils.CreatePagination(total, page, pageSize),
	}
	return c.JSON(fiber.Map{"status": "success", "data": response})
}
