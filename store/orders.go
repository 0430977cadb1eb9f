package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"bakehouse/database"
	"bakehouse/models"
)

// FetchOrders reads every order row in the inclusive date range and
// folds them into the nested date -> branch -> product -> quantity
// document the aggregator consumes. Quantities are kept raw; parsing is
// the aggregator's job.
func FetchOrders(ctx context.Context, dr models.DateRange) (models.OrderDocument, error) {
	query := `
		SELECT order_date, branch, product, quantity
		FROM orders
		WHERE order_date BETWEEN $1 AND $2
	`
	rows, err := database.GetDB().Query(ctx, query, dr.StartDate, dr.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer rows.Close()

	doc := make(models.OrderDocument)
	for rows.Next() {
		var orderDate time.Time
		var branch, product string
		var quantity interface{}
		if err := rows.Scan(&orderDate, &branch, &product, &quantity); err != nil {
			log.Printf("Error scanning order row: %v", err)
			continue
		}
		date := orderDate.Format("2006-01-02")
		if doc[date] == nil {
			doc[date] = make(map[string]map[string]interface{})
		}
		if doc[date][branch] == nil {
			doc[date][branch] = make(map[string]interface{})
		}
		doc[date][branch][product] = quantity
	}
	return doc, nil
}

// CreateOrder persists one order-entry row.
func CreateOrder(ctx context.Context, order *models.Order) error {
	order.ID = uuid.NewString()
	query := `
		INSERT INTO orders (id, order_date, branch, product, quantity, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	if err := database.GetDB().QueryRow(ctx, query,
		order.ID, order.OrderDate, order.Branch, order.Product, order.Quantity, order.Note,
	).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// ListOrders returns a page of order rows, newest first, with the total
// row count for pagination.
func ListOrders(ctx context.Context, branch string, page, pageSize int) ([]models.Order, int, error) {
	offset := (page - 1) * pageSize
	query := `
		SELECT id, order_date, branch, product, quantity, note, created_at, updated_at
		FROM orders
	`
	countQuery := "SELECT COUNT(*) FROM orders"
	args := []interface{}{}
	if branch != "" {
		query += " WHERE branch = $1"
		countQuery += " WHERE branch = $1"
		args = append(args, branch)
	}
	query += fmt.Sprintf(" ORDER BY order_date DESC LIMIT %d OFFSET %d", pageSize, offset)

	rows, err := database.GetDB().Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var o models.Order
		var orderDate time.Time
		if err := rows.Scan(&o.ID, &orderDate, &o.Branch, &o.Product, &o.Quantity, &o.Note, &o.CreatedAt, &o.UpdatedAt); err != nil {
			log.Printf("Error scanning order: %v", err)
			continue
		}
		o.OrderDate = orderDate.Format("2006-01-02")
		orders = append(orders, o)
	}

	var total int
	if err := database.GetDB().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return orders, total, nil
}
