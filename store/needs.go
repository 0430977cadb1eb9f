package store

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"bakehouse/database"
	"bakehouse/models"
)

// ListNeeds returns the needs list, optionally filtered by branch.
// Pending entries come first, then most recently added.
func ListNeeds(ctx context.Context, branch string) ([]models.NeedItem, error) {
	query := `
		SELECT id, branch, item, amount, done, created_at, updated_at
		FROM needs
	`
	args := []interface{}{}
	if branch != "" {
		query += " WHERE branch = $1"
		args = append(args, branch)
	}
	query += " ORDER BY done ASC, created_at DESC"

	rows, err := database.GetDB().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list needs: %w", err)
	}
	defer rows.Close()

	needs := make([]models.NeedItem, 0)
	for rows.Next() {
		var n models.NeedItem
		if err := rows.Scan(&n.ID, &n.Branch, &n.Item, &n.Amount, &n.Done, &n.CreatedAt, &n.UpdatedAt); err != nil {
			log.Printf("Error scanning need item: %v", err)
			continue
		}
		needs = append(needs, n)
	}
	return needs, nil
}

// CreateNeed persists a new needs-list entry.
func CreateNeed(ctx context.Context, need *models.NeedItem) error {
	need.ID = uuid.NewString()
	query := `
		INSERT INTO needs (id, branch, item, amount, done)
		VALUES ($1, $2, $3, $4, false)
		RETURNING created_at, updated_at
	`
	if err := database.GetDB().QueryRow(ctx, query,
		need.ID, need.Branch, need.Item, need.Amount,
	).Scan(&need.CreatedAt, &need.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create need item: %w", err)
	}
	return nil
}

// SetNeedDone marks a needs-list entry as fulfilled or pending.
func SetNeedDone(ctx context.Context, id string, done bool) error {
	query := `
		UPDATE needs SET done = $2, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := database.GetDB().Exec(ctx, query, id, done)
	if err != nil {
		return fmt.Errorf("failed to update need item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("need item %s not found", id)
	}
	return nil
}
