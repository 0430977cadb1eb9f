// Package store wraps the Postgres document store. It owns the raw
// reads and writes; the analytics core only ever sees the fetched
// structures.
package store

import (
	"context"
	"fmt"

	"bakehouse/database"
	"bakehouse/models"
)

// ListBranches returns the full branch roster with group type tags.
func ListBranches(ctx context.Context) ([]models.Branch, error) {
	query := `
		SELECT id, name, type
		FROM branches
		ORDER BY name
	`
	rows, err := database.GetDB().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []models.Branch
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Type); err != nil {
			continue
		}
		branches = append(branches, b)
	}
	return branches, nil
}
