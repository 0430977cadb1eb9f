package handlers

import (
	"context"
	"log"

	"bakehouse/branchgroups"
	"bakehouse/store"

	"github.com/gofiber/fiber/v2"
)

// BranchRegistry is the process-wide branch group partition. It is
// loaded once at startup and replaced wholesale on refresh; readers
// always see a complete snapshot.
var BranchRegistry = branchgroups.NewStore()

// InitBranchRegistry loads the roster and builds the first registry.
// Called from main after the database comes up.
func InitBranchRegistry(ctx context.Context) error {
	branches, err := store.ListBranches(ctx)
	if err != nil {
		return err
	}
	BranchRegistry.Refresh(branches)
	log.Printf("Branch registry loaded: %d next, %d coffemania",
		len(BranchRegistry.Current().All(branchgroups.GroupNext)),
		len(BranchRegistry.Current().All(branchgroups.GroupCoffemania)))
	return nil
}

// HandleListBranches returns the full branch roster.
// GET /api/v1/branches
func HandleListBranches(c *fiber.Ctx) error {
	branches, err := store.ListBranches(c.Context())
	if err != nil {
		log.Printf("Error listing branches: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve branches"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": branches})
}

// HandleRefreshBranchRegistry rebuilds the branch group partition from
// the current roster. The swap is atomic; in-flight queries keep the
// snapshot they started with.
// POST /api/v1/branches/refresh
func HandleRefreshBranchRegistry(c *fiber.Ctx) error {
	branches, err := store.ListBranches(c.Context())
	if err != nil {
		log.Printf("Error refreshing branch registry: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to refresh branch registry"})
	}
	reg := BranchRegistry.Refresh(branches)
	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"next":       reg.All(branchgroups.GroupNext),
		"coffemania": reg.All(branchgroups.GroupCoffemania),
	}})
}
