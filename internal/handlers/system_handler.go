package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"store2070/internal/database"
)

// SystemHandler serves the root welcome endpoint and the on-demand
// seed endpoint.
type SystemHandler struct {
	db *gorm.DB
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(db *gorm.DB) *SystemHandler {
	return &SystemHandler{
		db: db,
	}
}

// RegisterRoutes registers the system routes with the Fiber app.
func (h *SystemHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleRoot)
	router.Post("/seed", h.HandleSeed)
}

// HandleRoot returns the fixed welcome message.
func (h *SystemHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to Store 2070 Quantum API",
	})
}

// HandleSeed re-invokes the seed routine. Seeding is idempotent, so
// repeated calls return the same confirmation.
func (h *SystemHandler) HandleSeed(c *fiber.Ctx) error {
	if err := database.Seed(h.db); err != nil {
		log.Printf("Error seeding database: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not seed database",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Database seeded successfully",
	})
}
