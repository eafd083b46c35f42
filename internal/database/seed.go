package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"store2070/internal/models"
)

// Seed populates an empty database with the demo fixture: categories,
// products, an admin, three customers and three orders with matching
// items. The presence of any category makes it a no-op, so it is safe
// to call on every startup and from the /seed endpoint.
//
// Each wave is inserted with a single Create call; a constraint
// violation aborts the whole seed with no cleanup.
func Seed(db *gorm.DB) error {
	var existing models.Category
	err := db.First(&existing).Error
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to probe for existing seed data: %w", err)
	}

	categories := []models.Category{
		{Name: "Footwear", Description: "Anti-grav and kinetic footwear."},
		{Name: "Apparel", Description: "Smart-fabrics and adaptive camouflage."},
		{Name: "Accessories", Description: "Neural-linked wearables."},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	footwear, apparel := categories[0], categories[1]

	products := []models.Product{
		{
			Name:        "Void Walker v3",
			Description: "Quantum-stitched combat boots with magnetic soles.",
			Price:       2400.0,
			ImageURL:    "/products/shoes.jpg",
			Stock:       25,
			CategoryID:  footwear.ID,
		},
		{
			Name:        "Neon Weave Jacket",
			Description: "Adaptive color-shifting bomber with built-in HUD projectors.",
			Price:       3200.0,
			ImageURL:    "/products/jacket.jpg",
			Stock:       15,
			CategoryID:  apparel.ID,
		},
		{
			Name:        "Chroma Sneakers",
			Description: "Ultra-light running shoes with kinetic energy harvesting.",
			Price:       1800.0,
			ImageURL:    "/products/sneakers.jpg",
			Stock:       50,
			CategoryID:  footwear.ID,
		},
		{
			Name:        "Obsidian Cowl",
			Description: "Nanofiber hood providing air filtration and rain shielding.",
			Price:       550.0,
			ImageURL:    "/products/hood.jpg",
			Stock:       100,
			CategoryID:  apparel.ID,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	users := []models.User{
		{Username: "admin", Password: "admin_hash_2070", IsAdmin: 1},
		{Username: "kyle_reese", Password: "password"},
		{Username: "sarah_connor", Password: "password"},
		{Username: "doc_brown", Password: "password"},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	now := time.Now().Format(time.RFC3339)
	orders := []models.Order{
		{UserID: users[1].ID, TotalPrice: 2400.0, Status: "shipped", CreatedAt: now},
		{UserID: users[2].ID, TotalPrice: 3200.0, Status: "delivered", CreatedAt: now},
		{UserID: users[3].ID, TotalPrice: 1800.0, Status: "pending", CreatedAt: now},
	}
	if err := db.Create(&orders).Error; err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	items := []models.OrderItem{
		{OrderID: orders[0].ID, ProductID: products[0].ID, Quantity: 1, Price: 2400.0},
		{OrderID: orders[1].ID, ProductID: products[1].ID, Quantity: 1, Price: 3200.0},
		{OrderID: orders[2].ID, ProductID: products[2].ID, Quantity: 1, Price: 1800.0},
	}
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed order items: %w", err)
	}

	return nil
}
