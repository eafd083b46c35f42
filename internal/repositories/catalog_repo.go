package repositories

import "store2070/internal/models"

// CatalogRepository defines the interface for product and category
// data access. The catalog is read-only through the API; rows are
// written by the seed routine.
type CatalogRepository interface {
	Products() ([]models.Product, error)
	// Categories returns all categories with their products loaded.
	Categories() ([]models.Category, error)
}
