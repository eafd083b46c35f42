package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"store2070/internal/models"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// Products retrieves all products.
func (r *GORMCatalogRepository) Products() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// Categories retrieves all categories, eagerly loading each
// category's products.
func (r *GORMCatalogRepository) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Preload("Products").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}
