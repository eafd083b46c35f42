package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"store2070/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with items and products preloaded.
// Items whose product row is gone load with a nil Product; the
// service layer substitutes a sentinel name.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items.Product").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// TotalRevenue sums total_price over all orders.
func (r *GORMOrderRepository) TotalRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum order totals: %w", err)
	}
	return total, nil
}
