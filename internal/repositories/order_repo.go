package repositories

import "store2070/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// GetAll returns every order with its items and each item's
	// product loaded. No pagination, no filtering.
	GetAll() ([]models.Order, error)
	// TotalRevenue returns the sum of all order total prices, zero
	// when there are no orders.
	TotalRevenue() (float64, error)
}
