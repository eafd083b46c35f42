package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"store2070/internal/models"
	"store2070/internal/services"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) TotalRevenue() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func TestOrderService_Orders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	orders := []models.Order{
		{
			ID:         1,
			UserID:     2,
			TotalPrice: 2400.0,
			Status:     "shipped",
			CreatedAt:  "2070-01-01T00:00:00Z",
			Items: []models.OrderItem{
				{
					OrderID:   1,
					ProductID: 1,
					Quantity:  1,
					Price:     2400.0,
					Product:   &models.Product{ID: 1, Name: "Void Walker v3"},
				},
				{
					OrderID:   1,
					ProductID: 99, // product row deleted
					Quantity:  2,
					Price:     100.0,
				},
			},
		},
		{
			ID:         2,
			UserID:     3,
			TotalPrice: 1800.0,
			Status:     "pending",
			CreatedAt:  "2070-01-02T00:00:00Z",
		},
	}
	mockRepo.On("GetAll").Return(orders, nil).Once()

	views, err := service.Orders()
	assert.NoError(t, err)
	assert.Len(t, views, 2)

	// Item count matches the stored rows per order
	assert.Len(t, views[0].Items, 2)
	assert.Len(t, views[1].Items, 0)

	// A present product resolves to its name, a missing one to the sentinel
	assert.Equal(t, "Void Walker v3", views[0].Items[0].ProductName)
	assert.Equal(t, "Unknown", views[0].Items[1].ProductName)

	// Captured price, not the product's current price
	assert.Equal(t, 100.0, views[0].Items[1].Price)
	assert.Equal(t, 2, views[0].Items[1].Quantity)

	assert.Equal(t, "1", views[0].ID)
	assert.Equal(t, 2, views[0].UserID)
	assert.Equal(t, "shipped", views[0].Status)
	assert.Equal(t, "2070-01-01T00:00:00Z", views[0].CreatedAt)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_Stats(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	// With revenue, the monthly throughput is the real sum scaled down
	mockRepo.On("TotalRevenue").Return(7400.0, nil).Once()
	stats, err := service.Stats()
	assert.NoError(t, err)
	assert.Equal(t, 7.4, stats.MonthlyThroughput)

	// The remaining metrics are fixed demo values
	assert.Equal(t, 4.28, stats.DailyRevenue)
	assert.Equal(t, 28.5, stats.WeeklyVolume)
	assert.Equal(t, 12.0, stats.DailyChange)
	assert.Equal(t, 5.4, stats.WeeklyChange)
	assert.Equal(t, 22.0, stats.MonthlyChange)
	mockRepo.AssertExpectations(t)

	// With no orders the throughput falls back to its constant
	mockRepo.On("TotalRevenue").Return(0.0, nil).Once()
	stats, err = service.Stats()
	assert.NoError(t, err)
	assert.Equal(t, 142.1, stats.MonthlyThroughput)
	mockRepo.AssertExpectations(t)
}
