package services

import (
	"strconv"

	"store2070/internal/repositories"
)

// unknownProductName is reported for items whose product row no longer
// exists.
const unknownProductName = "Unknown"

// Dashboard constants. Only the monthly throughput is derived from
// real data; the rest are fixed demo values, kept as-is on purpose.
const (
	dashboardDailyRevenue     = 4.28
	dashboardWeeklyVolume     = 28.5
	dashboardDailyChange      = 12.0
	dashboardWeeklyChange     = 5.4
	dashboardMonthlyChange    = 22.0
	fallbackMonthlyThroughput = 142.1
	throughputRevenueDivisor  = 1000.0
)

// OrderItemView is the API shape of an order line: the referenced
// product's name plus quantity and the price captured at order time.
type OrderItemView struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderView is the API shape of an order with its items expanded.
type OrderView struct {
	ID         string          `json:"id"`
	UserID     int             `json:"userId"`
	TotalPrice float64         `json:"totalPrice"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"createdAt"`
	Items      []OrderItemView `json:"items"`
}

// DashboardStats is the cosmetic metrics block for the storefront
// dashboard.
type DashboardStats struct {
	DailyRevenue      float64 `json:"dailyRevenue"`
	WeeklyVolume      float64 `json:"weeklyVolume"`
	MonthlyThroughput float64 `json:"monthlyThroughput"`
	DailyChange       float64 `json:"dailyChange"`
	WeeklyChange      float64 `json:"weeklyChange"`
	MonthlyChange     float64 `json:"monthlyChange"`
}

// OrderService handles read access and aggregation over orders.
type OrderService struct {
	repo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// Orders returns all orders with items expanded. A missing product
// reference yields the "Unknown" sentinel instead of failing.
func (s *OrderService) Orders() ([]OrderView, error) {
	orders, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		items := make([]OrderItemView, 0, len(o.Items))
		for _, item := range o.Items {
			name := unknownProductName
			if item.Product != nil {
				name = item.Product.Name
			}
			items = append(items, OrderItemView{
				ProductName: name,
				Quantity:    item.Quantity,
				Price:       item.Price,
			})
		}
		views = append(views, OrderView{
			ID:         strconv.FormatUint(uint64(o.ID), 10),
			UserID:     int(o.UserID),
			TotalPrice: o.TotalPrice,
			Status:     o.Status,
			CreatedAt:  o.CreatedAt,
			Items:      items,
		})
	}
	return views, nil
}

// Stats returns the dashboard metrics. monthlyThroughput is the real
// revenue sum scaled down, falling back to a constant when there are
// no orders; everything else is hardcoded.
func (s *OrderService) Stats() (*DashboardStats, error) {
	revenue, err := s.repo.TotalRevenue()
	if err != nil {
		return nil, err
	}

	throughput := fallbackMonthlyThroughput
	if revenue > 0 {
		throughput = revenue / throughputRevenueDivisor
	}

	return &DashboardStats{
		DailyRevenue:      dashboardDailyRevenue,
		WeeklyVolume:      dashboardWeeklyVolume,
		MonthlyThroughput: throughput,
		DailyChange:       dashboardDailyChange,
		WeeklyChange:      dashboardWeeklyChange,
		MonthlyChange:     dashboardMonthlyChange,
	}, nil
}
