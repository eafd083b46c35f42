package models

// Order represents a customer order.
//
// CreatedAt is a string (RFC3339), not a time.Time: the original
// schema stores the timestamp as text and the API returns it
// unparsed. Writers set it explicitly.
type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	UserID     uint        `json:"user_id" gorm:"index"`
	TotalPrice float64     `json:"total_price"`
	Status     string      `json:"status"` // "pending", "shipped", "delivered" — open set, no transition rules
	CreatedAt  string      `json:"created_at" gorm:"column:created_at"`
	Items      []OrderItem `json:"items"`
}

// OrderItem is a single line of an order. Price is captured at order
// time and does not follow the product's current price.
type OrderItem struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	OrderID   uint     `json:"order_id" gorm:"index"`
	ProductID uint     `json:"product_id" gorm:"index"`
	Quantity  int      `json:"quantity" validate:"gt=0"`
	Price     float64  `json:"price"`
	Product   *Product `json:"-"`
}
