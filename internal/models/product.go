package models

// Category groups products.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Products    []Product `json:"products"`
}

// Product represents a product in the store. Each product belongs to
// exactly one category.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"image_url" gorm:"column:image_url"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  uint    `json:"category_id" gorm:"index"`
}
