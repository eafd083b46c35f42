package services

import (
	"strconv"

	"store2070/internal/models"
	"store2070/internal/repositories"
)

// ProductView is the API shape of a product. The category is carried
// by id only, not embedded.
type ProductView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock"`
	CategoryID  int     `json:"categoryId"`
}

// CategoryView is the API shape of a category with its products
// embedded.
type CategoryView struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Products    []ProductView `json:"products"`
}

// CatalogService handles read access to products and categories.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// Products returns all products as flat views.
func (s *CatalogService) Products() ([]ProductView, error) {
	products, err := s.repo.Products()
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return views, nil
}

// Categories returns all categories with their full product lists.
func (s *CatalogService) Categories() ([]CategoryView, error) {
	categories, err := s.repo.Categories()
	if err != nil {
		return nil, err
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		products := make([]ProductView, 0, len(c.Products))
		for _, p := range c.Products {
			products = append(products, newProductView(p))
		}
		views = append(views, CategoryView{
			ID:          strconv.FormatUint(uint64(c.ID), 10),
			Name:        c.Name,
			Description: c.Description,
			Products:    products,
		})
	}
	return views, nil
}

func newProductView(p models.Product) ProductView {
	return ProductView{
		ID:          strconv.FormatUint(uint64(p.ID), 10),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		CategoryID:  int(p.CategoryID),
	}
}
