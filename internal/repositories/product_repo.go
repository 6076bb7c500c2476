package repositories

import (
	"shopadmin/internal/models"
)

// ProductRepository defines the interface for product data access.
// List and Count take the same keyword so a paginated page and its total
// always agree on the filter.
type ProductRepository interface {
	List(keyword string, limit, offset int) ([]models.Product, error)
	Count(keyword string) (int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
