package repositories

import (
	"shopadmin/internal/models"
)

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	GetAll() ([]models.Supplier, error)
	GetByID(id string) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
	Update(supplier *models.Supplier) error
	Delete(id string) error
}
