package services

import (
	"shopadmin/internal/models"
	"shopadmin/internal/repositories"
)

// StoreService handles business logic for the non-catalog store resources:
// categories, suppliers, and the settings singleton.
type StoreService struct {
	categories repositories.CategoryRepository
	suppliers  repositories.SupplierRepository
	settings   repositories.SettingsRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(
	categories repositories.CategoryRepository,
	suppliers repositories.SupplierRepository,
	settings repositories.SettingsRepository,
) *StoreService {
	return &StoreService{
		categories: categories,
		suppliers:  suppliers,
		settings:   settings,
	}
}

// GetAllCategories retrieves all categories.
func (s *StoreService) GetAllCategories() ([]models.Category, error) {
	return s.categories.GetAll()
}

// GetCategory retrieves a single category by its ID.
func (s *StoreService) GetCategory(id string) (*models.Category, error) {
	return s.categories.GetByID(id)
}

// CreateCategory creates a new category.
func (s *StoreService) CreateCategory(category *models.Category) error {
	return s.categories.Create(category)
}

// UpdateCategory updates an existing category.
func (s *StoreService) UpdateCategory(category *models.Category) error {
	return s.categories.Update(category)
}

// DeleteCategory deletes a category by its ID.
func (s *StoreService) DeleteCategory(id string) error {
	return s.categories.Delete(id)
}

// GetAllSuppliers retrieves all suppliers.
func (s *StoreService) GetAllSuppliers() ([]models.Supplier, error) {
	return s.suppliers.GetAll()
}

// GetSupplier retrieves a single supplier by its ID.
func (s *StoreService) GetSupplier(id string) (*models.Supplier, error) {
	return s.suppliers.GetByID(id)
}

// CreateSupplier creates a new supplier.
func (s *StoreService) CreateSupplier(supplier *models.Supplier) error {
	return s.suppliers.Create(supplier)
}

// UpdateSupplier updates an existing supplier.
func (s *StoreService) UpdateSupplier(supplier *models.Supplier) error {
	return s.suppliers.Update(supplier)
}

// DeleteSupplier deletes a supplier by its ID.
func (s *StoreService) DeleteSupplier(id string) error {
	return s.suppliers.Delete(id)
}

// GetSettings loads the settings singleton, creating it with defaults if absent.
func (s *StoreService) GetSettings() (*models.Settings, error) {
	return s.settings.Load()
}

// SaveSettings replaces the settings singleton in full.
func (s *StoreService) SaveSettings(settings *models.Settings) error {
	return s.settings.Save(settings)
}
