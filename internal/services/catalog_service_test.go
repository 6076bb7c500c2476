package services_test

import (
	"fmt"
	"testing"

	"shopadmin/internal/models"
	"shopadmin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(keyword string, limit, offset int) ([]models.Product, error) {
	args := m.Called(keyword, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Count(keyword string) (int64, error) {
	args := m.Called(keyword)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func TestCatalogService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	pageOne := make([]models.Product, services.ProductPageSize)
	for i := range pageOne {
		pageOne[i] = models.Product{ID: fmt.Sprintf("prod-%d", i), Name: "Widget", SKU: fmt.Sprintf("SKU-%d", i), Price: 10.0}
	}

	// 45 matches: three pages, first page full
	mockRepo.On("Count", "widget").Return(int64(45), nil).Once()
	mockRepo.On("List", "widget", services.ProductPageSize, 0).Return(pageOne, nil).Once()

	result, err := service.ListProducts("widget", 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 3, result.Pages)
	assert.Len(t, result.Products, services.ProductPageSize)
	mockRepo.AssertExpectations(t)

	// A page past the end returns an empty slice with the true page count
	mockRepo.On("Count", "").Return(int64(5), nil).Once()
	mockRepo.On("List", "", services.ProductPageSize, services.ProductPageSize*3).Return([]models.Product{}, nil).Once()

	result, err = service.ListProducts("", 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, result.Page)
	assert.Equal(t, 1, result.Pages)
	assert.NotNil(t, result.Products)
	assert.Empty(t, result.Products)
	mockRepo.AssertExpectations(t)

	// Page numbers below 1 normalize to the first page
	mockRepo.On("Count", "").Return(int64(0), nil).Once()
	mockRepo.On("List", "", services.ProductPageSize, 0).Return([]models.Product{}, nil).Once()

	result, err = service.ListProducts("", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 0, result.Pages)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewCatalogService(mockRepo, mockPublisher)

	product := &models.Product{Name: "New Product", SKU: "NEW-1", Price: 50.0, Stock: 20}

	// Successful creation announces a catalog event
	mockRepo.On("Create", product).Return(nil).Once()
	mockPublisher.On("Publish", "", "catalog_events", mock.Anything).Return(nil).Once()
	err := service.CreateProduct(product)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Repository failure does not publish
	mockRepo.On("Create", product).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(product)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// A publish failure never fails the request
	mockRepo.On("Create", product).Return(nil).Once()
	mockPublisher.On("Publish", "", "catalog_events", mock.Anything).Return(fmt.Errorf("broker down")).Once()
	err = service.CreateProduct(product)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestCatalogService_CreateProductWithoutPublisher(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	product := &models.Product{Name: "Quiet Product", SKU: "QUIET-1", Price: 5.0}
	mockRepo.On("Create", product).Return(nil).Once()

	// A nil publisher disables publication entirely
	err := service.CreateProduct(product)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewCatalogService(mockRepo, mockPublisher)

	product := &models.Product{ID: "1", Name: "Product A Updated", SKU: "A-1", Price: 12.0, Stock: 95}

	mockRepo.On("Update", product).Return(nil).Once()
	mockPublisher.On("Publish", "", "catalog_events", mock.Anything).Return(nil).Once()
	err := service.UpdateProduct(product)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	mockRepo.On("Update", product).Return(fmt.Errorf("product with ID 1 not found for update")).Once()
	err = service.UpdateProduct(product)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for update")
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewCatalogService(mockRepo, mockPublisher)

	product := &models.Product{ID: "1", Name: "Product A", SKU: "A-1", Price: 10.0}

	// Successful deletion
	mockRepo.On("GetByID", "1").Return(product, nil).Once()
	mockRepo.On("Delete", "1").Return(nil).Once()
	mockPublisher.On("Publish", "", "catalog_events", mock.Anything).Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Unknown id fails before the delete call
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()
	err = service.DeleteProduct("99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Delete", "99")
}
