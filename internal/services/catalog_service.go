package services

import (
	"encoding/json"
	"log"

	"shopadmin/internal/metrics"
	"shopadmin/internal/models"
	"shopadmin/internal/repositories"
	"shopadmin/pkg/rabbitmq"
)

// ProductPageSize is the fixed number of products per listing page.
const ProductPageSize = 20

// Catalog event routing keys carried in the event payload.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher publishes catalog change events. *rabbitmq.Client satisfies it;
// tests pass a mock or nil.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// ProductPage is one page of listing results.
type ProductPage struct {
	Products []models.Product `json:"products"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
}

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository, publisher EventPublisher) *CatalogService {
	return &CatalogService{
		repo:      repo,
		publisher: publisher,
	}
}

// ListProducts returns one page of products matching keyword. Page numbers
// start at 1; a page past the last one yields an empty product slice with the
// true page count.
func (s *CatalogService) ListProducts(keyword string, page int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}

	count, err := s.repo.Count(keyword)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.List(keyword, ProductPageSize, ProductPageSize*(page-1))
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}

	pages := int((count + ProductPageSize - 1) / ProductPageSize)
	return &ProductPage{
		Products: products,
		Page:     page,
		Pages:    pages,
	}, nil
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product and announces it on the event queue.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	metrics.ProductsCreated.Inc()
	s.publishEvent(EventProductCreated, product)
	return nil
}

// UpdateProduct saves the merged product record.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		return err
	}
	metrics.ProductsUpdated.Inc()
	s.publishEvent(EventProductUpdated, product)
	return nil
}

// DeleteProduct permanently removes a product by its ID.
func (s *CatalogService) DeleteProduct(id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	metrics.ProductsDeleted.Inc()
	s.publishEvent(EventProductDeleted, product)
	return nil
}

// publishEvent sends a catalog change event. Publish failures are logged and
// never fail the request; a nil publisher disables publication entirely.
func (s *CatalogService) publishEvent(event string, product *models.Product) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":     event,
		"productID": product.ID,
		"name":      product.Name,
		"sku":       product.SKU,
	})
	if err != nil {
		log.Printf("Failed to marshal catalog event %s: %v", event, err)
		return
	}

	if err := s.publisher.Publish("", rabbitmq.CatalogQueue, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}
