package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"shopadmin/internal/middleware"
	"shopadmin/internal/models"
	"shopadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. The upload
// handler runs before the mutating routes so image files are fully stored
// before the request reaches the handler.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, upload fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Post("/", upload, h.HandleCreateProduct)
	productRoutes.Put("/:id", upload, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleListProducts returns one page of products, optionally filtered by a
// case-insensitive keyword match on the name.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("pageNumber", 1)
	keyword := c.Query("keyword")

	result, err := h.service.ListProducts(keyword, page)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(result)
}

// HandleCreateProduct creates a new product from a multipart form. Uploaded
// image files were already stored by the upload middleware; their public
// paths become the record's image list.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	price, err := parseFloatField(c.FormValue("price"), "price")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	discountPrice, err := parseFloatField(c.FormValue("discountPrice"), "discountPrice")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	stock, err := parseIntField(c.FormValue("stock"), "stock")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	product := models.Product{
		Name:             c.FormValue("name"),
		Description:      c.FormValue("description"),
		ShortDescription: c.FormValue("shortDescription"),
		SKU:              c.FormValue("sku"),
		CategoryID:       c.FormValue("category"),
		Brand:            c.FormValue("brand"),
		Price:            price,
		DiscountPrice:    discountPrice,
		Stock:            stock,
		Images:           models.StringList(middleware.UploadedImages(c)),
		Sizes:            models.SplitList(c.FormValue("sizes")),
		Colors:           models.SplitList(c.FormValue("colors")),
		Tags:             models.SplitList(c.FormValue("tags")),
		// Only the literal string "true" enables a flag
		IsActive:   c.FormValue("isActive") == "true",
		IsFeatured: c.FormValue("isFeatured") == "true",
	}

	if err := h.validate.Struct(product); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		if strings.Contains(err.Error(), "already exists") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Product creation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to an existing product. A field
// is overwritten only when its key is present in the submitted form, so an
// explicit zero (e.g. stock=0) is honored while omitted fields keep their
// stored values. Uploaded files replace the image list in full; a request
// without files leaves the stored images untouched.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	product, err := h.service.GetProduct(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %s for update: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request body must be multipart/form-data",
			"error":   err.Error(),
		})
	}
	values := form.Value

	if v, ok := formField(values, "name"); ok {
		product.Name = v
	}
	if v, ok := formField(values, "description"); ok {
		product.Description = v
	}
	if v, ok := formField(values, "shortDescription"); ok {
		product.ShortDescription = v
	}
	if v, ok := formField(values, "sku"); ok {
		product.SKU = v
	}
	if v, ok := formField(values, "category"); ok {
		product.CategoryID = v
	}
	if v, ok := formField(values, "brand"); ok {
		product.Brand = v
	}
	if v, ok := formField(values, "price"); ok {
		price, err := parseFloatField(v, "price")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		product.Price = price
	}
	if v, ok := formField(values, "discountPrice"); ok {
		discountPrice, err := parseFloatField(v, "discountPrice")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		product.DiscountPrice = discountPrice
	}
	if v, ok := formField(values, "stock"); ok {
		stock, err := parseIntField(v, "stock")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		product.Stock = stock
	}
	if v, ok := formField(values, "sizes"); ok {
		product.Sizes = models.SplitList(v)
	}
	if v, ok := formField(values, "colors"); ok {
		product.Colors = models.SplitList(v)
	}
	if v, ok := formField(values, "tags"); ok {
		product.Tags = models.SplitList(v)
	}
	if v, ok := formField(values, "isActive"); ok {
		product.IsActive = v == "true"
	}
	if v, ok := formField(values, "isFeatured"); ok {
		product.IsFeatured = v == "true"
	}

	// Replace the stored image list only when this request uploaded files.
	// Replaced files stay on disk; cleanup is not this handler's concern.
	if paths := middleware.UploadedImages(c); len(paths) > 0 {
		product.Images = models.StringList(paths)
	}

	if err := h.validate.Struct(product); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.UpdateProduct(product); err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		if strings.Contains(err.Error(), "already exists") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Product update failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	return c.JSON(product)
}

// HandleDeleteProduct permanently removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	if err := h.service.DeleteProduct(productID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product removed",
	})
}

// formField reports whether a key was present in the submitted form, so an
// explicit zero or empty value is distinguished from an omitted field.
func formField(values map[string][]string, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func parseFloatField(value, field string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value for field '%s'", field)
	}
	return f, nil
}

func parseIntField(value, field string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value for field '%s'", field)
	}
	return n, nil
}
