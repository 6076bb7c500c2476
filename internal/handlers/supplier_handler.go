package handlers

import (
	"log"
	"strings"

	"shopadmin/internal/models"
	"shopadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	service  *services.StoreService
	validate *validator.Validate
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.StoreService) *SupplierHandler {
	return &SupplierHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the supplier routes with the Fiber app.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	supplierRoutes := router.Group("/suppliers")
	supplierRoutes.Get("/", h.HandleGetSuppliers)
	supplierRoutes.Post("/", h.HandleCreateSupplier)
	supplierRoutes.Put("/:id", h.HandleUpdateSupplier)
	supplierRoutes.Delete("/:id", h.HandleDeleteSupplier)
}

// HandleGetSuppliers retrieves all suppliers.
func (h *SupplierHandler) HandleGetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAllSuppliers()
	if err != nil {
		log.Printf("Error getting all suppliers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve suppliers",
			"error":   err.Error(),
		})
	}
	return c.JSON(suppliers)
}

// HandleCreateSupplier creates a new supplier.
func (h *SupplierHandler) HandleCreateSupplier(c *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(supplier); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateSupplier(&supplier); err != nil {
		log.Printf("Error creating supplier: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create supplier",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// HandleUpdateSupplier updates an existing supplier.
func (h *SupplierHandler) HandleUpdateSupplier(c *fiber.Ctx) error {
	supplierID := c.Params("id")

	supplier, err := h.service.GetSupplier(supplierID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Supplier not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve supplier",
			"error":   err.Error(),
		})
	}

	if err := c.BodyParser(supplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	supplier.ID = supplierID // identity is immutable

	if err := h.validate.Struct(supplier); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.UpdateSupplier(supplier); err != nil {
		log.Printf("Error updating supplier %s: %v", supplierID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Supplier not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update supplier",
			"error":   err.Error(),
		})
	}

	return c.JSON(supplier)
}

// HandleDeleteSupplier deletes a supplier by its ID.
func (h *SupplierHandler) HandleDeleteSupplier(c *fiber.Ctx) error {
	supplierID := c.Params("id")

	if err := h.service.DeleteSupplier(supplierID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Supplier not found",
			})
		}
		log.Printf("Error deleting supplier %s: %v", supplierID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete supplier",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Supplier removed",
	})
}
