package handlers

import (
	"log"

	"shopadmin/internal/models"
	"shopadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles HTTP requests for the store settings singleton.
type SettingsHandler struct {
	service  *services.StoreService
	validate *validator.Validate
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service *services.StoreService) *SettingsHandler {
	return &SettingsHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the settings routes with the Fiber app.
func (h *SettingsHandler) RegisterRoutes(router fiber.Router) {
	settingsRoutes := router.Group("/settings")
	settingsRoutes.Get("/", h.HandleGetSettings)
	settingsRoutes.Put("/", h.HandleUpdateSettings)
}

// HandleGetSettings returns the settings document, seeding defaults on first use.
func (h *SettingsHandler) HandleGetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings()
	if err != nil {
		log.Printf("Error loading settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve settings",
			"error":   err.Error(),
		})
	}
	return c.JSON(settings)
}

// HandleUpdateSettings replaces the settings document in full.
func (h *SettingsHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	var settings models.Settings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(settings); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.SaveSettings(&settings); err != nil {
		log.Printf("Error saving settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save settings",
			"error":   err.Error(),
		})
	}

	return c.JSON(settings)
}
