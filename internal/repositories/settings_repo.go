package repositories

import (
	"shopadmin/internal/models"
)

// SettingsRepository defines the interface for the store settings singleton.
type SettingsRepository interface {
	Load() (*models.Settings, error)
	Save(settings *models.Settings) error
}
