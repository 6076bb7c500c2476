package repositories

import (
	"errors"
	"fmt"

	"shopadmin/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMSettingsRepository is a GORM implementation of SettingsRepository.
type GORMSettingsRepository struct {
	db *gorm.DB
}

// NewGORMSettingsRepository creates a new instance of GORMSettingsRepository.
func NewGORMSettingsRepository(db *gorm.DB) *GORMSettingsRepository {
	return &GORMSettingsRepository{
		db: db,
	}
}

// Load returns the settings singleton, seeding it with defaults the first
// time it is requested.
func (r *GORMSettingsRepository) Load() (*models.Settings, error) {
	var settings models.Settings
	err := r.db.First(&settings, "id = ?", 1).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	defaults := models.DefaultSettings()
	if err := r.db.Create(defaults).Error; err != nil {
		return nil, fmt.Errorf("failed to seed default settings: %w", err)
	}
	return defaults, nil
}

// Save replaces the settings singleton in full, creating the row when the
// document has never been loaded.
func (r *GORMSettingsRepository) Save(settings *models.Settings) error {
	settings.ID = 1 // single row, fixed identity
	err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(settings).Error
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
