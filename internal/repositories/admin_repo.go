package repositories

import (
	"time"

	"shopadmin/internal/models"
)

// AdminRepository defines the interface for admin account data access.
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByEmail(email string) (*models.Admin, error)
	GetByID(id string) (*models.Admin, error)
	UpdateLastLogin(id string, at time.Time) error
}
