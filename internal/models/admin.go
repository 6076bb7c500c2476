package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin roles, from most to least privileged.
const (
	RoleSuperAdmin = "Super Admin"
	RoleAdmin      = "Admin"
	RoleManager    = "Manager"
	RoleEditor     = "Editor"
)

// Admin represents a back-office user of the admin panel.
type Admin struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string     `json:"name" validate:"required,min=2,max=100"`
	Email       string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string     `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role        string     `json:"role" gorm:"type:varchar(20)" validate:"omitempty,oneof='Super Admin' 'Admin' 'Manager' 'Editor'"`
	Permissions StringList `json:"permissions" gorm:"type:text"`
	IsActive    bool       `json:"isActive"`
	LastLogin   *time.Time `json:"lastLogin"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
