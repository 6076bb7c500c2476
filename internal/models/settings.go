package models

import "gorm.io/gorm"

// Settings is the single store-wide configuration document. Exactly one row
// exists; it is created with defaults the first time it is loaded.
type Settings struct {
	ID                    uint    `json:"-" gorm:"primaryKey"`
	SiteName              string  `json:"siteName"`
	SiteTagline           string  `json:"siteTagline"`
	AdminEmail            string  `json:"adminEmail" validate:"required,email"`
	Currency              string  `json:"currency"`
	CurrencySymbol        string  `json:"currencySymbol"`
	Timezone              string  `json:"timezone"`
	DateFormat            string  `json:"dateFormat"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	TaxRate               float64 `json:"taxRate" validate:"gte=0"`
	gorm.Model                    // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// DefaultSettings returns the settings document used to seed the singleton row.
func DefaultSettings() *Settings {
	return &Settings{
		ID:             1,
		SiteName:       "E-commerce Store",
		AdminEmail:     "admin@example.com",
		Currency:       "USD",
		CurrencySymbol: "$",
		Timezone:       "UTC",
		DateFormat:     "MM/DD/YYYY",

		FreeShippingThreshold: 50.0,
	}
}
