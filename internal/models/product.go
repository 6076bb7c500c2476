package models

import "gorm.io/gorm"

// Product represents a catalog item managed through the admin panel.
type Product struct {
	ID               string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name             string     `json:"name" validate:"required,min=3,max=200"`
	Description      string     `json:"description" validate:"omitempty,max=2000"`
	ShortDescription string     `json:"shortDescription" validate:"omitempty,max=500"`
	SKU              string     `json:"sku" gorm:"uniqueIndex;type:varchar(100)" validate:"required,max=100"`
	CategoryID       string     `json:"category" gorm:"type:varchar(36)" validate:"omitempty,uuid"`
	Brand            string     `json:"brand" validate:"omitempty,max=100"`
	Price            float64    `json:"price" validate:"required,gt=0"`
	DiscountPrice    float64    `json:"discountPrice" validate:"omitempty,gt=0,ltfield=Price"`
	Stock            int        `json:"stock" validate:"gte=0"`
	Images           StringList `json:"images" gorm:"type:text"`
	Sizes            StringList `json:"sizes" gorm:"type:text"`
	Colors           StringList `json:"colors" gorm:"type:text"`
	Tags             StringList `json:"tags" gorm:"type:text"`
	IsActive         bool       `json:"isActive"`
	IsFeatured       bool       `json:"isFeatured"`
	gorm.Model                  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
