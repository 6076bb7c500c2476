package models

import "gorm.io/gorm"

// Address is a supplier's postal address, embedded into the supplier row.
type Address struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// Supplier represents a vendor the store sources products from.
type Supplier struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	ContactPerson string  `json:"contactPerson" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required"`
	Address       Address `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	PaymentTerms  string  `json:"paymentTerms"`
	Notes         string  `json:"notes"`
	IsActive      bool    `json:"isActive"`
	gorm.Model
}
