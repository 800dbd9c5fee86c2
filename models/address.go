package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is a customer shipping address. Field names follow the Argentine
// postal convention (province + CP instead of state + zip).
type Address struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Label      string    `json:"label" gorm:"type:varchar(50);not null"`
	FirstName  string    `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName   string    `json:"last_name" gorm:"type:varchar(100);not null"`
	Street     string    `json:"street" gorm:"type:varchar(255);not null"`
	Number     string    `json:"number" gorm:"type:varchar(20);not null"`
	Apartment  *string   `json:"apartment,omitempty" gorm:"type:varchar(50)"`
	City       string    `json:"city" gorm:"type:varchar(100);not null"`
	Province   string    `json:"province" gorm:"type:varchar(100);not null"`
	PostalCode string    `json:"postal_code" gorm:"type:varchar(20);not null"`
	Phone      *string   `json:"phone,omitempty" gorm:"type:varchar(30)"`
	IsDefault  bool      `json:"is_default" gorm:"default:false;index:idx_addresses_is_default,where:is_default = true"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:'active';index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationship
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Address) TableName() string {
	return "addresses"
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type AddAddressRequest struct {
	Label      string  `json:"label" binding:"required"`
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Street     string  `json:"street" binding:"required"`
	Number     string  `json:"number" binding:"required"`
	Apartment  *string `json:"apartment,omitempty"`
	City       string  `json:"city" binding:"required"`
	Province   string  `json:"province" binding:"required"`
	PostalCode string  `json:"postal_code" binding:"required"`
	Phone      *string `json:"phone,omitempty"`
	IsDefault  bool    `json:"is_default"`
}

type UpdateAddressRequest struct {
	Label      *string `json:"label,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Street     *string `json:"street,omitempty"`
	Number     *string `json:"number,omitempty"`
	Apartment  *string `json:"apartment,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}
