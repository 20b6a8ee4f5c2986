package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusRented      PropertyStatus = "rented"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
)

func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusRented, PropertyStatusMaintenance:
		return true
	}
	return false
}

// Property represents a rental listing
type Property struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Price       float64        `json:"price" gorm:"not null;index:idx_property_price"`
	Address     string         `json:"address" gorm:"not null"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	ImageURL    string         `json:"image_url"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Sqft        int            `json:"sqft"`
	Bedrooms    int            `json:"bedrooms" gorm:"index:idx_property_bedrooms"`
	Bathrooms   float64        `json:"bathrooms"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Status      PropertyStatus `json:"status" gorm:"not null;default:'available';index:idx_property_status"`
	CreatedAt   time.Time      `json:"created_at" gorm:"not null;default:current_timestamp;index:idx_property_created"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"not null;default:current_timestamp"`
}

// Common errors
var (
	ErrInvalidStatus = NewError("invalid property status")
	ErrInvalidPrice  = NewError("property price must be positive")
)

// Error represents a domain error
type Error struct {
	message string
}

// NewError creates a new Error instance
func NewError(message string) *Error {
	return &Error{message: message}
}

// Error returns the error message
func (e *Error) Error() string {
	return e.message
}

// TableName specifies the table name for the Property model
func (Property) TableName() string {
	return "properties"
}

// Validate checks if the property data is valid
func (p *Property) Validate() error {
	if p.Title == "" {
		return ErrInvalidInput
	}
	if p.Address == "" {
		return ErrInvalidInput
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if !p.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// BeforeCreate is called before creating a new property record
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = PropertyStatusAvailable
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	return p.Validate()
}

// BeforeUpdate is called before updating a property record
func (p *Property) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}
