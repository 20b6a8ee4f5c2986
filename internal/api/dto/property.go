package dto

import "time"

// CreatePropertyRequest is the body for POST /api/properties.
type CreatePropertyRequest struct {
	Title       string   `json:"title" validate:"required,not_empty" example:"The Skyline Penthouse"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0" example:"8500"`
	Address     string   `json:"address" validate:"required,not_empty" example:"1200 Harbor View Drive, San Francisco, CA"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ImageURL    string   `json:"image_url"`
	Images      []string `json:"images,omitempty"`
	Sqft        int      `json:"sqft" validate:"gte=0"`
	Bedrooms    int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms   float64  `json:"bathrooms" validate:"gte=0"`
	Amenities   []string `json:"amenities,omitempty"`
	Status      string   `json:"status" example:"available"`
}

// UpdatePropertyRequest is the body for PUT /api/properties/:id.
type UpdatePropertyRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Address     *string  `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Images      []string `json:"images,omitempty"`
	Sqft        *int     `json:"sqft,omitempty" validate:"omitempty,gte=0"`
	Bedrooms    *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms   *float64 `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Amenities   []string `json:"amenities,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// BatchPropertiesRequest is the body for POST /api/properties/batch.
type BatchPropertiesRequest struct {
	IDs []string `json:"ids" validate:"required"`
}

// PropertyResponse is a single listing as returned by the API.
type PropertyResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Address     string    `json:"address"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	ImageURL    string    `json:"image_url"`
	Images      []string  `json:"images"`
	Sqft        int       `json:"sqft"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   float64   `json:"bathrooms"`
	Amenities   []string  `json:"amenities"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PropertyListResponse is the paginated listing payload.
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}
