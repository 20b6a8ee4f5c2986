package handlers

import (
	"github.com/JustTro11/property-management/internal/api/dto"
	"github.com/JustTro11/property-management/internal/domain/property"
)

// PropertyToResponse maps a domain listing to its API shape.
func PropertyToResponse(p *property.Property) *dto.PropertyResponse {
	if p == nil {
		return nil
	}
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	amenities := []string(p.Amenities)
	if amenities == nil {
		amenities = []string{}
	}
	return &dto.PropertyResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Address:     p.Address,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		ImageURL:    p.ImageURL,
		Images:      images,
		Sqft:        p.Sqft,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Amenities:   amenities,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PropertiesToResponse maps a page of listings.
func PropertiesToResponse(properties []property.Property) []dto.PropertyResponse {
	out := make([]dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		out = append(out, *PropertyToResponse(&properties[i]))
	}
	return out
}
