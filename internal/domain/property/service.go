package property

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Geocoder resolves a street address into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

type CreatePropertyInput struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Address     string         `json:"address"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	ImageURL    string         `json:"image_url"`
	Images      []string       `json:"images,omitempty"`
	Sqft        int            `json:"sqft"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   float64        `json:"bathrooms"`
	Amenities   []string       `json:"amenities,omitempty"`
	Status      PropertyStatus `json:"status"`
}

type UpdatePropertyInput struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Price       *float64        `json:"price,omitempty"`
	Address     *string         `json:"address,omitempty"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	ImageURL    *string         `json:"image_url,omitempty"`
	Images      []string        `json:"images,omitempty"`
	Sqft        *int            `json:"sqft,omitempty"`
	Bedrooms    *int            `json:"bedrooms,omitempty"`
	Bathrooms   *float64        `json:"bathrooms,omitempty"`
	Amenities   []string        `json:"amenities,omitempty"`
	Status      *PropertyStatus `json:"status,omitempty"`
}

type Service interface {
	ListProperties(ctx context.Context, filter PropertyFilter) ([]Property, int64, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*Property, error)
	ListPropertiesByIDs(ctx context.Context, ids []uuid.UUID) ([]Property, error)
	CreateProperty(ctx context.Context, input CreatePropertyInput) (*Property, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*Property, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      PropertyRepository
	fallback  *fallbackCatalog
	geocoder  Geocoder
	forceMock bool
	logger    *zap.Logger
}

// NewService creates a property service. geocoder may be nil; forceMock serves
// the fallback catalog on every browse read regardless of store health.
func NewService(repo PropertyRepository, geocoder Geocoder, forceMock bool, logger *zap.Logger) Service {
	return &service{
		repo:      repo,
		fallback:  newFallbackCatalog(),
		geocoder:  geocoder,
		forceMock: forceMock,
		logger:    logger,
	}
}

func (s *service) ListProperties(ctx context.Context, filter PropertyFilter) ([]Property, int64, error) {
	if s.forceMock {
		properties, total := s.fallback.List(filter)
		return properties, total, nil
	}

	properties, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("property store unavailable, serving fallback catalog", zap.Error(err))
		properties, total := s.fallback.List(filter)
		return properties, total, nil
	}
	return properties, total, nil
}

func (s *service) GetProperty(ctx context.Context, id uuid.UUID) (*Property, error) {
	if s.forceMock {
		if p, ok := s.fallback.Get(id); ok {
			return p, nil
		}
		return nil, ErrPropertyNotFound
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return nil, err
		}
		s.logger.Error("property store unavailable, serving fallback catalog", zap.Error(err))
		if fp, ok := s.fallback.Get(id); ok {
			return fp, nil
		}
		return nil, ErrPropertyNotFound
	}
	return p, nil
}

func (s *service) ListPropertiesByIDs(ctx context.Context, ids []uuid.UUID) ([]Property, error) {
	if len(ids) == 0 {
		return []Property{}, nil
	}
	if s.forceMock {
		return s.fallback.ByIDs(ids), nil
	}

	properties, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("property store unavailable, serving fallback catalog", zap.Error(err))
		return s.fallback.ByIDs(ids), nil
	}
	return properties, nil
}

func (s *service) CreateProperty(ctx context.Context, input CreatePropertyInput) (*Property, error) {
	p := &Property{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		ImageURL:    input.ImageURL,
		Images:      pq.StringArray(input.Images),
		Sqft:        input.Sqft,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Amenities:   pq.StringArray(input.Amenities),
		Status:      input.Status,
	}
	if p.Status == "" {
		p.Status = PropertyStatusAvailable
	}

	s.resolveCoordinates(ctx, p)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("property created",
		zap.String("property_id", p.ID.String()),
		zap.String("title", p.Title))
	return p, nil
}

func (s *service) UpdateProperty(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	addressChanged := false
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Address != nil && *input.Address != p.Address {
		p.Address = *input.Address
		addressChanged = true
	}
	if input.Latitude != nil {
		p.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		p.Longitude = input.Longitude
	}
	if input.ImageURL != nil {
		p.ImageURL = *input.ImageURL
	}
	if input.Images != nil {
		p.Images = pq.StringArray(input.Images)
	}
	if input.Sqft != nil {
		p.Sqft = *input.Sqft
	}
	if input.Bedrooms != nil {
		p.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		p.Bathrooms = *input.Bathrooms
	}
	if input.Amenities != nil {
		p.Amenities = pq.StringArray(input.Amenities)
	}
	if input.Status != nil {
		p.Status = *input.Status
	}

	// Stale coordinates are worse than none after a move
	if addressChanged && input.Latitude == nil && input.Longitude == nil {
		p.Latitude = nil
		p.Longitude = nil
	}
	s.resolveCoordinates(ctx, p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("property deleted", zap.String("property_id", id.String()))
	return nil
}

// resolveCoordinates fills missing coordinates from the address. Geocoding is
// best-effort; a listing without a map pin is still a valid listing.
func (s *service) resolveCoordinates(ctx context.Context, p *Property) {
	if s.geocoder == nil || p.Address == "" {
		return
	}
	if p.Latitude != nil && p.Longitude != nil {
		return
	}
	lat, lng, err := s.geocoder.Geocode(ctx, p.Address)
	if err != nil {
		s.logger.Warn("geocoding failed",
			zap.String("address", p.Address),
			zap.Error(err))
		return
	}
	p.Latitude = &lat
	p.Longitude = &lng
}
