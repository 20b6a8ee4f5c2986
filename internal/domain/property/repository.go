package property

import (
	"context"
	"errors"

	"github.com/JustTro11/property-management/internal/infrastructure/persistence/postgres/connection"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidInput     = errors.New("invalid input")
)

// PropertyFilter defines filtering options for property listings
type PropertyFilter struct {
	Query     string
	MinPrice  *float64
	MaxPrice  *float64
	Beds      *int
	Status    *PropertyStatus
	Amenities []string
	Page      int
	PageSize  int
}

// PropertyRepository defines the interface for property persistence operations
type PropertyRepository interface {
	Create(ctx context.Context, property *Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)
	FindAll(ctx context.Context, filter PropertyFilter) ([]Property, int64, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Property, error)
	Update(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyRepository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*Property, error) {
	var property Property
	result := r.db.WithContext(ctx).First(&property, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, result.Error
	}
	return &property, nil
}

func (r *propertyRepository) FindAll(ctx context.Context, filter PropertyFilter) ([]Property, int64, error) {
	var properties []Property
	var total int64

	query := r.db.WithContext(ctx).Model(&Property{})

	// Apply filters
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR address ILIKE ?", pattern, pattern)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Beds != nil {
		query = query.Where("bedrooms >= ?", *filter.Beds)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if len(filter.Amenities) > 0 {
		query = query.Where("amenities @> ?", pq.Array(filter.Amenities))
	}

	// Count total before pagination
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Available listings first, newest first within each status
	query = query.Order("status ASC").Order("created_at DESC")

	// Pages are 1-based
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 12
	}
	query = query.Offset((page - 1) * pageSize).Limit(pageSize)

	if err := query.Find(&properties).Error; err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

func (r *propertyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Property, error) {
	if len(ids) == 0 {
		return []Property{}, nil
	}
	var properties []Property
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *Property) error {
	result := r.db.WithContext(ctx).Save(property)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}
