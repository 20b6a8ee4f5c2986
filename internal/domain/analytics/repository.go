package analytics

import (
	"context"
	"time"

	"github.com/JustTro11/property-management/internal/infrastructure/persistence/postgres/connection"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventRecord is an event row joined to the human-readable title of the
// property it concerns. Title is nil for events without a subject or
// whose property has since been deleted.
type EventRecord struct {
	ID            uuid.UUID
	PropertyID    *uuid.UUID
	EventType     EventType
	CreatedAt     time.Time
	Metadata      datatypes.JSON
	PropertyTitle *string
}

// Repository defines the persistence operations of the event store.
type Repository interface {
	Insert(ctx context.Context, event *Event) error
	FindInWindow(ctx context.Context, window Window) ([]EventRecord, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindInWindow returns all events whose timestamp falls inside the
// window, inclusive on both ends. Unbounded windows scan the entire
// event history.
func (r *repository) FindInWindow(ctx context.Context, window Window) ([]EventRecord, error) {
	var records []EventRecord

	query := r.db.WithContext(ctx).
		Table("analytics_events").
		Select("analytics_events.id, analytics_events.property_id, analytics_events.event_type, analytics_events.created_at, analytics_events.metadata, properties.title AS property_title").
		Joins("LEFT JOIN properties ON properties.id = analytics_events.property_id")

	if !window.AllTime {
		query = query.
			Where("analytics_events.created_at >= ?", window.Start).
			Where("analytics_events.created_at <= ?", window.End)
	}

	if err := query.Order("analytics_events.created_at ASC").Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
