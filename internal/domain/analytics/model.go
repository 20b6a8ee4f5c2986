package analytics

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvalidEventType = errors.New("invalid event type")
	ErrInvalidRange     = errors.New("invalid date range")
)

// EventType identifies the kind of tracked user action.
type EventType string

const (
	EventTypeView     EventType = "view"
	EventTypeFavorite EventType = "favorite"
	EventTypeInquiry  EventType = "inquiry"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeView, EventTypeFavorite, EventTypeInquiry:
		return true
	}
	return false
}

// Event is an immutable, timestamped fact recorded for a tracked user
// action. Events are append-only: they are never updated or deleted by
// the application.
type Event struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PropertyID *uuid.UUID     `json:"property_id,omitempty" gorm:"type:uuid;index:idx_analytics_property"`
	EventType  EventType      `json:"event_type" gorm:"type:varchar(20);not null;index:idx_analytics_type"`
	CreatedAt  time.Time      `json:"created_at" gorm:"not null;default:now();index:idx_analytics_created"`
	Metadata   datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "analytics_events"
}

// BeforeCreate is called before inserting a new event record. The
// timestamp is always server-assigned, never client-supplied.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now().UTC()
	if !e.EventType.IsValid() {
		return ErrInvalidEventType
	}
	return nil
}

// TopProperty is one entry of the ranked by-views property list.
type TopProperty struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int    `json:"views"`
}

// DailyViews is one day of the zero-filled view series.
type DailyViews struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

// Summary is the aggregated output for a resolved window: per-type
// totals, the top properties by view count, and one entry per calendar
// day in range with days that saw no views reported as zero.
type Summary struct {
	TotalViews     int           `json:"totalViews"`
	TotalFavorites int           `json:"totalFavorites"`
	TotalInquiries int           `json:"totalInquiries"`
	TopProperties  []TopProperty `json:"topProperties"`
	ViewsByDate    []DailyViews  `json:"viewsByDate"`
}
