package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordEventInput is the input for recording a tracked user action.
type RecordEventInput struct {
	PropertyID *uuid.UUID             `json:"property_id,omitempty"`
	EventType  EventType              `json:"event_type"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

type Service interface {
	// Record appends one event with a server-assigned timestamp.
	// Tracking is fire-and-forget: storage failures are logged, never
	// surfaced, so the user action being annotated is never blocked.
	// Only an unrecognized event type is a caller error.
	Record(ctx context.Context, input RecordEventInput) error

	// Summarize aggregates all events inside the window. Storage
	// failures surface: a dashboard must be able to tell "no events"
	// apart from "store unreachable".
	Summarize(ctx context.Context, window Window) (*Summary, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Record(ctx context.Context, input RecordEventInput) error {
	if !input.EventType.IsValid() {
		return ErrInvalidEventType
	}

	event := &Event{
		PropertyID: input.PropertyID,
		EventType:  input.EventType,
	}
	if input.Metadata != nil {
		raw, err := json.Marshal(input.Metadata)
		if err != nil {
			s.logger.Warn("Failed to encode event metadata, recording without it",
				zap.String("event_type", string(input.EventType)),
				zap.Error(err))
		} else {
			event.Metadata = raw
		}
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		s.logger.Error("Failed to record analytics event",
			zap.String("event_type", string(input.EventType)),
			zap.Error(err))
	}
	return nil
}

func (s *service) Summarize(ctx context.Context, window Window) (*Summary, error) {
	records, err := s.repo.FindInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analytics events: %w", err)
	}
	return Aggregate(records, window), nil
}
