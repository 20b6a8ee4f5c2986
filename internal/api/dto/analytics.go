package dto

// TrackEventRequest is the body for POST /api/analytics/track.
type TrackEventRequest struct {
	PropertyID *string                `json:"property_id,omitempty" example:"3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a01"`
	EventType  string                 `json:"event_type" validate:"required,not_empty" example:"view"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// TrackEventResponse acknowledges a tracking call.
type TrackEventResponse struct {
	Success bool `json:"success" example:"true"`
}
