package dto

// TourRequest is the body for POST /api/inquiries/tour.
type TourRequest struct {
	Name          string  `json:"name" validate:"required,not_empty" example:"Jamie Rivera"`
	Email         string  `json:"email" validate:"required,email" example:"jamie@example.com"`
	Phone         string  `json:"phone,omitempty" example:"555-0100"`
	Date          string  `json:"date" validate:"required,not_empty" example:"2026-09-15"`
	PropertyID    *string `json:"property_id,omitempty"`
	PropertyTitle string  `json:"property_title" validate:"required,not_empty" example:"The Skyline Penthouse"`
}

// TourResponse acknowledges a forwarded tour request.
type TourResponse struct {
	Success bool `json:"success" example:"true"`
}
