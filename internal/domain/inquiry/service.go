package inquiry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/JustTro11/property-management/internal/domain/analytics"
	"github.com/JustTro11/property-management/internal/infrastructure/mailer"
)

var (
	ErrMissingFields = errors.New("name, email, date and property title are required")
	ErrNotConfigured = errors.New("inquiry recipient address is not configured")
)

// Mailer abstracts the transactional email provider.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// EventRecorder records analytics events for inquiries.
type EventRecorder interface {
	Record(ctx context.Context, input analytics.RecordEventInput) error
}

// TourRequestInput carries a visitor's tour booking details.
type TourRequestInput struct {
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Date          string     `json:"date"`
	PropertyID    *uuid.UUID `json:"property_id,omitempty"`
	PropertyTitle string     `json:"property_title"`
}

type Service interface {
	RequestTour(ctx context.Context, input TourRequestInput) error
}

type service struct {
	mailer      Mailer
	events      EventRecorder
	fromAddress string
	adminEmail  string
	logger      *logrus.Logger
}

func NewService(m Mailer, events EventRecorder, fromAddress, adminEmail string, logger *logrus.Logger) Service {
	return &service{
		mailer:      m,
		events:      events,
		fromAddress: fromAddress,
		adminEmail:  adminEmail,
		logger:      logger,
	}
}

var tourRequestTemplate = template.Must(template.New("tour_request").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Helvetica, Arial, sans-serif; color: #1a1a1a;">
    <h2>New Tour Request</h2>
    <p>A visitor has requested a tour of <strong>{{.PropertyTitle}}</strong>.</p>
    <table cellpadding="6">
      <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
      <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
      {{if .Phone}}<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>{{end}}
      <tr><td><strong>Requested date</strong></td><td>{{.Date}}</td></tr>
    </table>
  </body>
</html>`))

func (s *service) RequestTour(ctx context.Context, input TourRequestInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Date = strings.TrimSpace(input.Date)
	input.PropertyTitle = strings.TrimSpace(input.PropertyTitle)

	if input.Name == "" || input.Email == "" || input.Date == "" || input.PropertyTitle == "" {
		return ErrMissingFields
	}
	if s.adminEmail == "" {
		return ErrNotConfigured
	}

	var body bytes.Buffer
	if err := tourRequestTemplate.Execute(&body, input); err != nil {
		return fmt.Errorf("failed to render tour request email: %w", err)
	}

	msg := mailer.Message{
		From:    s.fromAddress,
		To:      []string{s.adminEmail},
		Subject: "Tour Request: " + input.PropertyTitle,
		HTML:    body.String(),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.WithError(err).WithField("property", input.PropertyTitle).
			Error("Failed to send tour request email")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"property": input.PropertyTitle,
		"date":     input.Date,
	}).Info("Tour request forwarded")

	// Best-effort tracking; a dropped event never fails the booking.
	if s.events != nil {
		metadata := map[string]interface{}{
			"source":         "tour_request",
			"requested_date": input.Date,
		}
		if err := s.events.Record(ctx, analytics.RecordEventInput{
			PropertyID: input.PropertyID,
			EventType:  analytics.EventTypeInquiry,
			Metadata:   metadata,
		}); err != nil {
			s.logger.WithError(err).Warn("Failed to record inquiry event")
		}
	}

	return nil
}
