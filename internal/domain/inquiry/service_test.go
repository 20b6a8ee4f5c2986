package inquiry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustTro11/property-management/internal/domain/analytics"
	"github.com/JustTro11/property-management/internal/infrastructure/mailer"
)

type stubMailer struct {
	sent []mailer.Message
	err  error
}

func (m *stubMailer) Send(ctx context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type stubRecorder struct {
	inputs []analytics.RecordEventInput
	err    error
}

func (r *stubRecorder) Record(ctx context.Context, input analytics.RecordEventInput) error {
	r.inputs = append(r.inputs, input)
	return r.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func validInput() TourRequestInput {
	propertyID := uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a01")
	return TourRequestInput{
		Name:          "Jamie Rivera",
		Email:         "jamie@example.com",
		Phone:         "555-0100",
		Date:          "2026-09-15",
		PropertyID:    &propertyID,
		PropertyTitle: "The Skyline Penthouse",
	}
}

func TestRequestTourSendsEmailToAdmin(t *testing.T) {
	m := &stubMailer{}
	rec := &stubRecorder{}
	svc := NewService(m, rec, "LuxeLiving <noreply@luxeliving.example>", "admin@luxeliving.example", quietLogger())

	err := svc.RequestTour(context.Background(), validInput())

	require.NoError(t, err)
	require.Len(t, m.sent, 1)
	msg := m.sent[0]
	assert.Equal(t, []string{"admin@luxeliving.example"}, msg.To)
	assert.Equal(t, "Tour Request: The Skyline Penthouse", msg.Subject)
	assert.Contains(t, msg.HTML, "Jamie Rivera")
	assert.Contains(t, msg.HTML, "jamie@example.com")
	assert.Contains(t, msg.HTML, "555-0100")
	assert.Contains(t, msg.HTML, "2026-09-15")
}

func TestRequestTourRecordsInquiryEvent(t *testing.T) {
	m := &stubMailer{}
	rec := &stubRecorder{}
	svc := NewService(m, rec, "noreply@luxeliving.example", "admin@luxeliving.example", quietLogger())
	input := validInput()

	err := svc.RequestTour(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, rec.inputs, 1)
	assert.Equal(t, analytics.EventTypeInquiry, rec.inputs[0].EventType)
	assert.Equal(t, *input.PropertyID, *rec.inputs[0].PropertyID)
	assert.Equal(t, "tour_request", rec.inputs[0].Metadata["source"])
}

func TestRequestTourValidatesRequiredFields(t *testing.T) {
	m := &stubMailer{}
	svc := NewService(m, nil, "noreply@luxeliving.example", "admin@luxeliving.example", quietLogger())

	tests := []struct {
		name   string
		mutate func(*TourRequestInput)
	}{
		{"missing name", func(in *TourRequestInput) { in.Name = "" }},
		{"missing email", func(in *TourRequestInput) { in.Email = "" }},
		{"missing date", func(in *TourRequestInput) { in.Date = "" }},
		{"missing property title", func(in *TourRequestInput) { in.PropertyTitle = "" }},
		{"whitespace only name", func(in *TourRequestInput) { in.Name = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			err := svc.RequestTour(context.Background(), input)

			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Empty(t, m.sent)
		})
	}
}

func TestRequestTourPhoneIsOptional(t *testing.T) {
	m := &stubMailer{}
	svc := NewService(m, nil, "noreply@luxeliving.example", "admin@luxeliving.example", quietLogger())
	input := validInput()
	input.Phone = ""

	err := svc.RequestTour(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, m.sent, 1)
	assert.NotContains(t, m.sent[0].HTML, "Phone")
}

func TestRequestTourRequiresRecipientAddress(t *testing.T) {
	m := &stubMailer{}
	svc := NewService(m, nil, "noreply@luxeliving.example", "", quietLogger())

	err := svc.RequestTour(context.Background(), validInput())

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRequestTourSurfacesMailerFailure(t *testing.T) {
	m := &stubMailer{err: errors.New("provider down")}
	rec := &stubRecorder{}
	svc := NewService(m, rec, "noreply@luxeliving.example", "admin@luxeliving.example", quietLogger())

	err := svc.RequestTour(context.Background(), validInput())

	assert.Error(t, err)
	assert.Empty(t, rec.inputs, "no inquiry event when the email was not sent")
}

func TestRequestTourToleratesRecorderFailure(t *testing.T) {
	m := &stubMailer{}
	rec := &stubRecorder{err: errors.New("store down")}
	svc := NewService(m, rec, "noreply@luxeliving.example", "admin@luxeliving.example", quietLogger())

	err := svc.RequestTour(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Len(t, m.sent, 1)
}

func TestRequestTourEscapesHTML(t *testing.T) {
	m := &stubMailer{}
	svc := NewService(m, nil, "noreply@luxeliving.example", "admin@luxeliving.example", quietLogger())
	input := validInput()
	input.Name = `<script>alert("x")</script>`

	err := svc.RequestTour(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, m.sent, 1)
	assert.NotContains(t, m.sent[0].HTML, "<script>")
}
