package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JustTro11/property-management/internal/api/middleware"
	"github.com/JustTro11/property-management/internal/domain/analytics"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAnalyticsService struct {
	summary      *analytics.Summary
	summarizeErr error
	recordErr    error
	recorded     []analytics.RecordEventInput
	windows      []analytics.Window
}

func (s *stubAnalyticsService) Record(ctx context.Context, input analytics.RecordEventInput) error {
	if s.recordErr != nil {
		return s.recordErr
	}
	s.recorded = append(s.recorded, input)
	return nil
}

func (s *stubAnalyticsService) Summarize(ctx context.Context, window analytics.Window) (*analytics.Summary, error) {
	s.windows = append(s.windows, window)
	if s.summarizeErr != nil {
		return nil, s.summarizeErr
	}
	return s.summary, nil
}

func newAnalyticsRouter(service analytics.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(service)
	router := gin.New()
	router.GET("/api/analytics", handler.GetSummary)
	router.POST("/api/analytics/track", handler.TrackEvent)
	return router
}

func TestGetSummaryReturnsAggregates(t *testing.T) {
	service := &stubAnalyticsService{
		summary: &analytics.Summary{
			TotalViews:     4,
			TotalFavorites: 1,
			TopProperties:  []analytics.TopProperty{},
			ViewsByDate:    []analytics.DailyViews{{Date: "2026-08-29", Views: 4}},
		},
	}
	router := newAnalyticsRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analytics?preset=7d", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"totalViews": 4,
		"totalFavorites": 1,
		"totalInquiries": 0,
		"topProperties": [],
		"viewsByDate": [{"date": "2026-08-29", "views": 4}]
	}`, w.Body.String())
}

func TestGetSummaryRejectsMalformedDates(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"garbage start", "?start=not-a-date&end=2026-08-01"},
		{"garbage end", "?start=2026-08-01&end=yesterday"},
		{"lone garbage start", "?start=whenever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubAnalyticsService{summary: &analytics.Summary{}}
			router := newAnalyticsRouter(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/analytics"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, service.windows, "service should not be consulted")
		})
	}
}

// A parsable start or end on its own is not an explicit range: it is
// ignored and the default lookback applies.
func TestGetSummaryIgnoresLoneRangeParam(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"start without end", "?start=2026-08-01"},
		{"end without start", "?end=2026-08-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubAnalyticsService{summary: &analytics.Summary{}}
			router := newAnalyticsRouter(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/analytics"+tt.query, nil)
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			require.Len(t, service.windows, 1)
			window := service.windows[0]
			assert.False(t, window.AllTime)
			assert.Equal(t, 30*24*time.Hour, window.End.Sub(window.Start))
			assert.WithinDuration(t, time.Now(), window.End, time.Minute)
		})
	}
}

func TestGetSummaryAcceptsExplicitRange(t *testing.T) {
	service := &stubAnalyticsService{summary: &analytics.Summary{}}
	router := newAnalyticsRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analytics?start=2026-08-01&end=2026-08-15", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, service.windows, 1)
	window := service.windows[0]
	assert.Equal(t, "2026-08-01", window.Start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-15", window.End.Format("2006-01-02"))
	assert.False(t, window.AllTime)
}

func TestGetSummarySurfacesStoreFailure(t *testing.T) {
	service := &stubAnalyticsService{summarizeErr: errors.New("connection refused")}
	router := newAnalyticsRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSummaryRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(&stubAnalyticsService{summary: &analytics.Summary{}})
	router := gin.New()
	router.GET("/api/analytics", middleware.NewAuthMiddleware("test-secret"), handler.GetSummary)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTrackEventRecords(t *testing.T) {
	service := &stubAnalyticsService{}
	router := newAnalyticsRouter(service)

	body := `{"property_id": "3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a01", "event_type": "view", "metadata": {"source": "listing_page"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/track", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	require.Len(t, service.recorded, 1)
	input := service.recorded[0]
	assert.Equal(t, analytics.EventTypeView, input.EventType)
	require.NotNil(t, input.PropertyID)
	assert.Equal(t, "3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a01", input.PropertyID.String())
	assert.Equal(t, "listing_page", input.Metadata["source"])
}

func TestTrackEventRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing event_type", `{"property_id": "3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a01"}`},
		{"empty event_type", `{"event_type": ""}`},
		{"malformed property_id", `{"event_type": "view", "property_id": "not-a-uuid"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubAnalyticsService{}
			router := newAnalyticsRouter(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/analytics/track", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, service.recorded)
		})
	}
}

func TestTrackEventRejectsUnknownType(t *testing.T) {
	service := &stubAnalyticsService{recordErr: analytics.ErrInvalidEventType}
	router := newAnalyticsRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/track", strings.NewReader(`{"event_type": "teleport"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// A degraded event store must never turn tracking into a user-facing
// failure, so the full service is wired here rather than a stub.
func TestTrackEventAcknowledgesDespiteStoreFailure(t *testing.T) {
	repo := &failingEventRepository{}
	service := analytics.NewService(repo, zap.NewNop())
	router := newAnalyticsRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/track", strings.NewReader(`{"event_type": "view"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

type failingEventRepository struct{}

func (r *failingEventRepository) Insert(ctx context.Context, event *analytics.Event) error {
	return errors.New("connection refused")
}

func (r *failingEventRepository) FindInWindow(ctx context.Context, window analytics.Window) ([]analytics.EventRecord, error) {
	return nil, errors.New("connection refused")
}
