package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JustTro11/property-management/internal/domain/property"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPropertyService struct {
	properties []property.Property
	total      int64
	single     *property.Property
	err        error

	lastFilter *property.PropertyFilter
	lastIDs    []uuid.UUID
	lastCreate *property.CreatePropertyInput
	deleted    []uuid.UUID
}

func (s *stubPropertyService) ListProperties(ctx context.Context, filter property.PropertyFilter) ([]property.Property, int64, error) {
	s.lastFilter = &filter
	return s.properties, s.total, s.err
}

func (s *stubPropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	return s.single, s.err
}

func (s *stubPropertyService) ListPropertiesByIDs(ctx context.Context, ids []uuid.UUID) ([]property.Property, error) {
	s.lastIDs = ids
	return s.properties, s.err
}

func (s *stubPropertyService) CreateProperty(ctx context.Context, input property.CreatePropertyInput) (*property.Property, error) {
	s.lastCreate = &input
	return s.single, s.err
}

func (s *stubPropertyService) UpdateProperty(ctx context.Context, id uuid.UUID, input property.UpdatePropertyInput) (*property.Property, error) {
	return s.single, s.err
}

func (s *stubPropertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func newPropertyRouter(service property.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewPropertyHandler(service, 12)
	router := gin.New()
	router.GET("/api/properties", handler.ListProperties)
	router.GET("/api/properties/:id", handler.GetProperty)
	router.POST("/api/properties/batch", handler.BatchProperties)
	router.POST("/api/properties", handler.CreateProperty)
	router.DELETE("/api/properties/:id", handler.DeleteProperty)
	return router
}

func TestListPropertiesParsesFilters(t *testing.T) {
	service := &stubPropertyService{total: 0}
	router := newPropertyRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/properties?query=loft&min_price=1000&max_price=3500&beds=2&status=available&amenities=Gym,%20Pool&page=2&page_size=6", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, service.lastFilter)
	filter := *service.lastFilter
	assert.Equal(t, "loft", filter.Query)
	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, 1000.0, *filter.MinPrice)
	require.NotNil(t, filter.MaxPrice)
	assert.Equal(t, 3500.0, *filter.MaxPrice)
	require.NotNil(t, filter.Beds)
	assert.Equal(t, 2, *filter.Beds)
	require.NotNil(t, filter.Status)
	assert.Equal(t, property.PropertyStatusAvailable, *filter.Status)
	assert.Equal(t, []string{"Gym", "Pool"}, filter.Amenities)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 6, filter.PageSize)
}

func TestListPropertiesDefaultsPagination(t *testing.T) {
	service := &stubPropertyService{}
	router := newPropertyRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, service.lastFilter)
	assert.Equal(t, 1, service.lastFilter.Page)
	assert.Equal(t, 12, service.lastFilter.PageSize)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(12), body["page_size"])
}

func TestListPropertiesRejectsBadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"zero page", "?page=0"},
		{"non-numeric page", "?page=abc"},
		{"oversized page_size", "?page_size=500"},
		{"bad min_price", "?min_price=cheap"},
		{"bad beds", "?beds=two"},
		{"unknown status", "?status=demolished"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubPropertyService{}
			router := newPropertyRouter(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/properties"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, service.lastFilter)
		})
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	service := &stubPropertyService{err: property.ErrPropertyNotFound}
	router := newPropertyRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPropertyRejectsMalformedID(t *testing.T) {
	service := &stubPropertyService{}
	router := newPropertyRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchPropertiesSkipsUnparsableIDs(t *testing.T) {
	known := uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a01")
	service := &stubPropertyService{properties: []property.Property{}}
	router := newPropertyRouter(service)

	body := `{"ids": ["` + known.String() + `", "not-a-uuid", ""]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/properties/batch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uuid.UUID{known}, service.lastIDs)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBatchPropertiesRejectsMissingIDs(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no ids field", `{}`},
		{"ids not an array", `{"ids": "abc"}`},
		{"not json", `ids=1,2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubPropertyService{}
			router := newPropertyRouter(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/properties/batch", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, service.lastIDs)
		})
	}
}

func TestCreatePropertyReturnsCreated(t *testing.T) {
	created := property.Property{
		ID:      uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a01"),
		Title:   "Marina Loft",
		Address: "12 Harbor Way",
		Price:   2400,
		Status:  property.PropertyStatusAvailable,
	}
	service := &stubPropertyService{single: &created}
	router := newPropertyRouter(service)

	body := `{"title": "Marina Loft", "address": "12 Harbor Way", "price": 2400}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, service.lastCreate)
	assert.Equal(t, "Marina Loft", service.lastCreate.Title)
	assert.Contains(t, w.Body.String(), created.ID.String())
}

func TestCreatePropertyRejectsUnknownStatus(t *testing.T) {
	service := &stubPropertyService{}
	router := newPropertyRouter(service)

	body := `{"title": "Marina Loft", "address": "12 Harbor Way", "price": 2400, "status": "condemned"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, service.lastCreate)
}

func TestDeletePropertyNotFound(t *testing.T) {
	service := &stubPropertyService{err: property.ErrPropertyNotFound}
	router := newPropertyRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/properties/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
