package handlers

import (
	"net/http"
	"time"

	"github.com/JustTro11/property-management/internal/api/dto"
	"github.com/JustTro11/property-management/internal/domain/analytics"
	"github.com/JustTro11/property-management/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var log = logger.NewLogger()

// AnalyticsHandler handles HTTP requests for analytics operations
type AnalyticsHandler struct {
	service analytics.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(service analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// dateLayouts are the accepted formats for explicit start/end parameters.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDateParam(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, true
		}
	}
	return nil, false
}

// GetSummary godoc
// @Summary Get aggregated analytics
// @Description Get event totals, top properties and a daily view series for a time range
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param preset query string false "Named range: 7d, 30d, 90d or all"
// @Param start query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} analytics.Summary "Aggregated summary"
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/analytics [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	preset := c.Query("preset")

	start, okStart := parseDateParam(c.Query("start"))
	end, okEnd := parseDateParam(c.Query("end"))
	if !okStart || !okEnd {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
		return
	}

	// A lone start or end is ignored: the resolver only applies an
	// explicit range when both ends are present, otherwise it falls
	// back to the default lookback.
	window := analytics.ResolveWindow(preset, start, end, false, time.Now())

	summary, err := h.service.Summarize(c.Request.Context(), window)
	if err != nil {
		log.Error("Failed to build analytics summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// TrackEvent godoc
// @Summary Record an analytics event
// @Description Record a view, favorite or inquiry event. Always acknowledges accepted events even if persistence is degraded.
// @Tags analytics
// @Accept json
// @Produce json
// @Param event body dto.TrackEventRequest true "Event to record"
// @Success 200 {object} dto.TrackEventResponse "Event accepted"
// @Failure 400 {object} map[string]string "Missing or unknown event_type"
// @Router /api/analytics/track [post]
func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	var req dto.TrackEventRequest
	if validated, exists := c.Get("validated_model"); exists {
		if ptr, ok := validated.(*dto.TrackEventRequest); ok {
			req = *ptr
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.EventType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing event_type"})
		return
	}

	var propertyID *uuid.UUID
	if req.PropertyID != nil && *req.PropertyID != "" {
		id, err := uuid.Parse(*req.PropertyID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property_id"})
			return
		}
		propertyID = &id
	}

	input := analytics.RecordEventInput{
		PropertyID: propertyID,
		EventType:  analytics.EventType(req.EventType),
		Metadata:   req.Metadata,
	}

	if err := h.service.Record(c.Request.Context(), input); err != nil {
		// Only validation errors surface; storage failures are absorbed
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.TrackEventResponse{Success: true})
}
