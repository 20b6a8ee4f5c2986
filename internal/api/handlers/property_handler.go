package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/JustTro11/property-management/internal/api/dto"
	"github.com/JustTro11/property-management/internal/domain/property"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PropertyHandler handles HTTP requests for property operations
type PropertyHandler struct {
	service         property.Service
	defaultPageSize int
}

// NewPropertyHandler creates a new PropertyHandler instance
func NewPropertyHandler(service property.Service, defaultPageSize int) *PropertyHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = 12
	}
	return &PropertyHandler{service: service, defaultPageSize: defaultPageSize}
}

// ListProperties godoc
// @Summary List properties
// @Description Get a paginated list of properties with optional filters
// @Tags properties
// @Produce json
// @Param query query string false "Match against title or address"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param beds query int false "Minimum number of bedrooms"
// @Param status query string false "Listing status: available, rented or maintenance"
// @Param amenities query string false "Comma-separated amenities the listing must include"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Listings per page (default 12)"
// @Success 200 {object} dto.PropertyListResponse "Page of listings"
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Router /api/properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filter := property.PropertyFilter{
		Query:    strings.TrimSpace(c.Query("query")),
		Page:     1,
		PageSize: h.defaultPageSize,
	}

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page number"})
			return
		}
		filter.Page = page
	}
	if v := c.Query("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 || size > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page size"})
			return
		}
		filter.PageSize = size
	}
	if v := c.Query("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
			return
		}
		filter.MinPrice = &price
	}
	if v := c.Query("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
			return
		}
		filter.MaxPrice = &price
	}
	if v := c.Query("beds"); v != "" {
		beds, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid beds"})
			return
		}
		filter.Beds = &beds
	}
	if v := c.Query("status"); v != "" {
		status := property.PropertyStatus(v)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
			return
		}
		filter.Status = &status
	}
	if v := c.Query("amenities"); v != "" {
		for _, amenity := range strings.Split(v, ",") {
			if amenity = strings.TrimSpace(amenity); amenity != "" {
				filter.Amenities = append(filter.Amenities, amenity)
			}
		}
	}

	properties, total, err := h.service.ListProperties(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.PropertyListResponse{
		Properties: PropertiesToResponse(properties),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	})
}

// GetProperty godoc
// @Summary Get a property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID" format(uuid)
// @Success 200 {object} dto.PropertyResponse "Listing details"
// @Failure 400 {object} map[string]string "Invalid property ID"
// @Failure 404 {object} map[string]string "Property not found"
// @Router /api/properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}

	p, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		statuscode := http.StatusInternalServerError
		if errors.Is(err, property.ErrPropertyNotFound) {
			statuscode = http.StatusNotFound
		}
		c.JSON(statuscode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, PropertyToResponse(p))
}

// BatchProperties godoc
// @Summary Get properties by IDs
// @Description Resolve a list of property IDs, used by the recently-viewed panel
// @Tags properties
// @Accept json
// @Produce json
// @Param ids body dto.BatchPropertiesRequest true "Property IDs"
// @Success 200 {array} dto.PropertyResponse "Matched listings"
// @Failure 400 {object} map[string]string "Invalid IDs format"
// @Router /api/properties/batch [post]
func (h *PropertyHandler) BatchProperties(c *gin.Context) {
	var req dto.BatchPropertiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid IDs format"})
		return
	}
	if req.IDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid IDs format"})
		return
	}

	// Unparsable entries are skipped rather than failing the batch
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}

	properties, err := h.service.ListPropertiesByIDs(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, PropertiesToResponse(properties))
}

// CreateProperty godoc
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param property body dto.CreatePropertyRequest true "Property to create"
// @Success 201 {object} dto.PropertyResponse "Property created"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if validated, exists := c.Get("validated_model"); exists {
		if ptr, ok := validated.(*dto.CreatePropertyRequest); ok {
			req = *ptr
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := property.PropertyStatus(req.Status)
	if req.Status != "" && !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
		return
	}

	input := property.CreatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
		Images:      req.Images,
		Sqft:        req.Sqft,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Amenities:   req.Amenities,
		Status:      status,
	}

	created, err := h.service.CreateProperty(c.Request.Context(), input)
	if err != nil {
		statuscode := http.StatusInternalServerError
		if errors.Is(err, property.ErrInvalidInput) || errors.Is(err, property.ErrInvalidPrice) || errors.Is(err, property.ErrInvalidStatus) {
			statuscode = http.StatusBadRequest
		}
		c.JSON(statuscode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": PropertyToResponse(created)})
}

// UpdateProperty godoc
// @Summary Update a property
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID" format(uuid)
// @Param property body dto.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} dto.PropertyResponse "Property updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Property not found"
// @Router /api/properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}

	var req dto.UpdatePropertyRequest
	if validated, exists := c.Get("validated_model"); exists {
		if ptr, ok := validated.(*dto.UpdatePropertyRequest); ok {
			req = *ptr
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := property.UpdatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
		Images:      req.Images,
		Sqft:        req.Sqft,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Amenities:   req.Amenities,
	}
	if req.Status != nil {
		status := property.PropertyStatus(*req.Status)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
			return
		}
		input.Status = &status
	}

	updated, err := h.service.UpdateProperty(c.Request.Context(), id, input)
	if err != nil {
		statuscode := http.StatusInternalServerError
		if errors.Is(err, property.ErrPropertyNotFound) {
			statuscode = http.StatusNotFound
		} else if errors.Is(err, property.ErrInvalidInput) || errors.Is(err, property.ErrInvalidPrice) || errors.Is(err, property.ErrInvalidStatus) {
			statuscode = http.StatusBadRequest
		}
		c.JSON(statuscode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": PropertyToResponse(updated)})
}

// DeleteProperty godoc
// @Summary Delete a property
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID" format(uuid)
// @Success 200 {object} map[string]string "Property deleted"
// @Failure 400 {object} map[string]string "Invalid property ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Property not found"
// @Router /api/properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), id); err != nil {
		statuscode := http.StatusInternalServerError
		if errors.Is(err, property.ErrPropertyNotFound) {
			statuscode = http.StatusNotFound
		}
		c.JSON(statuscode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "property deleted"})
}
