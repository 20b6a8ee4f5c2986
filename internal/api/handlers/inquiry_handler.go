package handlers

import (
	"errors"
	"net/http"

	"github.com/JustTro11/property-management/internal/api/dto"
	"github.com/JustTro11/property-management/internal/domain/inquiry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InquiryHandler handles HTTP requests for tour inquiries
type InquiryHandler struct {
	service inquiry.Service
}

// NewInquiryHandler creates a new InquiryHandler instance
func NewInquiryHandler(service inquiry.Service) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// RequestTour godoc
// @Summary Request a property tour
// @Description Forward a visitor's tour request to the leasing team by email
// @Tags inquiries
// @Accept json
// @Produce json
// @Param inquiry body dto.TourRequest true "Tour request details"
// @Success 200 {object} dto.TourResponse "Request forwarded"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 500 {object} map[string]string "Delivery failed"
// @Router /api/inquiries/tour [post]
func (h *InquiryHandler) RequestTour(c *gin.Context) {
	var req dto.TourRequest
	if validated, exists := c.Get("validated_model"); exists {
		if ptr, ok := validated.(*dto.TourRequest); ok {
			req = *ptr
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := inquiry.TourRequestInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Date:          req.Date,
		PropertyTitle: req.PropertyTitle,
	}
	if req.PropertyID != nil && *req.PropertyID != "" {
		if id, err := uuid.Parse(*req.PropertyID); err == nil {
			input.PropertyID = &id
		}
	}

	if err := h.service.RequestTour(c.Request.Context(), input); err != nil {
		if errors.Is(err, inquiry.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error("Tour request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to forward tour request"})
		return
	}

	c.JSON(http.StatusOK, dto.TourResponse{Success: true})
}
