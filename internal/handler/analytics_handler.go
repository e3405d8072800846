package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thakur-sujal/ERP-Portal/internal/response"
	"github.com/thakur-sujal/ERP-Portal/internal/service"
)

// AnalyticsHandler handles admin dashboard endpoints.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview godoc
// GET /api/v1/analytics/overview
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	stats, err := h.analyticsService.Overview(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Attendance godoc
// GET /api/v1/analytics/attendance
func (h *AnalyticsHandler) Attendance(c *gin.Context) {
	stats, err := h.analyticsService.Attendance(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Grades godoc
// GET /api/v1/analytics/grades
func (h *AnalyticsHandler) Grades(c *gin.Context) {
	stats, err := h.analyticsService.Grades(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
