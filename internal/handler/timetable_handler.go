package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thakur-sujal/ERP-Portal/internal/middleware"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
	"github.com/thakur-sujal/ERP-Portal/internal/response"
	"github.com/thakur-sujal/ERP-Portal/internal/service"
	"github.com/thakur-sujal/ERP-Portal/internal/validator"
)

// TimetableHandler handles weekly schedule endpoints.
type TimetableHandler struct {
	timetableService *service.TimetableService
}

// NewTimetableHandler creates a new TimetableHandler.
func NewTimetableHandler(timetableService *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableService: timetableService}
}

// List godoc
// GET /api/v1/timetable?department=&semester=&day=
func (h *TimetableHandler) List(c *gin.Context) {
	filter := model.TimetableFilter{
		Department: c.Query("department"),
		Semester:   queryInt(c, "semester"),
		DayOfWeek:  c.Query("day"),
	}

	slots, err := h.timetableService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timetable": slots})
}

// MySchedule godoc
// GET /api/v1/timetable/me
// The authenticated faculty member's teaching schedule.
func (h *TimetableHandler) MySchedule(c *gin.Context) {
	claims := middleware.GetClaims(c)

	slots, err := h.timetableService.ListForFacultyUser(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timetable": slots})
}

// Create godoc
// POST /api/v1/timetable
// Rejects an active slot already holding the same day, start time and room.
func (h *TimetableHandler) Create(c *gin.Context) {
	var req model.CreateTimetableSlotRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	slot, err := h.timetableService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotConflict):
			response.Fail(c, http.StatusConflict, response.ErrTimetableConflict)
		case errors.Is(err, service.ErrCourseNotFound), errors.Is(err, service.ErrFacultyNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"slot": slot})
}

// Update godoc
// PUT /api/v1/timetable/:id
func (h *TimetableHandler) Update(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateTimetableSlotRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	slot, err := h.timetableService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotConflict):
			response.Fail(c, http.StatusConflict, response.ErrTimetableConflict)
		case errors.Is(err, service.ErrSlotNotFound),
			errors.Is(err, service.ErrCourseNotFound),
			errors.Is(err, service.ErrFacultyNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slot": slot})
}

// Delete godoc
// DELETE /api/v1/timetable/:id
func (h *TimetableHandler) Delete(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.timetableService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
