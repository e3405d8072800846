package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/response"
	"github.com/thakur-sujal/ERP-Portal/internal/service"
	"github.com/thakur-sujal/ERP-Portal/internal/validator"
)

// FacultyHandler handles faculty profile endpoints.
type FacultyHandler struct {
	facultyService *service.FacultyService
}

// NewFacultyHandler creates a new FacultyHandler.
func NewFacultyHandler(facultyService *service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultyService: facultyService}
}

// List godoc
// GET /api/v1/faculty?department=&designation=&search=&page=&per_page=
func (h *FacultyHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)
	filter := model.FacultyListFilter{
		Department:  c.Query("department"),
		Designation: c.Query("designation"),
		Search:      c.Query("search"),
		Page:        page,
		PerPage:     perPage,
	}

	faculty, total, err := h.facultyService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"faculty": faculty}, paginationOf(page, perPage, total))
}

// Get godoc
// GET /api/v1/faculty/:id
// The assignment list comes from the course catalog, not from the profile.
func (h *FacultyHandler) Get(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	faculty, err := h.facultyService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

// Update godoc
// PUT /api/v1/faculty/:id
func (h *FacultyHandler) Update(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateFacultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	faculty, err := h.facultyService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

// Delete godoc
// DELETE /api/v1/faculty/:id
func (h *FacultyHandler) Delete(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.facultyService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
