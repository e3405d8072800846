package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thakur-sujal/ERP-Portal/internal/middleware"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/response"
	"github.com/thakur-sujal/ERP-Portal/internal/service"
	"github.com/thakur-sujal/ERP-Portal/internal/validator"
)

// StudentHandler handles student profile and enrollment endpoints.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// List godoc
// GET /api/v1/students?department=&semester=&batch=&search=&page=&per_page=
func (h *StudentHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)
	filter := model.StudentListFilter{
		Department: c.Query("department"),
		Semester:   queryInt(c, "semester"),
		Batch:      c.Query("batch"),
		Search:     c.Query("search"),
		Page:       page,
		PerPage:    perPage,
	}

	students, total, err := h.studentService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"students": students}, paginationOf(page, perPage, total))
}

// Get godoc
// GET /api/v1/students/:id
// Students may only read their own profile; faculty and admin may read any.
func (h *StudentHandler) Get(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	claims := middleware.GetClaims(c)
	if claims.Role == model.RoleStudent && student.UserID != claims.UserID {
		response.Fail(c, http.StatusForbidden, response.ErrNotProfileOwner)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Update godoc
// PUT /api/v1/students/:id
// Admins may update any profile; a student may update their own.
func (h *StudentHandler) Update(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	claims := middleware.GetClaims(c)
	if claims.Role != model.RoleAdmin {
		owner, err := h.studentService.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrStudentNotFound) {
				response.Fail(c, http.StatusNotFound, response.ErrNotFound)
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		if claims.Role != model.RoleStudent || owner.UserID != claims.UserID {
			response.Fail(c, http.StatusForbidden, response.ErrNotProfileOwner)
			return
		}
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Enroll godoc
// POST /api/v1/students/:id/enroll
// Merges course ids into the student's enrollment set; already-enrolled ids
// are kept, never duplicated.
func (h *StudentHandler) Enroll(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.EnrollRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	courses, added, err := h.studentService.Enroll(c.Request.Context(), id, req.CourseIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound), errors.Is(err, service.ErrCourseNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"enrolled_courses": courses,
		"added":            added,
	})
}

// Delete godoc
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
