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

// GradeHandler handles grade upload and reporting endpoints.
type GradeHandler struct {
	gradeService   *service.GradeService
	studentService *service.StudentService
}

// NewGradeHandler creates a new GradeHandler.
func NewGradeHandler(gradeService *service.GradeService, studentService *service.StudentService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService, studentService: studentService}
}

// Upload godoc
// POST /api/v1/grades
// Uploads one exam's grades in a batch, upserting on (student, course, exam
// type, academic year). Assigned faculty or admin.
func (h *GradeHandler) Upload(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.UploadGradesRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	outcome, err := h.gradeService.Upload(c.Request.Context(), claims, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotCourseFaculty):
			response.Fail(c, http.StatusForbidden, response.ErrNotCourseFaculty)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, outcome)
}

// MyGrades godoc
// GET /api/v1/grades/me?semester=&academic_year=
// Returns the authenticated student's grades plus their GPA.
func (h *GradeHandler) MyGrades(c *gin.Context) {
	claims := middleware.GetClaims(c)

	student, err := h.studentService.GetByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	h.respondStudentGrades(c, student.ID)
}

// StudentGrades godoc
// GET /api/v1/grades/students/:id?semester=&academic_year=
// Faculty/admin view of one student's grades.
func (h *GradeHandler) StudentGrades(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if _, err := h.studentService.Get(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	h.respondStudentGrades(c, id)
}

func (h *GradeHandler) respondStudentGrades(c *gin.Context, studentID int) {
	semester := queryInt(c, "semester")

	grades, err := h.gradeService.StudentGrades(c.Request.Context(), studentID, semester, c.Query("academic_year"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	gpa, err := h.gradeService.GPA(c.Request.Context(), studentID, semester)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"grades": grades,
		"gpa":    gpa,
	})
}

// CourseGrades godoc
// GET /api/v1/grades/courses/:id?exam_type=
// All grades of a course, readable by its assigned faculty or an admin.
func (h *GradeHandler) CourseGrades(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	grades, err := h.gradeService.CourseGrades(c.Request.Context(), claims, id, model.ExamType(c.Query("exam_type")))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotCourseFaculty):
			response.Fail(c, http.StatusForbidden, response.ErrNotCourseFaculty)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"grades": grades})
}

// Update godoc
// PUT /api/v1/grades/:id
// Corrects marks on one record; the letter grade is re-derived server-side.
func (h *GradeHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.gradeService.Update(c.Request.Context(), claims, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGradeNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotCourseFaculty):
			response.Fail(c, http.StatusForbidden, response.ErrNotCourseFaculty)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"grade": grade})
}

// Delete godoc
// DELETE /api/v1/grades/:id
func (h *GradeHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.gradeService.Delete(c.Request.Context(), claims, id); err != nil {
		switch {
		case errors.Is(err, service.ErrGradeNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotCourseFaculty):
			response.Fail(c, http.StatusForbidden, response.ErrNotCourseFaculty)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
