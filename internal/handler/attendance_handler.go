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

// AttendanceHandler handles attendance marking and reporting endpoints.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	studentService    *service.StudentService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService, studentService *service.StudentService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService, studentService: studentService}
}

// Mark godoc
// POST /api/v1/attendance
// Marks a class's attendance in one batch: one upsert per student keyed by
// (student, course, date). Only the assigned faculty may mark.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.MarkAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	outcome, err := h.attendanceService.Mark(c.Request.Context(), claims, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotCourseFaculty):
			response.Fail(c, http.StatusForbidden, response.ErrNotCourseFaculty)
		case errors.Is(err, service.ErrInvalidDate):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, outcome)
}

// MyAttendance godoc
// GET /api/v1/attendance/me?course_id=
// Returns the authenticated student's records and per-course summary.
func (h *AttendanceHandler) MyAttendance(c *gin.Context) {
	claims := middleware.GetClaims(c)

	student, err := h.studentService.GetByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	h.respondStudentAttendance(c, student.ID)
}

// StudentAttendance godoc
// GET /api/v1/attendance/students/:id?course_id=
// Faculty/admin view of one student's attendance.
func (h *AttendanceHandler) StudentAttendance(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if _, err := h.studentService.Get(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	h.respondStudentAttendance(c, id)
}

func (h *AttendanceHandler) respondStudentAttendance(c *gin.Context, studentID int) {
	courseID := queryInt(c, "course_id")

	records, err := h.attendanceService.StudentRecords(c.Request.Context(), studentID, courseID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	summary, err := h.attendanceService.StudentSummary(c.Request.Context(), studentID, courseID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"records": records,
		"summary": summary,
	})
}

// CourseRecords godoc
// GET /api/v1/attendance/courses/:id?from=&to=
// Raw records of a course, optionally bounded by a date range.
func (h *AttendanceHandler) CourseRecords(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	from, ok := queryDate(c, "from")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
		return
	}

	records, err := h.attendanceService.CourseRecords(c.Request.Context(), claims, id, from, to)
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

	response.Success(c, http.StatusOK, gin.H{"records": records})
}

// CourseReport godoc
// GET /api/v1/attendance/courses/:id/report
// Course-wide summary with one row per enrolled student, including students
// with no records yet.
func (h *AttendanceHandler) CourseReport(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	report, err := h.attendanceService.CourseReport(c.Request.Context(), claims, id)
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

	response.Success(c, http.StatusOK, report)
}

// Update godoc
// PUT /api/v1/attendance/:id
// Corrects a single record's status. Same ownership rule as marking.
func (h *AttendanceHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record, err := h.attendanceService.UpdateRecord(c.Request.Context(), claims, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttendanceNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotCourseFaculty):
			response.Fail(c, http.StatusForbidden, response.ErrNotCourseFaculty)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"record": record})
}

// Delete godoc
// DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id := paramID(c, "id")
	if id == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.attendanceService.DeleteRecord(c.Request.Context(), claims, id); err != nil {
		switch {
		case errors.Is(err, service.ErrAttendanceNotFound):
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
