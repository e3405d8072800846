package model

import "time"

// AttendanceStatus is the per-class status of a student.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// AttendanceRecord is one student's status for one course on one date.
// Identity is the natural key (student_id, course_id, date); writes are
// always upserts on that key, never blind inserts.
type AttendanceRecord struct {
	ID        int              `json:"id"`
	StudentID int              `json:"student_id"`
	CourseID  int              `json:"course_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	MarkedBy  int              `json:"marked_by"`
	Remarks   string           `json:"remarks,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	// Denormalized course fields, populated on read.
	CourseCode string `json:"course_code,omitempty"`
	CourseName string `json:"course_name,omitempty"`
}

// MarkAttendanceRequest is the payload for marking a class's attendance.
type MarkAttendanceRequest struct {
	CourseID       int                    `json:"course_id" binding:"required,min=1"`
	Date           string                 `json:"date" binding:"required,datetime=2006-01-02"`
	AttendanceData []AttendanceEntryInput `json:"attendance_data" binding:"required,min=1,dive"`
}

// AttendanceEntryInput is one student's entry in a marking batch.
type AttendanceEntryInput struct {
	StudentID int              `json:"student_id" binding:"required,min=1"`
	Status    AttendanceStatus `json:"status" binding:"required,oneof=present absent late"`
	Remarks   string           `json:"remarks" binding:"omitempty,max=255"`
}

// UpdateAttendanceRequest is the payload for correcting a single record.
type UpdateAttendanceRequest struct {
	Status  AttendanceStatus `json:"status" binding:"required,oneof=present absent late"`
	Remarks *string          `json:"remarks" binding:"omitempty,max=255"`
}

// Per-entry batch outcome actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionError   = "error"
)

// EntryResult is the per-student outcome of a batch operation. A failed
// entry never aborts its siblings.
type EntryResult struct {
	StudentID int    `json:"student_id"`
	Action    string `json:"action"`
	Error     string `json:"error,omitempty"`
}

// CourseAttendanceSummary aggregates one student's records for one course.
type CourseAttendanceSummary struct {
	Course     CourseRef `json:"course"`
	Total      int       `json:"total"`
	Present    int       `json:"present"`
	Absent     int       `json:"absent"`
	Late       int       `json:"late"`
	Percentage float64   `json:"percentage"`
	Status     string    `json:"status"` // PASS or DETAINED against the threshold
}

// StudentAttendanceSummary is one row of a course-wide summary.
type StudentAttendanceSummary struct {
	Student    StudentRef `json:"student"`
	Total      int        `json:"total"`
	Present    int        `json:"present"`
	Absent     int        `json:"absent"`
	Late       int        `json:"late"`
	Percentage float64    `json:"percentage"`
	Status     string     `json:"status"`
}

// StudentRef is a lightweight student reference for embedding.
type StudentRef struct {
	ID         int    `json:"id"`
	RollNumber string `json:"roll_number"`
	Name       string `json:"name"`
}

// CourseAttendanceReport is the full course-wide attendance summary.
type CourseAttendanceReport struct {
	TotalClasses  int                        `json:"total_classes"`
	TotalStudents int                        `json:"total_students"`
	Summary       []StudentAttendanceSummary `json:"summary"`
	Dates         []string                   `json:"dates"`
}
