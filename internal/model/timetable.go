package model

import "time"

// ClassType is the kind of session a timetable slot represents.
type ClassType string

const (
	ClassLecture  ClassType = "lecture"
	ClassLab      ClassType = "lab"
	ClassTutorial ClassType = "tutorial"
)

// Days of the week a slot may occupy, in display order.
var TimetableDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// TimetableSlot is a weekly recurring schedule slot. No two active slots may
// share (day_of_week, start_time, room); overlap beyond exact start-time
// equality is not checked.
type TimetableSlot struct {
	ID         int       `json:"id"`
	CourseID   int       `json:"course_id"`
	FacultyID  int       `json:"faculty_id"`
	DayOfWeek  string    `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Room       string    `json:"room"`
	Department string    `json:"department"`
	Semester   int       `json:"semester"`
	ClassType  ClassType `json:"class_type"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Denormalized fields, populated on read.
	CourseCode  string `json:"course_code,omitempty"`
	CourseName  string `json:"course_name,omitempty"`
	FacultyName string `json:"faculty_name,omitempty"`
}

// CreateTimetableSlotRequest is the payload for creating a slot.
type CreateTimetableSlotRequest struct {
	CourseID   int       `json:"course_id" binding:"required,min=1"`
	FacultyID  int       `json:"faculty_id" binding:"required,min=1"`
	DayOfWeek  string    `json:"day_of_week" binding:"required,oneof=monday tuesday wednesday thursday friday saturday"`
	StartTime  string    `json:"start_time" binding:"required,datetime=15:04"`
	EndTime    string    `json:"end_time" binding:"required,datetime=15:04"`
	Room       string    `json:"room" binding:"required,min=1,max=50"`
	Department string    `json:"department" binding:"required,oneof='Computer Science' Electronics Mechanical Civil Electrical 'Information Technology'"`
	Semester   int       `json:"semester" binding:"required,min=1,max=8"`
	ClassType  ClassType `json:"class_type" binding:"omitempty,oneof=lecture lab tutorial"`
}

// UpdateTimetableSlotRequest is the payload for updating a slot.
type UpdateTimetableSlotRequest struct {
	CourseID   int       `json:"course_id" binding:"omitempty,min=1"`
	FacultyID  int       `json:"faculty_id" binding:"omitempty,min=1"`
	DayOfWeek  string    `json:"day_of_week" binding:"omitempty,oneof=monday tuesday wednesday thursday friday saturday"`
	StartTime  string    `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime    string    `json:"end_time" binding:"omitempty,datetime=15:04"`
	Room       string    `json:"room" binding:"omitempty,min=1,max=50"`
	Department string    `json:"department" binding:"omitempty,oneof='Computer Science' Electronics Mechanical Civil Electrical 'Information Technology'"`
	Semester   int       `json:"semester" binding:"omitempty,min=1,max=8"`
	ClassType  ClassType `json:"class_type" binding:"omitempty,oneof=lecture lab tutorial"`
	IsActive   *bool     `json:"is_active" binding:"omitempty"`
}

// TimetableFilter carries query filters for listing slots.
type TimetableFilter struct {
	Department string
	Semester   int
	DayOfWeek  string
}
