package model

import "time"

// Faculty is the role profile linked 1:1 to a faculty user account.
// Assigned courses are not stored here; courses.faculty_id is the single
// source of truth and the assignment list is computed on read.
type Faculty struct {
	ID              int        `json:"id"`
	UserID          int        `json:"user_id"`
	EmployeeID      string     `json:"employee_id"`
	Department      string     `json:"department"`
	Designation     string     `json:"designation"`
	Specialization  string     `json:"specialization,omitempty"`
	Qualification   string     `json:"qualification,omitempty"`
	JoiningDate     *time.Time `json:"joining_date,omitempty"`
	ExperienceYears int        `json:"experience_years"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Denormalized account fields, populated on read.
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	IsActive  bool   `json:"is_active,omitempty"`
}

// FacultyWithCourses pairs a faculty profile with their assigned courses.
type FacultyWithCourses struct {
	Faculty
	AssignedCourses []CourseRef `json:"assigned_courses"`
}

// UpdateFacultyRequest is the payload for updating a faculty profile.
type UpdateFacultyRequest struct {
	Department      string `json:"department" binding:"omitempty,oneof='Computer Science' Electronics Mechanical Civil Electrical 'Information Technology'"`
	Designation     string `json:"designation" binding:"omitempty,oneof=Professor 'Associate Professor' 'Assistant Professor' Lecturer 'Lab Assistant'"`
	Specialization  string `json:"specialization" binding:"omitempty,max=100"`
	Qualification   string `json:"qualification" binding:"omitempty,max=100"`
	ExperienceYears int    `json:"experience_years" binding:"omitempty,min=0,max=60"`
}

// FacultyListFilter carries query filters for listing faculty.
type FacultyListFilter struct {
	Department  string
	Designation string
	Search      string
	Page        int
	PerPage     int
}
