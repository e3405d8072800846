package model

import "time"

// Student is the role profile linked 1:1 to a student user account.
type Student struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	RollNumber  string     `json:"roll_number"`
	Department  string     `json:"department"`
	Semester    int        `json:"semester"`
	Batch       string     `json:"batch"`
	ParentName  string     `json:"parent_name,omitempty"`
	ParentPhone string     `json:"parent_phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Denormalized account fields, populated on read.
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	IsActive  bool   `json:"is_active,omitempty"`
}

// StudentWithCourses pairs a student with the courses they are enrolled in.
type StudentWithCourses struct {
	Student
	EnrolledCourses []CourseRef `json:"enrolled_courses"`
}

// CourseRef is a lightweight course reference for embedding in other payloads.
type CourseRef struct {
	ID         int    `json:"id"`
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Credits    int    `json:"credits,omitempty"`
}

// UpdateStudentRequest is the payload for updating a student profile.
type UpdateStudentRequest struct {
	Department  string `json:"department" binding:"omitempty,oneof='Computer Science' Electronics Mechanical Civil Electrical 'Information Technology'"`
	Semester    int    `json:"semester" binding:"omitempty,min=1,max=8"`
	Batch       string `json:"batch" binding:"omitempty,max=20"`
	ParentName  string `json:"parent_name" binding:"omitempty,max=100"`
	ParentPhone string `json:"parent_phone" binding:"omitempty,max=20"`
	Address     string `json:"address" binding:"omitempty,max=255"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
}

// EnrollRequest is the payload for enrolling a student into courses.
// Enrollment is additive: ids already enrolled are merged, never duplicated.
type EnrollRequest struct {
	CourseIDs []int `json:"course_ids" binding:"required,min=1,dive,min=1"`
}

// StudentListFilter carries query filters for listing students.
type StudentListFilter struct {
	Department string
	Semester   int
	Batch      string
	Search     string
	Page       int
	PerPage    int
}
