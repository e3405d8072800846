package model

import "time"

// Course represents a course offering in the catalog.
type Course struct {
	ID         int    `json:"id"`
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Department string `json:"department"`
	Semester   int    `json:"semester"`
	Credits    int    `json:"credits"`
	FacultyID  *int   `json:"faculty_id,omitempty"`
	Syllabus   string `json:"syllabus,omitempty"`
	// TotalClassesHeld is derived: the count of distinct dates present in the
	// attendance ledger for this course. Recomputed after every marking batch.
	TotalClassesHeld int       `json:"total_classes_held"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Denormalized faculty name, populated on read when assigned.
	FacultyName string `json:"faculty_name,omitempty"`
}

// CourseMaterial is an ordered study material attached to a course.
type CourseMaterial struct {
	ID          int       `json:"id"`
	CourseID    int       `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileURL     string    `json:"file_url"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	CourseCode string `json:"course_code" binding:"required,min=2,max=20"`
	CourseName string `json:"course_name" binding:"required,min=2,max=150"`
	Department string `json:"department" binding:"required,oneof='Computer Science' Electronics Mechanical Civil Electrical 'Information Technology'"`
	Semester   int    `json:"semester" binding:"required,min=1,max=8"`
	Credits    int    `json:"credits" binding:"required,min=1,max=6"`
	FacultyID  *int   `json:"faculty_id" binding:"omitempty,min=1"`
	Syllabus   string `json:"syllabus" binding:"omitempty"`
}

// UpdateCourseRequest is the payload for updating a course.
type UpdateCourseRequest struct {
	CourseName string `json:"course_name" binding:"omitempty,min=2,max=150"`
	Department string `json:"department" binding:"omitempty,oneof='Computer Science' Electronics Mechanical Civil Electrical 'Information Technology'"`
	Semester   int    `json:"semester" binding:"omitempty,min=1,max=8"`
	Credits    int    `json:"credits" binding:"omitempty,min=1,max=6"`
	FacultyID  *int   `json:"faculty_id" binding:"omitempty,min=1"`
	Syllabus   *string `json:"syllabus" binding:"omitempty"`
	IsActive   *bool  `json:"is_active" binding:"omitempty"`
}

// AddMaterialRequest is the payload for attaching a material to a course.
type AddMaterialRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=150"`
	Description string `json:"description" binding:"omitempty,max=500"`
	FileURL     string `json:"file_url" binding:"required,url"`
}

// CourseListFilter carries query filters for listing courses.
type CourseListFilter struct {
	Department string
	Semester   int
	Search     string
	Page       int
	PerPage    int
}
