package model

import "time"

// ExamType is the kind of assessment a grade record belongs to.
type ExamType string

const (
	ExamInternal1  ExamType = "internal1"
	ExamInternal2  ExamType = "internal2"
	ExamMidterm    ExamType = "midterm"
	ExamFinal      ExamType = "final"
	ExamAssignment ExamType = "assignment"
	ExamPractical  ExamType = "practical"
)

// Grade is one student's score for one course and exam type in one academic
// year. Identity is the natural key (student_id, course_id, exam_type,
// academic_year); the letter grade is always derived from marks/max_marks
// server-side, never taken from the caller.
type Grade struct {
	ID           int       `json:"id"`
	StudentID    int       `json:"student_id"`
	CourseID     int       `json:"course_id"`
	ExamType     ExamType  `json:"exam_type"`
	Marks        float64   `json:"marks"`
	MaxMarks     float64   `json:"max_marks"`
	GradeLetter  string    `json:"grade"`
	Semester     int       `json:"semester"`
	AcademicYear string    `json:"academic_year"`
	UploadedBy   int       `json:"uploaded_by"`
	Remarks      string    `json:"remarks,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Denormalized fields, populated on read.
	CourseCode  string `json:"course_code,omitempty"`
	CourseName  string `json:"course_name,omitempty"`
	Credits     int    `json:"credits,omitempty"`
	StudentName string `json:"student_name,omitempty"`
	RollNumber  string `json:"roll_number,omitempty"`
}

// UploadGradesRequest is the payload for bulk grade upload.
type UploadGradesRequest struct {
	CourseID     int               `json:"course_id" binding:"required,min=1"`
	ExamType     ExamType          `json:"exam_type" binding:"required,oneof=internal1 internal2 midterm final assignment practical"`
	AcademicYear string            `json:"academic_year" binding:"required,min=4,max=9"`
	GradesData   []GradeEntryInput `json:"grades_data" binding:"required,min=1,dive"`
}

// GradeEntryInput is one student's entry in a grade upload batch.
type GradeEntryInput struct {
	StudentID int     `json:"student_id" binding:"required,min=1"`
	Marks     float64 `json:"marks" binding:"min=0"`
	MaxMarks  float64 `json:"max_marks" binding:"required,min=1"`
}

// UpdateGradeRequest is the payload for correcting a single grade record.
type UpdateGradeRequest struct {
	Marks    float64 `json:"marks" binding:"min=0"`
	MaxMarks float64 `json:"max_marks" binding:"required,min=1"`
	Remarks  *string `json:"remarks" binding:"omitempty,max=255"`
}

// GradeCredit pairs a letter grade with the course credit weight used in
// GPA computation.
type GradeCredit struct {
	Letter  string
	Credits int
}
