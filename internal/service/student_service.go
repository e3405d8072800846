package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
)

var ErrStudentNotFound = errors.New("student not found")

// StudentService handles student profiles and enrollment.
type StudentService struct {
	students *repository.StudentRepository
	courses  *repository.CourseRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(students *repository.StudentRepository, courses *repository.CourseRepository) *StudentService {
	return &StudentService{students: students, courses: courses}
}

// Get retrieves a student with their enrolled courses.
func (s *StudentService) Get(ctx context.Context, id int) (*model.StudentWithCourses, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	courses, err := s.students.EnrolledCourses(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.StudentWithCourses{Student: *student, EnrolledCourses: courses}, nil
}

// GetByUserID retrieves the student profile owned by a user account.
func (s *StudentService) GetByUserID(ctx context.Context, userID int) (*model.Student, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// List retrieves students matching the filter.
func (s *StudentService) List(ctx context.Context, f model.StudentListFilter) ([]model.Student, int, error) {
	return s.students.ListPaginated(ctx, f)
}

// Update modifies a student profile. Empty fields are left untouched.
func (s *StudentService) Update(ctx context.Context, id int, req *model.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if req.Department != "" {
		student.Department = req.Department
	}
	if req.Semester > 0 {
		student.Semester = req.Semester
	}
	if req.Batch != "" {
		student.Batch = req.Batch
	}
	if req.ParentName != "" {
		student.ParentName = req.ParentName
	}
	if req.ParentPhone != "" {
		student.ParentPhone = req.ParentPhone
	}
	if req.Address != "" {
		student.Address = req.Address
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err == nil {
			student.DateOfBirth = &dob
		}
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Enroll merges course ids into a student's enrollment set. Unknown course
// ids fail the whole call; already-enrolled ids are silently kept. Returns
// the refreshed enrollment list and how many were newly added.
func (s *StudentService) Enroll(ctx context.Context, studentID int, courseIDs []int) ([]model.CourseRef, int, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrStudentNotFound
		}
		return nil, 0, err
	}
	for _, courseID := range courseIDs {
		if _, err := s.courses.GetByID(ctx, courseID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, 0, ErrCourseNotFound
			}
			return nil, 0, err
		}
	}

	added, err := s.students.Enroll(ctx, studentID, courseIDs)
	if err != nil {
		return nil, 0, err
	}
	courses, err := s.students.EnrolledCourses(ctx, studentID)
	if err != nil {
		return nil, 0, err
	}
	return courses, added, nil
}

// Delete removes a student profile.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.students.Delete(ctx, id)
}
