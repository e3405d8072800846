package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseService handles the course catalog and study materials.
type CourseService struct {
	courses  *repository.CourseRepository
	faculty  *repository.FacultyRepository
	students *repository.StudentRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(
	courses *repository.CourseRepository,
	faculty *repository.FacultyRepository,
	students *repository.StudentRepository,
) *CourseService {
	return &CourseService{courses: courses, faculty: faculty, students: students}
}

// Get retrieves a course by ID.
func (s *CourseService) Get(ctx context.Context, id int) (*model.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// List retrieves active courses matching the filter.
func (s *CourseService) List(ctx context.Context, f model.CourseListFilter) ([]model.Course, int, error) {
	return s.courses.ListPaginated(ctx, f)
}

// Create adds a course to the catalog. A faculty id, when given, must exist.
func (s *CourseService) Create(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	if req.FacultyID != nil {
		if _, err := s.faculty.GetByID(ctx, *req.FacultyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrFacultyNotFound
			}
			return nil, err
		}
	}

	course := &model.Course{
		CourseCode: req.CourseCode,
		CourseName: req.CourseName,
		Department: req.Department,
		Semester:   req.Semester,
		Credits:    req.Credits,
		FacultyID:  req.FacultyID,
		Syllabus:   req.Syllabus,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update modifies a course. Setting faculty_id reassigns the course; that is
// the only place assignments live.
func (s *CourseService) Update(ctx context.Context, id int, req *model.UpdateCourseRequest) (*model.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if req.CourseName != "" {
		course.CourseName = req.CourseName
	}
	if req.Department != "" {
		course.Department = req.Department
	}
	if req.Semester > 0 {
		course.Semester = req.Semester
	}
	if req.Credits > 0 {
		course.Credits = req.Credits
	}
	if req.FacultyID != nil {
		if _, err := s.faculty.GetByID(ctx, *req.FacultyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrFacultyNotFound
			}
			return nil, err
		}
		course.FacultyID = req.FacultyID
	}
	if req.Syllabus != nil {
		course.Syllabus = *req.Syllabus
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return s.courses.GetByID(ctx, id)
}

// Delete removes a course and all its dependent rows.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.courses.Delete(ctx, id)
}

// AddMaterial attaches a study material to a course.
func (s *CourseService) AddMaterial(ctx context.Context, courseID int, req *model.AddMaterialRequest) (*model.CourseMaterial, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	m := &model.CourseMaterial{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
	}
	if err := s.courses.AddMaterial(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Roster returns the students enrolled in a course, in roll-number order.
func (s *CourseService) Roster(ctx context.Context, courseID int) ([]model.Student, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return s.students.ListByCourse(ctx, courseID)
}

// ListMaterials returns a course's materials in upload order.
func (s *CourseService) ListMaterials(ctx context.Context, courseID int) ([]model.CourseMaterial, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return s.courses.ListMaterials(ctx, courseID)
}
