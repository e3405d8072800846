package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
)

var ErrFacultyNotFound = errors.New("faculty not found")

// FacultyService handles faculty profiles and their course assignments.
type FacultyService struct {
	faculty *repository.FacultyRepository
}

// NewFacultyService creates a new FacultyService.
func NewFacultyService(faculty *repository.FacultyRepository) *FacultyService {
	return &FacultyService{faculty: faculty}
}

// Get retrieves a faculty member with their assigned courses computed from
// the course catalog.
func (s *FacultyService) Get(ctx context.Context, id int) (*model.FacultyWithCourses, error) {
	f, err := s.faculty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}
	courses, err := s.faculty.AssignedCourses(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.FacultyWithCourses{Faculty: *f, AssignedCourses: courses}, nil
}

// GetByUserID retrieves the faculty profile owned by a user account.
func (s *FacultyService) GetByUserID(ctx context.Context, userID int) (*model.Faculty, error) {
	f, err := s.faculty.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}
	return f, nil
}

// List retrieves faculty matching the filter.
func (s *FacultyService) List(ctx context.Context, f model.FacultyListFilter) ([]model.Faculty, int, error) {
	return s.faculty.ListPaginated(ctx, f)
}

// Update modifies a faculty profile. Empty fields are left untouched.
func (s *FacultyService) Update(ctx context.Context, id int, req *model.UpdateFacultyRequest) (*model.Faculty, error) {
	f, err := s.faculty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}

	if req.Department != "" {
		f.Department = req.Department
	}
	if req.Designation != "" {
		f.Designation = req.Designation
	}
	if req.Specialization != "" {
		f.Specialization = req.Specialization
	}
	if req.Qualification != "" {
		f.Qualification = req.Qualification
	}
	if req.ExperienceYears > 0 {
		f.ExperienceYears = req.ExperienceYears
	}

	if err := s.faculty.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes a faculty profile. Courses assigned to them fall back to
// unassigned via ON DELETE SET NULL.
func (s *FacultyService) Delete(ctx context.Context, id int) error {
	return s.faculty.Delete(ctx, id)
}
