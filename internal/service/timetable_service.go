package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
)

var ErrSlotNotFound = errors.New("timetable slot not found")

// TimetableService handles the weekly schedule.
type TimetableService struct {
	slots   *repository.TimetableRepository
	courses *repository.CourseRepository
	faculty *repository.FacultyRepository
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(
	slots *repository.TimetableRepository,
	courses *repository.CourseRepository,
	faculty *repository.FacultyRepository,
) *TimetableService {
	return &TimetableService{slots: slots, courses: courses, faculty: faculty}
}

// List returns active slots matching the filter in weekday order.
func (s *TimetableService) List(ctx context.Context, f model.TimetableFilter) ([]model.TimetableSlot, error) {
	return s.slots.List(ctx, f)
}

// ListForFacultyUser returns the teaching schedule of the faculty member
// owning a user account.
func (s *TimetableService) ListForFacultyUser(ctx context.Context, userID int) ([]model.TimetableSlot, error) {
	f, err := s.faculty.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}
	return s.slots.ListByFaculty(ctx, f.ID)
}

// Create adds a slot. The course and faculty must exist; an active slot
// already holding the same day, start time and room rejects the create.
func (s *TimetableService) Create(ctx context.Context, req *model.CreateTimetableSlotRequest) (*model.TimetableSlot, error) {
	if _, err := s.courses.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if _, err := s.faculty.GetByID(ctx, req.FacultyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}

	classType := req.ClassType
	if classType == "" {
		classType = model.ClassLecture
	}
	slot := &model.TimetableSlot{
		CourseID:   req.CourseID,
		FacultyID:  req.FacultyID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Room:       req.Room,
		Department: req.Department,
		Semester:   req.Semester,
		ClassType:  classType,
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return s.slots.GetByID(ctx, slot.ID)
}

// Update modifies a slot. Empty fields are left untouched; conflicts with
// another active slot reject the update.
func (s *TimetableService) Update(ctx context.Context, id int, req *model.UpdateTimetableSlotRequest) (*model.TimetableSlot, error) {
	slot, err := s.slots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	if req.CourseID > 0 {
		if _, err := s.courses.GetByID(ctx, req.CourseID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrCourseNotFound
			}
			return nil, err
		}
		slot.CourseID = req.CourseID
	}
	if req.FacultyID > 0 {
		if _, err := s.faculty.GetByID(ctx, req.FacultyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrFacultyNotFound
			}
			return nil, err
		}
		slot.FacultyID = req.FacultyID
	}
	if req.DayOfWeek != "" {
		slot.DayOfWeek = req.DayOfWeek
	}
	if req.StartTime != "" {
		slot.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		slot.EndTime = req.EndTime
	}
	if req.Room != "" {
		slot.Room = req.Room
	}
	if req.Department != "" {
		slot.Department = req.Department
	}
	if req.Semester > 0 {
		slot.Semester = req.Semester
	}
	if req.ClassType != "" {
		slot.ClassType = req.ClassType
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}

	if err := s.slots.Update(ctx, slot); err != nil {
		return nil, err
	}
	return s.slots.GetByID(ctx, id)
}

// Delete removes a slot.
func (s *TimetableService) Delete(ctx context.Context, id int) error {
	return s.slots.Delete(ctx, id)
}
