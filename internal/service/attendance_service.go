package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/thakur-sujal/ERP-Portal/internal/config"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
)

// Common attendance errors.
var (
	ErrNotCourseFaculty   = errors.New("only the faculty assigned to this course may modify its attendance")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidDate        = errors.New("invalid date")
)

// CourseReportTTL bounds how stale a cached course attendance report may be.
const CourseReportTTL = 60 * time.Second

// MarkOutcome is the result of an attendance marking batch.
type MarkOutcome struct {
	Results          []model.EntryResult `json:"results"`
	Created          int                 `json:"created"`
	Updated          int                 `json:"updated"`
	Failed           int                 `json:"failed"`
	TotalClassesHeld int                 `json:"total_classes_held"`
}

// AttendanceService handles the attendance ledger and its derived reports.
type AttendanceService struct {
	cfg        *config.Config
	attendance *repository.AttendanceRepository
	courses    *repository.CourseRepository
	faculty    *repository.FacultyRepository
	rdb        *redis.Client
	log        zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(
	cfg *config.Config,
	attendance *repository.AttendanceRepository,
	courses *repository.CourseRepository,
	faculty *repository.FacultyRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		cfg:        cfg,
		attendance: attendance,
		courses:    courses,
		faculty:    faculty,
		rdb:        rdb,
		log:        log.With().Str("component", "attendance_service").Logger(),
	}
}

// requireCourseFaculty resolves the course and checks that the principal is
// the faculty member assigned to it. Deliberately no admin bypass: the ledger
// is only ever written by the teacher standing in the room.
func (s *AttendanceService) requireCourseFaculty(ctx context.Context, claims *Claims, courseID int) (*model.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if claims.Role != model.RoleFaculty {
		return nil, ErrNotCourseFaculty
	}
	f, err := s.faculty.GetByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotCourseFaculty
		}
		return nil, err
	}
	if course.FacultyID == nil || *course.FacultyID != f.ID {
		return nil, ErrNotCourseFaculty
	}
	return course, nil
}

// Mark upserts one attendance entry per student for a course and date. Each
// entry succeeds or fails on its own; a bad student id never aborts the rest
// of the batch. The course's derived class count is recomputed afterwards.
func (s *AttendanceService) Mark(ctx context.Context, claims *Claims, req *model.MarkAttendanceRequest) (*MarkOutcome, error) {
	if _, err := s.requireCourseFaculty(ctx, claims, req.CourseID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	outcome := &MarkOutcome{Results: make([]model.EntryResult, 0, len(req.AttendanceData))}
	for _, entry := range req.AttendanceData {
		rec := &model.AttendanceRecord{
			StudentID: entry.StudentID,
			CourseID:  req.CourseID,
			Date:      date,
			Status:    entry.Status,
			MarkedBy:  claims.UserID,
			Remarks:   entry.Remarks,
		}
		created, err := s.attendance.Upsert(ctx, rec)
		if err != nil {
			outcome.Failed++
			msg := "internal error"
			if errors.Is(err, repository.ErrUnknownStudent) {
				msg = "student not found"
			} else {
				s.log.Error().Err(err).Int("student_id", entry.StudentID).Msg("Attendance upsert failed")
			}
			outcome.Results = append(outcome.Results, model.EntryResult{
				StudentID: entry.StudentID, Action: model.ActionError, Error: msg,
			})
			continue
		}

		action := model.ActionUpdated
		if created {
			action = model.ActionCreated
			outcome.Created++
		} else {
			outcome.Updated++
		}
		outcome.Results = append(outcome.Results, model.EntryResult{StudentID: entry.StudentID, Action: action})
	}

	total, err := s.courses.RecountTotalClasses(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	outcome.TotalClassesHeld = total

	s.invalidateCourseReport(ctx, req.CourseID)
	return outcome, nil
}

// StudentRecords returns a student's raw records, optionally for one course.
func (s *AttendanceService) StudentRecords(ctx context.Context, studentID, courseID int) ([]model.AttendanceRecord, error) {
	return s.attendance.ListByStudent(ctx, studentID, courseID)
}

// StudentSummary returns a student's per-course aggregates with percentage
// and pass/detained status derived against the configured threshold.
func (s *AttendanceService) StudentSummary(ctx context.Context, studentID, courseID int) ([]model.CourseAttendanceSummary, error) {
	summaries, err := s.attendance.SummaryByStudent(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		summaries[i].Percentage = AttendancePercentage(summaries[i].Present, summaries[i].Late, summaries[i].Total)
		summaries[i].Status = AttendanceStatusLabel(summaries[i].Percentage, s.cfg.AttendanceThreshold)
	}
	return summaries, nil
}

// CourseRecords returns a course's raw records, optionally bounded by a date
// range. Readable by an admin or the assigned faculty.
func (s *AttendanceService) CourseRecords(ctx context.Context, claims *Claims, courseID int, from, to *time.Time) ([]model.AttendanceRecord, error) {
	if claims.Role != model.RoleAdmin {
		if _, err := s.requireCourseFaculty(ctx, claims, courseID); err != nil {
			return nil, err
		}
	} else if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return s.attendance.ListByCourse(ctx, courseID, from, to)
}

// CourseReport builds the course-wide summary: one row per enrolled student
// plus the distinct class dates held. Cached briefly in Redis because the
// underlying aggregate touches every ledger row of the course.
func (s *AttendanceService) CourseReport(ctx context.Context, claims *Claims, courseID int) (*model.CourseAttendanceReport, error) {
	if claims.Role != model.RoleAdmin {
		if _, err := s.requireCourseFaculty(ctx, claims, courseID); err != nil {
			return nil, err
		}
	} else if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	cacheKey := config.CacheKey.CourseAttendanceSummaryKey(courseID)
	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		report := &model.CourseAttendanceReport{}
		if err := json.Unmarshal([]byte(cached), report); err == nil {
			return report, nil
		}
	}

	summaries, err := s.attendance.SummaryByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		summaries[i].Percentage = AttendancePercentage(summaries[i].Present, summaries[i].Late, summaries[i].Total)
		summaries[i].Status = AttendanceStatusLabel(summaries[i].Percentage, s.cfg.AttendanceThreshold)
	}

	dates, err := s.attendance.DistinctDates(ctx, courseID)
	if err != nil {
		return nil, err
	}
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format("2006-01-02")
	}

	report := &model.CourseAttendanceReport{
		TotalClasses:  len(dates),
		TotalStudents: len(summaries),
		Summary:       summaries,
		Dates:         formatted,
	}

	if payload, err := json.Marshal(report); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, CourseReportTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Course report cache write failed")
		}
	}
	return report, nil
}

// UpdateRecord corrects a single record. Same ownership rule as Mark.
func (s *AttendanceService) UpdateRecord(ctx context.Context, claims *Claims, id int, req *model.UpdateAttendanceRequest) (*model.AttendanceRecord, error) {
	rec, err := s.attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	if _, err := s.requireCourseFaculty(ctx, claims, rec.CourseID); err != nil {
		return nil, err
	}

	if err := s.attendance.UpdateRecord(ctx, id, req.Status, req.Remarks); err != nil {
		return nil, err
	}
	s.invalidateCourseReport(ctx, rec.CourseID)
	return s.attendance.GetByID(ctx, id)
}

// DeleteRecord removes a record and recomputes the course class count, since
// dropping the last record of a date shrinks it.
func (s *AttendanceService) DeleteRecord(ctx context.Context, claims *Claims, id int) error {
	rec, err := s.attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAttendanceNotFound
		}
		return err
	}
	if _, err := s.requireCourseFaculty(ctx, claims, rec.CourseID); err != nil {
		return err
	}

	if err := s.attendance.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.courses.RecountTotalClasses(ctx, rec.CourseID); err != nil {
		return err
	}
	s.invalidateCourseReport(ctx, rec.CourseID)
	return nil
}

func (s *AttendanceService) invalidateCourseReport(ctx context.Context, courseID int) {
	if err := s.rdb.Del(ctx, config.CacheKey.CourseAttendanceSummaryKey(courseID)).Err(); err != nil {
		s.log.Warn().Err(err).Int("course_id", courseID).Msg("Course report cache invalidation failed")
	}
}
