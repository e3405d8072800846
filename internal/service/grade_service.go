package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
)

var ErrGradeNotFound = errors.New("grade record not found")

// UploadOutcome is the result of a grade upload batch.
type UploadOutcome struct {
	Results []model.EntryResult `json:"results"`
	Created int                 `json:"created"`
	Updated int                 `json:"updated"`
	Failed  int                 `json:"failed"`
}

// GPAResult is a student's computed grade point average.
type GPAResult struct {
	GPA          float64 `json:"gpa"`
	TotalCourses int     `json:"total_courses"`
	Semester     int     `json:"semester,omitempty"`
}

// GradeService handles the grade ledger and GPA derivation.
type GradeService struct {
	grades  *repository.GradeRepository
	courses *repository.CourseRepository
	faculty *repository.FacultyRepository
	log     zerolog.Logger
}

// NewGradeService creates a new GradeService.
func NewGradeService(
	grades *repository.GradeRepository,
	courses *repository.CourseRepository,
	faculty *repository.FacultyRepository,
	log zerolog.Logger,
) *GradeService {
	return &GradeService{
		grades:  grades,
		courses: courses,
		faculty: faculty,
		log:     log.With().Str("component", "grade_service").Logger(),
	}
}

// requireGradeAccess resolves the course and checks that the principal may
// write its grades: the assigned faculty member, or an admin. Grades differ
// from attendance here since marks corrections routinely go through the
// examination office.
func (s *GradeService) requireGradeAccess(ctx context.Context, claims *Claims, courseID int) (*model.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if claims.Role == model.RoleAdmin {
		return course, nil
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

// Upload upserts one grade per student for a course, exam type and academic
// year. The letter is derived server-side from marks; whatever letter a
// client might claim is ignored. Unknown students are skipped and reported,
// never aborting the batch.
func (s *GradeService) Upload(ctx context.Context, claims *Claims, req *model.UploadGradesRequest) (*UploadOutcome, error) {
	course, err := s.requireGradeAccess(ctx, claims, req.CourseID)
	if err != nil {
		return nil, err
	}

	outcome := &UploadOutcome{Results: make([]model.EntryResult, 0, len(req.GradesData))}
	for _, entry := range req.GradesData {
		percentage := entry.Marks / entry.MaxMarks * 100
		grade := &model.Grade{
			StudentID:    entry.StudentID,
			CourseID:     req.CourseID,
			ExamType:     req.ExamType,
			Marks:        entry.Marks,
			MaxMarks:     entry.MaxMarks,
			GradeLetter:  LetterGrade(percentage),
			Semester:     course.Semester,
			AcademicYear: req.AcademicYear,
			UploadedBy:   claims.UserID,
		}
		created, err := s.grades.Upsert(ctx, grade)
		if err != nil {
			outcome.Failed++
			msg := "internal error"
			if errors.Is(err, repository.ErrUnknownStudent) {
				msg = "student not found"
				s.log.Warn().Int("student_id", entry.StudentID).Int("course_id", req.CourseID).
					Msg("Skipping grade for unknown student")
			} else {
				s.log.Error().Err(err).Int("student_id", entry.StudentID).Msg("Grade upsert failed")
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
	return outcome, nil
}

// StudentGrades returns a student's grades with optional semester and
// academic year filters.
func (s *GradeService) StudentGrades(ctx context.Context, studentID, semester int, academicYear string) ([]model.Grade, error) {
	return s.grades.ListByStudent(ctx, studentID, semester, academicYear)
}

// GPA computes a student's credit-weighted grade point average over final
// exam grades. GPA is a per-semester figure: without a semester the result
// stays 0 rather than silently averaging across semesters. A student with no
// final grades yet also gets 0.
func (s *GradeService) GPA(ctx context.Context, studentID, semester int) (*GPAResult, error) {
	if semester < 1 {
		return &GPAResult{}, nil
	}
	pairs, err := s.grades.FinalGradeCredits(ctx, studentID, semester)
	if err != nil {
		return nil, err
	}
	return &GPAResult{
		GPA:          ComputeGPA(pairs),
		TotalCourses: len(pairs),
		Semester:     semester,
	}, nil
}

// CourseGrades returns a course's grades, optionally for one exam type.
// Readable by the assigned faculty or an admin.
func (s *GradeService) CourseGrades(ctx context.Context, claims *Claims, courseID int, examType model.ExamType) ([]model.Grade, error) {
	if _, err := s.requireGradeAccess(ctx, claims, courseID); err != nil {
		return nil, err
	}
	return s.grades.ListByCourse(ctx, courseID, examType)
}

// Update corrects a single grade's marks; the letter is re-derived.
func (s *GradeService) Update(ctx context.Context, claims *Claims, id int, req *model.UpdateGradeRequest) (*model.Grade, error) {
	grade, err := s.grades.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGradeNotFound
		}
		return nil, err
	}
	if _, err := s.requireGradeAccess(ctx, claims, grade.CourseID); err != nil {
		return nil, err
	}

	grade.Marks = req.Marks
	grade.MaxMarks = req.MaxMarks
	grade.GradeLetter = LetterGrade(req.Marks / req.MaxMarks * 100)
	if req.Remarks != nil {
		grade.Remarks = *req.Remarks
	}

	if err := s.grades.Update(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// Delete removes a grade record.
func (s *GradeService) Delete(ctx context.Context, claims *Claims, id int) error {
	grade, err := s.grades.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrGradeNotFound
		}
		return err
	}
	if _, err := s.requireGradeAccess(ctx, claims, grade.CourseID); err != nil {
		return err
	}
	return s.grades.Delete(ctx, id)
}
