package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
)

// GradeRepository handles the grade ledger.
type GradeRepository struct {
	pool *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(pool *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{pool: pool}
}

// Upsert writes one grade keyed by (student, course, exam type, academic
// year). Re-uploading the same exam overwrites marks, max marks, letter and
// uploader atomically instead of creating a duplicate row. Returns true when
// a new row was created.
func (r *GradeRepository) Upsert(ctx context.Context, g *model.Grade) (bool, error) {
	var created bool
	err := r.pool.QueryRow(ctx,
		`INSERT INTO grades (student_id, course_id, exam_type, marks, max_marks, grade_letter,
		                     semester, academic_year, uploaded_by, remarks)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (student_id, course_id, exam_type, academic_year)
		 DO UPDATE SET marks = EXCLUDED.marks, max_marks = EXCLUDED.max_marks,
		               grade_letter = EXCLUDED.grade_letter, semester = EXCLUDED.semester,
		               uploaded_by = EXCLUDED.uploaded_by, remarks = EXCLUDED.remarks,
		               updated_at = NOW()
		 RETURNING id, (xmax = 0)`,
		g.StudentID, g.CourseID, g.ExamType, g.Marks, g.MaxMarks, g.GradeLetter,
		g.Semester, g.AcademicYear, g.UploadedBy, g.Remarks,
	).Scan(&g.ID, &created)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return false, ErrUnknownStudent
		}
		return false, err
	}
	return created, nil
}

const gradeColumns = `g.id, g.student_id, g.course_id, g.exam_type, g.marks, g.max_marks,
	g.grade_letter, g.semester, g.academic_year, g.uploaded_by, g.remarks,
	g.created_at, g.updated_at, c.course_code, c.course_name, c.credits`

func scanGrade(row interface{ Scan(...any) error }, g *model.Grade) error {
	return row.Scan(&g.ID, &g.StudentID, &g.CourseID, &g.ExamType, &g.Marks, &g.MaxMarks,
		&g.GradeLetter, &g.Semester, &g.AcademicYear, &g.UploadedBy, &g.Remarks,
		&g.CreatedAt, &g.UpdatedAt, &g.CourseCode, &g.CourseName, &g.Credits)
}

// GetByID retrieves a single grade record.
func (r *GradeRepository) GetByID(ctx context.Context, id int) (*model.Grade, error) {
	g := &model.Grade{}
	err := scanGrade(r.pool.QueryRow(ctx,
		`SELECT `+gradeColumns+` FROM grades g
		 JOIN courses c ON c.id = g.course_id WHERE g.id = $1`, id), g)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ListByStudent returns a student's grades with optional semester and
// academic year filters, newest first.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID, semester int, academicYear string) ([]model.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades g
		 JOIN courses c ON c.id = g.course_id WHERE g.student_id = $1`
	args := []interface{}{studentID}
	argIdx := 2
	if semester > 0 {
		query += ` AND g.semester = $` + strconv.Itoa(argIdx)
		args = append(args, semester)
		argIdx++
	}
	if academicYear != "" {
		query += ` AND g.academic_year = $` + strconv.Itoa(argIdx)
		args = append(args, academicYear)
	}
	query += ` ORDER BY g.semester DESC, c.course_code, g.exam_type`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []model.Grade
	for rows.Next() {
		var g model.Grade
		if err := scanGrade(rows, &g); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// ListByCourse returns a course's grades with student identity attached,
// optionally restricted to one exam type.
func (r *GradeRepository) ListByCourse(ctx context.Context, courseID int, examType model.ExamType) ([]model.Grade, error) {
	query := `SELECT ` + gradeColumns + `, u.first_name || ' ' || u.last_name, s.roll_number
		 FROM grades g
		 JOIN courses c ON c.id = g.course_id
		 JOIN students s ON s.id = g.student_id
		 JOIN users u ON u.id = s.user_id
		 WHERE g.course_id = $1`
	args := []interface{}{courseID}
	if examType != "" {
		query += ` AND g.exam_type = $2`
		args = append(args, examType)
	}
	query += ` ORDER BY s.roll_number, g.exam_type`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []model.Grade
	for rows.Next() {
		var g model.Grade
		if err := rows.Scan(&g.ID, &g.StudentID, &g.CourseID, &g.ExamType, &g.Marks, &g.MaxMarks,
			&g.GradeLetter, &g.Semester, &g.AcademicYear, &g.UploadedBy, &g.Remarks,
			&g.CreatedAt, &g.UpdatedAt, &g.CourseCode, &g.CourseName, &g.Credits,
			&g.StudentName, &g.RollNumber); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// FinalGradeCredits returns the letter/credit pairs that feed GPA: final exam
// grades only, with missing course credits defaulting to 3.
func (r *GradeRepository) FinalGradeCredits(ctx context.Context, studentID, semester int) ([]model.GradeCredit, error) {
	query := `SELECT g.grade_letter, COALESCE(NULLIF(c.credits, 0), 3)
		 FROM grades g
		 LEFT JOIN courses c ON c.id = g.course_id
		 WHERE g.student_id = $1 AND g.exam_type = 'final'`
	args := []interface{}{studentID}
	if semester > 0 {
		query += ` AND g.semester = $2`
		args = append(args, semester)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []model.GradeCredit
	for rows.Next() {
		var p model.GradeCredit
		if err := rows.Scan(&p.Letter, &p.Credits); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}

// Update corrects a single grade's marks and derived letter.
func (r *GradeRepository) Update(ctx context.Context, g *model.Grade) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE grades SET marks = $1, max_marks = $2, grade_letter = $3, remarks = $4, updated_at = NOW()
		 WHERE id = $5`,
		g.Marks, g.MaxMarks, g.GradeLetter, g.Remarks, g.ID,
	)
	return err
}

// Delete removes a grade record by ID.
func (r *GradeRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	return err
}
