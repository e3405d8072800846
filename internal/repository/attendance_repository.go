package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
)

var ErrUnknownStudent = errors.New("referenced student does not exist")

// AttendanceRepository handles the attendance ledger.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Upsert writes one attendance record keyed by (student, course, date).
// The write is a single atomic INSERT ... ON CONFLICT DO UPDATE, so two
// concurrent batches touching the same key cannot both insert; the unique
// constraint serializes them. Returns true when a new row was created,
// false when an existing row was updated in place.
func (r *AttendanceRepository) Upsert(ctx context.Context, rec *model.AttendanceRecord) (bool, error) {
	var created bool
	err := r.pool.QueryRow(ctx,
		`INSERT INTO attendance_records (student_id, course_id, date, status, marked_by, remarks)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (student_id, course_id, date)
		 DO UPDATE SET status = EXCLUDED.status, remarks = EXCLUDED.remarks,
		               marked_by = EXCLUDED.marked_by, updated_at = NOW()
		 RETURNING id, (xmax = 0)`,
		rec.StudentID, rec.CourseID, rec.Date, rec.Status, rec.MarkedBy, rec.Remarks,
	).Scan(&rec.ID, &created)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return false, ErrUnknownStudent
		}
		return false, err
	}
	return created, nil
}

const attendanceColumns = `a.id, a.student_id, a.course_id, a.date, a.status, a.marked_by,
	a.remarks, a.created_at, a.updated_at, c.course_code, c.course_name`

func scanAttendance(row interface{ Scan(...any) error }, a *model.AttendanceRecord) error {
	return row.Scan(&a.ID, &a.StudentID, &a.CourseID, &a.Date, &a.Status, &a.MarkedBy,
		&a.Remarks, &a.CreatedAt, &a.UpdatedAt, &a.CourseCode, &a.CourseName)
}

// GetByID retrieves a single attendance record.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int) (*model.AttendanceRecord, error) {
	a := &model.AttendanceRecord{}
	err := scanAttendance(r.pool.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records a
		 JOIN courses c ON c.id = a.course_id WHERE a.id = $1`, id), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListByStudent returns a student's records, newest first, optionally
// restricted to one course.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID, courseID int) ([]model.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records a
		 JOIN courses c ON c.id = a.course_id WHERE a.student_id = $1`
	args := []interface{}{studentID}
	if courseID > 0 {
		query += ` AND a.course_id = $2`
		args = append(args, courseID)
	}
	query += ` ORDER BY a.date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		var a model.AttendanceRecord
		if err := scanAttendance(rows, &a); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// ListByCourse returns a course's records, newest first, optionally bounded
// to a single date or an inclusive date range.
func (r *AttendanceRepository) ListByCourse(ctx context.Context, courseID int, from, to *time.Time) ([]model.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records a
		 JOIN courses c ON c.id = a.course_id WHERE a.course_id = $1`
	args := []interface{}{courseID}
	argIdx := 2
	if from != nil {
		query += ` AND a.date >= $` + strconv.Itoa(argIdx)
		args = append(args, *from)
		argIdx++
	}
	if to != nil {
		query += ` AND a.date <= $` + strconv.Itoa(argIdx)
		args = append(args, *to)
	}
	query += ` ORDER BY a.date DESC, a.student_id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		var a model.AttendanceRecord
		if err := scanAttendance(rows, &a); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// SummaryByStudent aggregates a student's records per course. Percentage and
// pass/detained status are computed by the service layer.
func (r *AttendanceRepository) SummaryByStudent(ctx context.Context, studentID, courseID int) ([]model.CourseAttendanceSummary, error) {
	query := `SELECT c.id, c.course_code, c.course_name,
		 COUNT(*),
		 COUNT(*) FILTER (WHERE a.status = 'present'),
		 COUNT(*) FILTER (WHERE a.status = 'absent'),
		 COUNT(*) FILTER (WHERE a.status = 'late')
		 FROM attendance_records a
		 JOIN courses c ON c.id = a.course_id
		 WHERE a.student_id = $1`
	args := []interface{}{studentID}
	if courseID > 0 {
		query += ` AND a.course_id = $2`
		args = append(args, courseID)
	}
	query += ` GROUP BY c.id, c.course_code, c.course_name ORDER BY c.course_code`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.CourseAttendanceSummary
	for rows.Next() {
		var s model.CourseAttendanceSummary
		if err := rows.Scan(&s.Course.ID, &s.Course.CourseCode, &s.Course.CourseName,
			&s.Total, &s.Present, &s.Absent, &s.Late); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// SummaryByCourse aggregates per enrolled student. Students with no records
// yet appear with zero counts (LEFT JOIN), so a fresh course reports 0%.
func (r *AttendanceRepository) SummaryByCourse(ctx context.Context, courseID int) ([]model.StudentAttendanceSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.roll_number, u.first_name || ' ' || u.last_name,
		 COUNT(a.id),
		 COUNT(a.id) FILTER (WHERE a.status = 'present'),
		 COUNT(a.id) FILTER (WHERE a.status = 'absent'),
		 COUNT(a.id) FILTER (WHERE a.status = 'late')
		 FROM enrollments e
		 JOIN students s ON s.id = e.student_id
		 JOIN users u ON u.id = s.user_id
		 LEFT JOIN attendance_records a ON a.student_id = s.id AND a.course_id = e.course_id
		 WHERE e.course_id = $1
		 GROUP BY s.id, s.roll_number, u.first_name, u.last_name
		 ORDER BY s.roll_number`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.StudentAttendanceSummary
	for rows.Next() {
		var s model.StudentAttendanceSummary
		if err := rows.Scan(&s.Student.ID, &s.Student.RollNumber, &s.Student.Name,
			&s.Total, &s.Present, &s.Absent, &s.Late); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// DistinctDates returns the sorted distinct class dates held for a course.
func (r *AttendanceRepository) DistinctDates(ctx context.Context, courseID int) ([]time.Time, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT date FROM attendance_records WHERE course_id = $1 ORDER BY date`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// UpdateRecord corrects a single record's status and remarks.
func (r *AttendanceRepository) UpdateRecord(ctx context.Context, id int, status model.AttendanceStatus, remarks *string) error {
	if remarks != nil {
		_, err := r.pool.Exec(ctx,
			`UPDATE attendance_records SET status = $1, remarks = $2, updated_at = NOW() WHERE id = $3`,
			status, *remarks, id)
		return err
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE attendance_records SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

// Delete removes an attendance record by ID.
func (r *AttendanceRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	return err
}
