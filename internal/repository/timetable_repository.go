package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
)

var ErrSlotConflict = errors.New("an active slot already occupies this day, start time and room")

const timetableColumns = `t.id, t.course_id, t.faculty_id, t.day_of_week,
	to_char(t.start_time, 'HH24:MI'), to_char(t.end_time, 'HH24:MI'), t.room,
	t.department, t.semester, t.class_type, t.is_active, t.created_at, t.updated_at,
	c.course_code, c.course_name, COALESCE(u.first_name || ' ' || u.last_name, '')`

const timetableJoin = ` FROM timetable_slots t
	JOIN courses c ON c.id = t.course_id
	LEFT JOIN faculty f ON f.id = t.faculty_id
	LEFT JOIN users u ON u.id = f.user_id`

// TimetableRepository handles weekly schedule slots.
type TimetableRepository struct {
	pool *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(pool *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{pool: pool}
}

func scanSlot(row interface{ Scan(...any) error }, t *model.TimetableSlot) error {
	return row.Scan(&t.ID, &t.CourseID, &t.FacultyID, &t.DayOfWeek, &t.StartTime, &t.EndTime,
		&t.Room, &t.Department, &t.Semester, &t.ClassType, &t.IsActive,
		&t.CreatedAt, &t.UpdatedAt, &t.CourseCode, &t.CourseName, &t.FacultyName)
}

// GetByID retrieves a slot with its course and faculty names.
func (r *TimetableRepository) GetByID(ctx context.Context, id int) (*model.TimetableSlot, error) {
	t := &model.TimetableSlot{}
	err := scanSlot(r.pool.QueryRow(ctx,
		`SELECT `+timetableColumns+timetableJoin+` WHERE t.id = $1`, id), t)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List returns active slots matching the filter, in weekday then start-time
// order.
func (r *TimetableRepository) List(ctx context.Context, f model.TimetableFilter) ([]model.TimetableSlot, error) {
	where := ` WHERE t.is_active`
	var args []interface{}
	argIdx := 1

	if f.Department != "" {
		where += ` AND t.department = $` + strconv.Itoa(argIdx)
		args = append(args, f.Department)
		argIdx++
	}
	if f.Semester > 0 {
		where += ` AND t.semester = $` + strconv.Itoa(argIdx)
		args = append(args, f.Semester)
		argIdx++
	}
	if f.DayOfWeek != "" {
		where += ` AND t.day_of_week = $` + strconv.Itoa(argIdx)
		args = append(args, f.DayOfWeek)
	}

	query := `SELECT ` + timetableColumns + timetableJoin + where +
		` ORDER BY array_position(ARRAY['monday','tuesday','wednesday','thursday','friday','saturday'], t.day_of_week), t.start_time`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []model.TimetableSlot
	for rows.Next() {
		var t model.TimetableSlot
		if err := scanSlot(rows, &t); err != nil {
			return nil, err
		}
		slots = append(slots, t)
	}
	return slots, rows.Err()
}

// ListByFaculty returns a faculty member's active teaching slots.
func (r *TimetableRepository) ListByFaculty(ctx context.Context, facultyID int) ([]model.TimetableSlot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+timetableColumns+timetableJoin+
			` WHERE t.is_active AND t.faculty_id = $1
			 ORDER BY array_position(ARRAY['monday','tuesday','wednesday','thursday','friday','saturday'], t.day_of_week), t.start_time`,
		facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []model.TimetableSlot
	for rows.Next() {
		var t model.TimetableSlot
		if err := scanSlot(rows, &t); err != nil {
			return nil, err
		}
		slots = append(slots, t)
	}
	return slots, rows.Err()
}

// Create inserts a slot. The partial unique index on active slots turns a
// (day, start, room) collision into ErrSlotConflict; slots that merely
// overlap in time without sharing the exact start minute are allowed.
func (r *TimetableRepository) Create(ctx context.Context, t *model.TimetableSlot) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO timetable_slots (course_id, faculty_id, day_of_week, start_time, end_time,
		                              room, department, semester, class_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, is_active, created_at, updated_at`,
		t.CourseID, t.FacultyID, t.DayOfWeek, t.StartTime, t.EndTime,
		t.Room, t.Department, t.Semester, t.ClassType,
	).Scan(&t.ID, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrSlotConflict
		}
		return err
	}
	return nil
}

// Update rewrites a slot. A collision with another active slot surfaces as
// ErrSlotConflict via the same partial unique index as Create.
func (r *TimetableRepository) Update(ctx context.Context, t *model.TimetableSlot) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE timetable_slots SET course_id = $1, faculty_id = $2, day_of_week = $3,
		 start_time = $4, end_time = $5, room = $6, department = $7, semester = $8,
		 class_type = $9, is_active = $10, updated_at = NOW()
		 WHERE id = $11`,
		t.CourseID, t.FacultyID, t.DayOfWeek, t.StartTime, t.EndTime,
		t.Room, t.Department, t.Semester, t.ClassType, t.IsActive, t.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrSlotConflict
		}
		return err
	}
	return nil
}

// Delete removes a slot by ID.
func (r *TimetableRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM timetable_slots WHERE id = $1`, id)
	return err
}
