package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
)

var ErrDuplicateCourseCode = errors.New("course with this code already exists")

const courseColumns = `c.id, c.course_code, c.course_name, c.department, c.semester, c.credits,
	c.faculty_id, c.syllabus, c.total_classes_held, c.is_active, c.created_at, c.updated_at,
	COALESCE(u.first_name || ' ' || u.last_name, '')`

const courseJoin = ` FROM courses c
	LEFT JOIN faculty f ON f.id = c.faculty_id
	LEFT JOIN users u ON u.id = f.user_id`

// CourseRepository handles course catalog data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func scanCourse(row interface{ Scan(...any) error }, c *model.Course) error {
	return row.Scan(&c.ID, &c.CourseCode, &c.CourseName, &c.Department, &c.Semester, &c.Credits,
		&c.FacultyID, &c.Syllabus, &c.TotalClassesHeld, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		&c.FacultyName)
}

// GetByID retrieves a course with its assigned faculty name.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	err := scanCourse(r.pool.QueryRow(ctx,
		`SELECT `+courseColumns+courseJoin+` WHERE c.id = $1`, id), c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListPaginated retrieves active courses matching the filter.
func (r *CourseRepository) ListPaginated(ctx context.Context, f model.CourseListFilter) ([]model.Course, int, error) {
	where := ` WHERE c.is_active`
	var args []interface{}
	argIdx := 1

	if f.Department != "" {
		where += ` AND c.department = $` + strconv.Itoa(argIdx)
		args = append(args, f.Department)
		argIdx++
	}
	if f.Semester > 0 {
		where += ` AND c.semester = $` + strconv.Itoa(argIdx)
		args = append(args, f.Semester)
		argIdx++
	}
	if f.Search != "" {
		where += ` AND (c.course_code ILIKE $` + strconv.Itoa(argIdx) +
			` OR c.course_name ILIKE $` + strconv.Itoa(argIdx) + `)`
		args = append(args, "%"+f.Search+"%")
		argIdx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+courseJoin+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + courseColumns + courseJoin + where +
		` ORDER BY c.semester, c.course_code LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, f.PerPage, (f.Page-1)*f.PerPage)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, 0, err
		}
		courses = append(courses, c)
	}
	return courses, total, rows.Err()
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO courses (course_code, course_name, department, semester, credits, faculty_id, syllabus)
		 VALUES (UPPER($1), $2, $3, $4, $5, $6, $7)
		 RETURNING id, course_code, is_active, created_at, updated_at`,
		c.CourseCode, c.CourseName, c.Department, c.Semester, c.Credits, c.FacultyID, c.Syllabus,
	).Scan(&c.ID, &c.CourseCode, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCourseCode
		}
		return err
	}
	return nil
}

// Update modifies a course, including its faculty assignment.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE courses SET course_name = $1, department = $2, semester = $3, credits = $4,
		 faculty_id = $5, syllabus = $6, is_active = $7, updated_at = NOW()
		 WHERE id = $8`,
		c.CourseName, c.Department, c.Semester, c.Credits, c.FacultyID, c.Syllabus, c.IsActive, c.ID,
	)
	return err
}

// Delete removes a course. Enrollments, materials, attendance and grade rows
// are removed by their ON DELETE CASCADE constraints.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

// EnrolledCount returns the number of students enrolled in a course.
func (r *CourseRepository) EnrolledCount(ctx context.Context, courseID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&count)
	return count, err
}

// AddMaterial appends a study material to a course.
func (r *CourseRepository) AddMaterial(ctx context.Context, m *model.CourseMaterial) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO course_materials (course_id, title, description, file_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, uploaded_at`,
		m.CourseID, m.Title, m.Description, m.FileURL,
	).Scan(&m.ID, &m.UploadedAt)
}

// ListMaterials returns a course's materials in upload order.
func (r *CourseRepository) ListMaterials(ctx context.Context, courseID int) ([]model.CourseMaterial, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, course_id, title, description, file_url, uploaded_at
		 FROM course_materials WHERE course_id = $1 ORDER BY uploaded_at, id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []model.CourseMaterial
	for rows.Next() {
		var m model.CourseMaterial
		if err := rows.Scan(&m.ID, &m.CourseID, &m.Title, &m.Description, &m.FileURL, &m.UploadedAt); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

// RecountTotalClasses recomputes total_classes_held from the attendance
// ledger (count of distinct dates) and stores it. Returns the new count.
func (r *CourseRepository) RecountTotalClasses(ctx context.Context, courseID int) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`UPDATE courses
		 SET total_classes_held = (SELECT COUNT(DISTINCT date) FROM attendance_records WHERE course_id = $1),
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING total_classes_held`, courseID).Scan(&total)
	return total, err
}

// DriftedTotals returns ids of courses whose stored total_classes_held no
// longer matches the attendance ledger (e.g. after raw record deletion).
func (r *CourseRepository) DriftedTotals(ctx context.Context) ([]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id FROM courses c
		 WHERE c.total_classes_held <>
		   (SELECT COUNT(DISTINCT a.date) FROM attendance_records a WHERE a.course_id = c.id)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
