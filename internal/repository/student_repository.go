package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
)

var ErrDuplicateRollNumber = errors.New("student with this roll number already exists")

const studentColumns = `s.id, s.user_id, s.roll_number, s.department, s.semester, s.batch,
	s.parent_name, s.parent_phone, s.address, s.date_of_birth, s.created_at, s.updated_at,
	u.first_name, u.last_name, u.email, u.is_active`

// StudentRepository handles student profile data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func scanStudent(row interface{ Scan(...any) error }, s *model.Student) error {
	return row.Scan(&s.ID, &s.UserID, &s.RollNumber, &s.Department, &s.Semester, &s.Batch,
		&s.ParentName, &s.ParentPhone, &s.Address, &s.DateOfBirth, &s.CreatedAt, &s.UpdatedAt,
		&s.FirstName, &s.LastName, &s.Email, &s.IsActive)
}

// GetByID retrieves a student profile with account fields.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students s JOIN users u ON u.id = s.user_id WHERE s.id = $1`, id), s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByUserID retrieves the student profile owned by a user account.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int) (*model.Student, error) {
	s := &model.Student{}
	err := scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students s JOIN users u ON u.id = s.user_id WHERE s.user_id = $1`, userID), s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListPaginated retrieves students matching the filter, ordered by roll number.
func (r *StudentRepository) ListPaginated(ctx context.Context, f model.StudentListFilter) ([]model.Student, int, error) {
	where := ` WHERE 1=1`
	var args []interface{}
	argIdx := 1

	if f.Department != "" {
		where += ` AND s.department = $` + strconv.Itoa(argIdx)
		args = append(args, f.Department)
		argIdx++
	}
	if f.Semester > 0 {
		where += ` AND s.semester = $` + strconv.Itoa(argIdx)
		args = append(args, f.Semester)
		argIdx++
	}
	if f.Batch != "" {
		where += ` AND s.batch = $` + strconv.Itoa(argIdx)
		args = append(args, f.Batch)
		argIdx++
	}
	if f.Search != "" {
		where += ` AND (u.first_name ILIKE $` + strconv.Itoa(argIdx) +
			` OR u.last_name ILIKE $` + strconv.Itoa(argIdx) +
			` OR s.roll_number ILIKE $` + strconv.Itoa(argIdx) + `)`
		args = append(args, "%"+f.Search+"%")
		argIdx++
	}

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM students s JOIN users u ON u.id = s.user_id`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + studentColumns + ` FROM students s JOIN users u ON u.id = s.user_id` + where +
		` ORDER BY s.roll_number LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, f.PerPage, (f.Page-1)*f.PerPage)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// Create inserts a new student profile.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (user_id, roll_number, department, semester, batch, parent_name, parent_phone, address, date_of_birth)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		s.UserID, s.RollNumber, s.Department, s.Semester, s.Batch,
		s.ParentName, s.ParentPhone, s.Address, s.DateOfBirth,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateRollNumber
		}
		return err
	}
	return nil
}

// Update modifies a student profile.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET department = $1, semester = $2, batch = $3, parent_name = $4,
		 parent_phone = $5, address = $6, date_of_birth = $7, updated_at = NOW()
		 WHERE id = $8`,
		s.Department, s.Semester, s.Batch, s.ParentName, s.ParentPhone, s.Address, s.DateOfBirth, s.ID,
	)
	return err
}

// Enroll merges course ids into a student's enrollment set. Already-enrolled
// pairs are left untouched (ON CONFLICT DO NOTHING), so the operation is
// additive and idempotent. Returns the number of newly added enrollments.
func (r *StudentRepository) Enroll(ctx context.Context, studentID int, courseIDs []int) (int, error) {
	added := 0
	for _, courseID := range courseIDs {
		tag, err := r.pool.Exec(ctx,
			`INSERT INTO enrollments (student_id, course_id) VALUES ($1, $2)
			 ON CONFLICT (student_id, course_id) DO NOTHING`,
			studentID, courseID,
		)
		if err != nil {
			return added, err
		}
		added += int(tag.RowsAffected())
	}
	return added, nil
}

// EnrolledCourses returns the courses a student is enrolled in.
func (r *StudentRepository) EnrolledCourses(ctx context.Context, studentID int) ([]model.CourseRef, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.course_code, c.course_name, c.credits
		 FROM enrollments e JOIN courses c ON c.id = e.course_id
		 WHERE e.student_id = $1 ORDER BY c.course_code`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.CourseRef
	for rows.Next() {
		var c model.CourseRef
		if err := rows.Scan(&c.ID, &c.CourseCode, &c.CourseName, &c.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// ListByCourse returns the roster of students enrolled in a course.
func (r *StudentRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+`
		 FROM enrollments e
		 JOIN students s ON s.id = e.student_id
		 JOIN users u ON u.id = s.user_id
		 WHERE e.course_id = $1 ORDER BY s.roll_number`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Delete removes a student profile by ID.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}
