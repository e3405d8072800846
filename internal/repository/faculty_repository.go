package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
)

var ErrDuplicateEmployeeID = errors.New("faculty with this employee ID already exists")

const facultyColumns = `f.id, f.user_id, f.employee_id, f.department, f.designation,
	f.specialization, f.qualification, f.joining_date, f.experience_years, f.created_at, f.updated_at,
	u.first_name, u.last_name, u.email, u.is_active`

// FacultyRepository handles faculty profile data access.
type FacultyRepository struct {
	pool *pgxpool.Pool
}

// NewFacultyRepository creates a new FacultyRepository.
func NewFacultyRepository(pool *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{pool: pool}
}

func scanFaculty(row interface{ Scan(...any) error }, f *model.Faculty) error {
	return row.Scan(&f.ID, &f.UserID, &f.EmployeeID, &f.Department, &f.Designation,
		&f.Specialization, &f.Qualification, &f.JoiningDate, &f.ExperienceYears,
		&f.CreatedAt, &f.UpdatedAt, &f.FirstName, &f.LastName, &f.Email, &f.IsActive)
}

// GetByID retrieves a faculty profile with account fields.
func (r *FacultyRepository) GetByID(ctx context.Context, id int) (*model.Faculty, error) {
	f := &model.Faculty{}
	err := scanFaculty(r.pool.QueryRow(ctx,
		`SELECT `+facultyColumns+` FROM faculty f JOIN users u ON u.id = f.user_id WHERE f.id = $1`, id), f)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GetByUserID retrieves the faculty profile owned by a user account.
func (r *FacultyRepository) GetByUserID(ctx context.Context, userID int) (*model.Faculty, error) {
	f := &model.Faculty{}
	err := scanFaculty(r.pool.QueryRow(ctx,
		`SELECT `+facultyColumns+` FROM faculty f JOIN users u ON u.id = f.user_id WHERE f.user_id = $1`, userID), f)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ListPaginated retrieves faculty matching the filter, ordered by employee ID.
func (r *FacultyRepository) ListPaginated(ctx context.Context, f model.FacultyListFilter) ([]model.Faculty, int, error) {
	where := ` WHERE 1=1`
	var args []interface{}
	argIdx := 1

	if f.Department != "" {
		where += ` AND f.department = $` + strconv.Itoa(argIdx)
		args = append(args, f.Department)
		argIdx++
	}
	if f.Designation != "" {
		where += ` AND f.designation = $` + strconv.Itoa(argIdx)
		args = append(args, f.Designation)
		argIdx++
	}
	if f.Search != "" {
		where += ` AND (u.first_name ILIKE $` + strconv.Itoa(argIdx) +
			` OR u.last_name ILIKE $` + strconv.Itoa(argIdx) +
			` OR f.employee_id ILIKE $` + strconv.Itoa(argIdx) + `)`
		args = append(args, "%"+f.Search+"%")
		argIdx++
	}

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM faculty f JOIN users u ON u.id = f.user_id`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + facultyColumns + ` FROM faculty f JOIN users u ON u.id = f.user_id` + where +
		` ORDER BY f.employee_id LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, f.PerPage, (f.Page-1)*f.PerPage)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var faculty []model.Faculty
	for rows.Next() {
		var fc model.Faculty
		if err := scanFaculty(rows, &fc); err != nil {
			return nil, 0, err
		}
		faculty = append(faculty, fc)
	}
	return faculty, total, rows.Err()
}

// Create inserts a new faculty profile.
func (r *FacultyRepository) Create(ctx context.Context, f *model.Faculty) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO faculty (user_id, employee_id, department, designation, specialization, qualification, joining_date, experience_years)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		f.UserID, f.EmployeeID, f.Department, f.Designation,
		f.Specialization, f.Qualification, f.JoiningDate, f.ExperienceYears,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmployeeID
		}
		return err
	}
	return nil
}

// Update modifies a faculty profile.
func (r *FacultyRepository) Update(ctx context.Context, f *model.Faculty) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE faculty SET department = $1, designation = $2, specialization = $3,
		 qualification = $4, experience_years = $5, updated_at = NOW()
		 WHERE id = $6`,
		f.Department, f.Designation, f.Specialization, f.Qualification, f.ExperienceYears, f.ID,
	)
	return err
}

// AssignedCourses returns the courses currently assigned to a faculty member.
// courses.faculty_id is the single source of truth for assignments.
func (r *FacultyRepository) AssignedCourses(ctx context.Context, facultyID int) ([]model.CourseRef, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, course_code, course_name, credits
		 FROM courses WHERE faculty_id = $1 AND is_active ORDER BY course_code`, facultyID)
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

// Delete removes a faculty profile by ID.
func (r *FacultyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM faculty WHERE id = $1`, id)
	return err
}
