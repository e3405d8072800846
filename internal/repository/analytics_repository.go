package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
)

// AnalyticsRepository runs the dashboard aggregation queries.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// Overview collects the top-line entity counts, per-department student
// distribution and most recent accounts.
func (r *AnalyticsRepository) Overview(ctx context.Context) (*model.OverviewStats, error) {
	stats := &model.OverviewStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT
		 (SELECT COUNT(*) FROM students),
		 (SELECT COUNT(*) FROM faculty),
		 (SELECT COUNT(*) FROM courses WHERE is_active),
		 (SELECT COUNT(*) FROM users)`,
	).Scan(&stats.TotalStudents, &stats.TotalFaculty, &stats.TotalCourses, &stats.TotalUsers)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT department, COUNT(*) FROM students GROUP BY department ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var d model.DepartmentCount
		if err := rows.Scan(&d.Department, &d.Count); err != nil {
			return nil, err
		}
		stats.DepartmentStats = append(stats.DepartmentStats, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	userRows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT 5`)
	if err != nil {
		return nil, err
	}
	defer userRows.Close()
	for userRows.Next() {
		var u model.User
		if err := scanUser(userRows, &u); err != nil {
			return nil, err
		}
		stats.RecentUsers = append(stats.RecentUsers, u)
	}
	return stats, userRows.Err()
}

// Attendance aggregates the attendance ledger by status and by month of the
// current year.
func (r *AnalyticsRepository) Attendance(ctx context.Context) (*model.AttendanceAnalytics, error) {
	out := &model.AttendanceAnalytics{}

	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM attendance_records GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.StatusCount
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			return nil, err
		}
		out.StatusCounts = append(out.StatusCounts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	monthRows, err := r.pool.Query(ctx,
		`SELECT EXTRACT(MONTH FROM date)::int,
		 COUNT(*),
		 COUNT(*) FILTER (WHERE status = 'present')
		 FROM attendance_records
		 WHERE date >= date_trunc('year', CURRENT_DATE)
		 GROUP BY 1 ORDER BY 1`)
	if err != nil {
		return nil, err
	}
	defer monthRows.Close()
	for monthRows.Next() {
		var m model.MonthlyCount
		if err := monthRows.Scan(&m.Month, &m.Total, &m.Present); err != nil {
			return nil, err
		}
		out.Monthly = append(out.Monthly, m)
	}
	return out, monthRows.Err()
}

// Grades aggregates the grade ledger: letter distribution and the average
// percentage scored per exam type.
func (r *AnalyticsRepository) Grades(ctx context.Context) (*model.GradeAnalytics, error) {
	out := &model.GradeAnalytics{}

	rows, err := r.pool.Query(ctx,
		`SELECT grade_letter, COUNT(*) FROM grades GROUP BY grade_letter ORDER BY grade_letter`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var l model.LetterCount
		if err := rows.Scan(&l.Grade, &l.Count); err != nil {
			return nil, err
		}
		out.Distribution = append(out.Distribution, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	avgRows, err := r.pool.Query(ctx,
		`SELECT exam_type, ROUND(AVG(marks / max_marks * 100)::numeric, 2)
		 FROM grades WHERE max_marks > 0 GROUP BY exam_type ORDER BY exam_type`)
	if err != nil {
		return nil, err
	}
	defer avgRows.Close()
	for avgRows.Next() {
		var a model.ExamTypeAverage
		if err := avgRows.Scan(&a.ExamType, &a.AvgPercent); err != nil {
			return nil, err
		}
		out.AvgByExam = append(out.AvgByExam, a)
	}
	return out, avgRows.Err()
}
