package model

// OverviewStats is the admin dashboard overview payload.
type OverviewStats struct {
	TotalStudents   int               `json:"total_students"`
	TotalFaculty    int               `json:"total_faculty"`
	TotalCourses    int               `json:"total_courses"`
	TotalUsers      int               `json:"total_users"`
	DepartmentStats []DepartmentCount `json:"department_stats"`
	RecentUsers     []User            `json:"recent_users"`
}

// DepartmentCount is a per-department student count.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// AttendanceAnalytics aggregates ledger-wide attendance figures.
type AttendanceAnalytics struct {
	StatusCounts []StatusCount  `json:"status_counts"`
	Monthly      []MonthlyCount `json:"monthly"`
}

// StatusCount is a per-status record count.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// MonthlyCount is a per-month total/present pair.
type MonthlyCount struct {
	Month   int `json:"month"`
	Total   int `json:"total"`
	Present int `json:"present"`
}

// GradeAnalytics aggregates ledger-wide grade figures.
type GradeAnalytics struct {
	Distribution []LetterCount     `json:"distribution"`
	AvgByExam    []ExamTypeAverage `json:"avg_by_exam_type"`
}

// LetterCount is a per-letter grade count.
type LetterCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// ExamTypeAverage is the average percentage scored per exam type.
type ExamTypeAverage struct {
	ExamType   string  `json:"exam_type"`
	AvgPercent float64 `json:"avg_percent"`
}
