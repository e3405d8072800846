package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// DashboardOverviewKey returns the cache key for the admin dashboard overview.
func (r *CacheKeyStruct) DashboardOverviewKey() string {
	return "analytics:overview"
}

// AttendanceAnalyticsKey returns the cache key for attendance analytics.
func (r *CacheKeyStruct) AttendanceAnalyticsKey() string {
	return "analytics:attendance"
}

// GradeAnalyticsKey returns the cache key for grade analytics.
func (r *CacheKeyStruct) GradeAnalyticsKey() string {
	return "analytics:grades"
}

// CourseAttendanceSummaryKey returns the cache key for a course attendance summary.
func (r *CacheKeyStruct) CourseAttendanceSummaryKey(courseID int) string {
	return fmt.Sprintf("course:%d:attendance_summary", courseID)
}

var CacheKey = NewCacheKeyStruct()
