package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/thakur-sujal/ERP-Portal/internal/config"
	"github.com/thakur-sujal/ERP-Portal/internal/handler"
	"github.com/thakur-sujal/ERP-Portal/internal/middleware"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/response"
	"github.com/thakur-sujal/ERP-Portal/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Student    *handler.StudentHandler
	Faculty    *handler.FacultyHandler
	Course     *handler.CourseHandler
	Attendance *handler.AttendanceHandler
	Grade      *handler.GradeHandler
	Timetable  *handler.TimetableHandler
	Analytics  *handler.AnalyticsHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(authService)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleFaculty)

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Auth: public login/register, authenticated profile routes.
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		auth.GET("/me", requireAuth, handlers.Auth.Me)
		auth.PUT("/me", requireAuth, handlers.Auth.UpdateProfile)
		auth.PUT("/me/password", requireAuth, handlers.Auth.UpdatePassword)
	}

	// User management: admin only.
	users := router.Group("/api/v1/users")
	users.Use(requireAuth, adminOnly)
	{
		users.GET("", handlers.User.List)
		users.POST("", handlers.User.Create)
		users.GET("/:id", handlers.User.Get)
		users.PUT("/:id", handlers.User.Update)
		users.PATCH("/:id/toggle-active", handlers.User.ToggleActive)
		users.DELETE("/:id", handlers.User.Delete)
	}

	// Students: listing and mutation for staff, self-read enforced in handler.
	students := router.Group("/api/v1/students")
	students.Use(requireAuth)
	{
		students.GET("", staff, handlers.Student.List)
		students.GET("/:id", handlers.Student.Get)
		students.PUT("/:id", handlers.Student.Update)
		students.POST("/:id/enroll", adminOnly, handlers.Student.Enroll)
		students.DELETE("/:id", adminOnly, handlers.Student.Delete)
	}

	// Faculty directory: readable by any authenticated user, managed by admin.
	faculty := router.Group("/api/v1/faculty")
	faculty.Use(requireAuth)
	{
		faculty.GET("", handlers.Faculty.List)
		faculty.GET("/:id", handlers.Faculty.Get)
		faculty.PUT("/:id", adminOnly, handlers.Faculty.Update)
		faculty.DELETE("/:id", adminOnly, handlers.Faculty.Delete)
	}

	// Course catalog: readable by any authenticated user, managed by admin.
	courses := router.Group("/api/v1/courses")
	courses.Use(requireAuth)
	{
		courses.GET("", handlers.Course.List)
		courses.GET("/:id", handlers.Course.Get)
		courses.GET("/:id/materials", handlers.Course.ListMaterials)
		courses.GET("/:id/students", staff, handlers.Course.Roster)
		courses.POST("", adminOnly, handlers.Course.Create)
		courses.PUT("/:id", adminOnly, handlers.Course.Update)
		courses.DELETE("/:id", adminOnly, handlers.Course.Delete)
		courses.POST("/:id/materials", staff, handlers.Course.AddMaterial)
	}

	// Attendance: marking is faculty-only; ownership of the course is
	// enforced in the service, admins included.
	attendance := router.Group("/api/v1/attendance")
	attendance.Use(requireAuth)
	{
		attendance.POST("", middleware.RequireRole(model.RoleFaculty), handlers.Attendance.Mark)
		attendance.GET("/me", middleware.RequireRole(model.RoleStudent), handlers.Attendance.MyAttendance)
		attendance.GET("/students/:id", staff, handlers.Attendance.StudentAttendance)
		attendance.GET("/courses/:id", staff, handlers.Attendance.CourseRecords)
		attendance.GET("/courses/:id/report", staff, handlers.Attendance.CourseReport)
		attendance.PUT("/:id", middleware.RequireRole(model.RoleFaculty), handlers.Attendance.Update)
		attendance.DELETE("/:id", middleware.RequireRole(model.RoleFaculty), handlers.Attendance.Delete)
	}

	// Grades: upload by assigned faculty or admin.
	grades := router.Group("/api/v1/grades")
	grades.Use(requireAuth)
	{
		grades.POST("", staff, handlers.Grade.Upload)
		grades.GET("/me", middleware.RequireRole(model.RoleStudent), handlers.Grade.MyGrades)
		grades.GET("/students/:id", staff, handlers.Grade.StudentGrades)
		grades.GET("/courses/:id", staff, handlers.Grade.CourseGrades)
		grades.PUT("/:id", staff, handlers.Grade.Update)
		grades.DELETE("/:id", staff, handlers.Grade.Delete)
	}

	// Timetable: readable by any authenticated user, managed by admin.
	timetable := router.Group("/api/v1/timetable")
	timetable.Use(requireAuth)
	{
		timetable.GET("", handlers.Timetable.List)
		timetable.GET("/me", middleware.RequireRole(model.RoleFaculty), handlers.Timetable.MySchedule)
		timetable.POST("", adminOnly, handlers.Timetable.Create)
		timetable.PUT("/:id", adminOnly, handlers.Timetable.Update)
		timetable.DELETE("/:id", adminOnly, handlers.Timetable.Delete)
	}

	// Analytics dashboards: admin only.
	analytics := router.Group("/api/v1/analytics")
	analytics.Use(requireAuth, adminOnly)
	{
		analytics.GET("/overview", handlers.Analytics.Overview)
		analytics.GET("/attendance", handlers.Analytics.Attendance)
		analytics.GET("/grades", handlers.Analytics.Grades)
	}

	return router
}
