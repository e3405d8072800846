package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/thakur-sujal/ERP-Portal/internal/config"
	"github.com/thakur-sujal/ERP-Portal/internal/database"
	"github.com/thakur-sujal/ERP-Portal/internal/logger"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
	"github.com/thakur-sujal/ERP-Portal/internal/service"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a small demo campus: one admin, two faculty, six students, four
// courses with enrollments, a week of attendance and one set of final grades.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	facultyRepo := repository.NewFacultyRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	gradeRepo := repository.NewGradeRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash seed password")
	}
	passwordHash := string(hash)

	// ─── Admin ─────────────────────────────────────────────────────────
	admin := &model.User{
		Email: "admin@erp.local", PasswordHash: passwordHash,
		FirstName: "Asha", LastName: "Verma", Role: model.RoleAdmin,
	}
	mustCreate(userRepo.Create(ctx, admin), log, "admin")

	// ─── Faculty ───────────────────────────────────────────────────────
	facultySeeds := []struct {
		first, last, email, empID, designation string
	}{
		{"Ravi", "Sharma", "ravi.sharma@erp.local", "FAC001", "Professor"},
		{"Meera", "Iyer", "meera.iyer@erp.local", "FAC002", "Assistant Professor"},
	}
	facultyIDs := make([]int, 0, len(facultySeeds))
	for _, fs := range facultySeeds {
		u := &model.User{
			Email: fs.email, PasswordHash: passwordHash,
			FirstName: fs.first, LastName: fs.last, Role: model.RoleFaculty,
		}
		mustCreate(userRepo.Create(ctx, u), log, "faculty user")
		f := &model.Faculty{
			UserID: u.ID, EmployeeID: fs.empID,
			Department: "Computer Science", Designation: fs.designation,
		}
		mustCreate(facultyRepo.Create(ctx, f), log, "faculty profile")
		facultyIDs = append(facultyIDs, f.ID)
	}

	// ─── Students ──────────────────────────────────────────────────────
	studentIDs := make([]int, 0, 6)
	for i := 1; i <= 6; i++ {
		u := &model.User{
			Email:        fmt.Sprintf("student%d@erp.local", i),
			PasswordHash: passwordHash,
			FirstName:    fmt.Sprintf("Student%d", i),
			LastName:     "Demo",
			Role:         model.RoleStudent,
		}
		mustCreate(userRepo.Create(ctx, u), log, "student user")
		s := &model.Student{
			UserID:     u.ID,
			RollNumber: fmt.Sprintf("CS2023%03d", i),
			Department: "Computer Science",
			Semester:   3,
			Batch:      "2023",
		}
		mustCreate(studentRepo.Create(ctx, s), log, "student profile")
		studentIDs = append(studentIDs, s.ID)
	}

	// ─── Courses & Enrollment ──────────────────────────────────────────
	courseSeeds := []struct {
		code, name string
		credits    int
		facultyIdx int
	}{
		{"CS301", "Data Structures", 4, 0},
		{"CS302", "Operating Systems", 4, 0},
		{"CS303", "Database Systems", 3, 1},
		{"CS304", "Computer Networks", 3, 1},
	}
	courseIDs := make([]int, 0, len(courseSeeds))
	for _, cs := range courseSeeds {
		fid := facultyIDs[cs.facultyIdx]
		c := &model.Course{
			CourseCode: cs.code, CourseName: cs.name,
			Department: "Computer Science", Semester: 3,
			Credits: cs.credits, FacultyID: &fid,
		}
		mustCreate(courseRepo.Create(ctx, c), log, "course")
		courseIDs = append(courseIDs, c.ID)
	}
	for _, sid := range studentIDs {
		if _, err := studentRepo.Enroll(ctx, sid, courseIDs); err != nil {
			log.Fatal().Err(err).Msg("Seed enrollment failed")
		}
	}

	// ─── Timetable ─────────────────────────────────────────────────────
	times := []string{"09:00", "10:00", "11:00", "14:00"}
	for i, cid := range courseIDs {
		slot := &model.TimetableSlot{
			CourseID:   cid,
			FacultyID:  facultyIDs[courseSeeds[i].facultyIdx],
			DayOfWeek:  model.TimetableDays[i%len(model.TimetableDays)],
			StartTime:  times[i],
			EndTime:    addHour(times[i]),
			Room:       fmt.Sprintf("R-%d0%d", 1+i/2, 1+i%2),
			Department: "Computer Science",
			Semester:   3,
			ClassType:  model.ClassLecture,
		}
		mustCreate(timetableRepo.Create(ctx, slot), log, "timetable slot")
	}

	// ─── Attendance: five class days on the first course ───────────────
	statuses := []model.AttendanceStatus{
		model.AttendancePresent, model.AttendancePresent, model.AttendancePresent,
		model.AttendanceLate, model.AttendanceAbsent,
	}
	start := time.Now().AddDate(0, 0, -7)
	for day := 0; day < 5; day++ {
		date := start.AddDate(0, 0, day)
		for i, sid := range studentIDs {
			rec := &model.AttendanceRecord{
				StudentID: sid,
				CourseID:  courseIDs[0],
				Date:      date,
				Status:    statuses[(i+day)%len(statuses)],
				MarkedBy:  admin.ID,
			}
			if _, err := attendanceRepo.Upsert(ctx, rec); err != nil {
				log.Fatal().Err(err).Msg("Seed attendance failed")
			}
		}
	}
	if _, err := courseRepo.RecountTotalClasses(ctx, courseIDs[0]); err != nil {
		log.Fatal().Err(err).Msg("Seed recount failed")
	}

	// ─── Grades: finals for every course ───────────────────────────────
	for ci, cid := range courseIDs {
		for si, sid := range studentIDs {
			marks := float64(45 + (si*9+ci*7)%55)
			g := &model.Grade{
				StudentID:    sid,
				CourseID:     cid,
				ExamType:     model.ExamFinal,
				Marks:        marks,
				MaxMarks:     100,
				GradeLetter:  service.LetterGrade(marks),
				Semester:     3,
				AcademicYear: "2025-2026",
				UploadedBy:   admin.ID,
			}
			if _, err := gradeRepo.Upsert(ctx, g); err != nil {
				log.Fatal().Err(err).Msg("Seed grade failed")
			}
		}
	}

	log.Info().
		Int("students", len(studentIDs)).
		Int("faculty", len(facultyIDs)).
		Int("courses", len(courseIDs)).
		Msg("Seed complete")
	fmt.Println("Demo credentials: admin@erp.local / password123")
}

func mustCreate(err error, log zerolog.Logger, what string) {
	if err != nil {
		log.Fatal().Err(err).Str("entity", what).Msg("Seed insert failed")
	}
}

func addHour(hhmm string) string {
	t, _ := time.Parse("15:04", hhmm)
	return t.Add(time.Hour).Format("15:04")
}
