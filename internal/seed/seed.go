package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/university/internal/app/models"
	appRepos "github.com/yigit/university/internal/app/repositories"
	"github.com/yigit/university/internal/pkg/helpers"
	"gorm.io/gorm"
)

const studentCount = 10

// Initialize fills an empty database with sample teachers, courses, students
// and enrollments. It does nothing when any student already exists.
func Initialize(ctx context.Context, db *gorm.DB, repos *appRepos.Repositories, rng *rand.Rand, lgr zerolog.Logger) error {
	existing, err := repos.StudentRepository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing students: %w", err)
	}
	if len(existing) > 0 {
		lgr.Info().Int("students", len(existing)).Msg("Database already seeded, skipping")
		return nil
	}

	lgr.Info().Msg("Seeding sample data...")
	ctx = appRepos.WithUnitOfWork(ctx, appRepos.NewUnitOfWork(db))
	now := time.Now()

	teachers := []*appModels.Teacher{
		{FirstName: "Anton", LastName: "Skochulyas", Email: "anton.skochulyas@gmail.com", HireDate: helpers.YearsAgo(now, 10, 0)},
		{FirstName: "Olga", LastName: "Melnychuk", Email: "olga.melnychuk@gmail.com", HireDate: helpers.YearsAgo(now, 5, 0)},
	}
	for _, teacher := range teachers {
		if err := repos.TeacherRepository.Add(ctx, teacher); err != nil {
			return fmt.Errorf("failed to stage teacher: %w", err)
		}
	}
	if err := repos.TeacherRepository.Save(ctx); err != nil {
		return fmt.Errorf("failed to seed teachers: %w", err)
	}

	courses := []*appModels.Course{
		{CourseName: "Math", TeacherID: teachers[0].ID},
		{CourseName: "English", TeacherID: teachers[1].ID},
	}
	for _, course := range courses {
		if err := repos.CourseRepository.Add(ctx, course); err != nil {
			return fmt.Errorf("failed to stage course: %w", err)
		}
	}
	if err := repos.CourseRepository.Save(ctx); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	students := make([]*appModels.Student, studentCount)
	for i := range students {
		email := fmt.Sprintf("student%d@example.com", i)
		dob := helpers.YearsAgo(now, 20, rng.Intn(2000)-1000)
		students[i] = &appModels.Student{
			FirstName:   fmt.Sprintf("Student%d", i),
			LastName:    fmt.Sprintf("LastName%d", i),
			Email:       &email,
			DateOfBirth: &dob,
		}
		if err := repos.StudentRepository.Add(ctx, students[i]); err != nil {
			return fmt.Errorf("failed to stage student: %w", err)
		}
	}
	if err := repos.StudentRepository.Save(ctx); err != nil {
		return fmt.Errorf("failed to seed students: %w", err)
	}

	allCourses, err := repos.CourseRepository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load courses: %w", err)
	}

	// Each student gets at most one course.
	enrollments := 0
	for _, student := range students {
		rng.Shuffle(len(allCourses), func(i, j int) {
			allCourses[i], allCourses[j] = allCourses[j], allCourses[i]
		})
		for _, course := range allCourses[:rng.Intn(2)] {
			if err := repos.EnrollmentRepository.Enroll(ctx, course.ID, student.ID); err != nil {
				return fmt.Errorf("failed to stage enrollment: %w", err)
			}
			enrollments++
		}
	}
	if err := repos.StudentRepository.Save(ctx); err != nil {
		return fmt.Errorf("failed to seed enrollments: %w", err)
	}

	lgr.Info().
		Int("teachers", len(teachers)).
		Int("courses", len(courses)).
		Int("students", len(students)).
		Int("enrollments", enrollments).
		Msg("Sample data seeded")
	return nil
}
