package repositories

import (
	"gorm.io/gorm"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    StudentRepository
	TeacherRepository    TeacherRepository
	CourseRepository     CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
