package repositories

import (
	"github.com/yigit/university/internal/app/models"
	"gorm.io/gorm"
)

// CourseRepository handles course persistence
type CourseRepository interface {
	Repository[models.Course]
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return NewGormRepository[models.Course](db)
}
