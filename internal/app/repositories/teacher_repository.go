package repositories

import (
	"github.com/yigit/university/internal/app/models"
	"gorm.io/gorm"
)

// TeacherRepository handles teacher persistence
type TeacherRepository interface {
	Repository[models.Teacher]
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return NewGormRepository[models.Teacher](db)
}
