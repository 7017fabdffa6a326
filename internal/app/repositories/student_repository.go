package repositories

import (
	"github.com/yigit/university/internal/app/models"
	"gorm.io/gorm"
)

// StudentRepository handles student persistence
type StudentRepository interface {
	Repository[models.Student]
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return NewGormRepository[models.Student](db)
}
