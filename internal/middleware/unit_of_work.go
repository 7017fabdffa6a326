package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/university/internal/app/repositories"
	"gorm.io/gorm"
)

// UnitOfWork attaches a fresh unit of work to every request context.
// Changes left unsaved when the request ends are dropped.
func UnitOfWork(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uow := repositories.NewUnitOfWork(db)
		c.Request = c.Request.WithContext(repositories.WithUnitOfWork(c.Request.Context(), uow))
		defer uow.Discard()
		c.Next()
	}
}
