package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yigit/university/internal/app/controllers"
	"github.com/yigit/university/internal/middleware"
	"gorm.io/gorm"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	db *gorm.DB,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	courseController *controllers.CourseController,
	healthController *controllers.HealthController,
) {
	api := router.Group("/api")
	api.Use(middleware.UnitOfWork(db))

	students := api.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	teachers := api.Group("/teachers")
	{
		teachers.GET("", teacherController.GetTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.POST("", teacherController.CreateTeacher)
		teachers.PUT("/:id", teacherController.UpdateTeacher)
		teachers.DELETE("/:id", teacherController.DeleteTeacher)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	router.GET("/health", healthController.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
