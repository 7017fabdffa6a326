package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories"
)

const studentsPath = "/api/students"

// StudentController handles student-related operations
type StudentController struct {
	studentRepository repositories.StudentRepository
	logger            zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentRepository repositories.StudentRepository, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentRepository: studentRepository,
		logger:            logger,
	}
}

// GetStudents lists all students
// @Summary Get all students
// @Description Returns a list of all students.
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Failure 500 {object} dto.ExceptionDetails
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	c.logger.Info().Msg("Fetching all students")

	students, err := c.studentRepository.GetAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Error occurred while fetching all students")
		handleFailure(ctx, err, "Can't get all students")
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Description Returns a single student by their unique ID.
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 "Student not found"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseID(ctx, c.logger)
	if !ok {
		return
	}

	c.logger.Info().Int64("student_id", id).Msg("Fetching student")

	student, err := c.studentRepository.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Error().Err(err).Int64("student_id", id).Msg("Error occurred while fetching student")
		handleFailure(ctx, err, "Can't get student with this Id")
		return
	}

	if student == nil {
		c.logger.Warn().Int64("student_id", id).Msg("Student not found")
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent creates a new student
// @Summary Create a new student
// @Description Creates a new student. The ID is assigned by the server.
// @Tags students
// @Accept json
// @Produce json
// @Param request body models.Student true "Student information"
// @Success 201 {object} models.Student
// @Header 201 {string} Location "URL of the created student"
// @Failure 400 {object} dto.ErrorResponse "Invalid student data"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		c.logger.Warn().Err(invalidPayload(err)).Msg("Invalid student model received")
		respondValidationError(ctx, "Invalid student data", err)
		return
	}
	student.ID = 0

	reqCtx := ctx.Request.Context()
	if err := c.studentRepository.Add(reqCtx, &student); err != nil {
		c.logger.Error().Err(err).Msg("Error occurred while creating a new student")
		handleFailure(ctx, err, "Can't create new student")
		return
	}
	if err := c.studentRepository.Save(reqCtx); err != nil {
		c.logger.Error().Err(err).Msg("Error occurred while creating a new student")
		handleFailure(ctx, err, "Can't create new student")
		return
	}

	c.logger.Info().Int64("student_id", student.ID).Msg("Student created")
	respondCreated(ctx, studentsPath, student)
}

// UpdateStudent replaces an existing student
// @Summary Update an existing student
// @Description Replaces a student by their ID. The payload ID must match the route ID.
// @Tags students
// @Accept json
// @Param id path int true "Student ID"
// @Param request body models.Student true "Student information"
// @Success 204 "Student updated"
// @Failure 400 {object} dto.ErrorResponse "ID mismatch or invalid student data"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, c.logger)
	if !ok {
		return
	}

	var student models.Student
	if err := decodeBody(ctx, &student); err != nil {
		c.logger.Warn().Err(invalidPayload(err)).Msg("Invalid student model received for update")
		respondValidationError(ctx, "Invalid student data", err)
		return
	}

	if student.ID != id {
		c.logger.Warn().Int64("route_id", id).Int64("student_id", student.ID).Msg("Mismatch between route ID and student ID")
		respondIDMismatch(ctx, id, student.ID)
		return
	}

	if err := validateBody(&student); err != nil {
		c.logger.Warn().Err(invalidPayload(err)).Msg("Invalid student model received for update")
		respondValidationError(ctx, "Invalid student data", err)
		return
	}

	reqCtx := ctx.Request.Context()
	if err := c.studentRepository.Update(reqCtx, &student); err != nil {
		c.logger.Error().Err(err).Int64("student_id", id).Msg("Error occurred while updating student")
		handleFailure(ctx, err, "Can't update student")
		return
	}
	if err := c.studentRepository.Save(reqCtx); err != nil {
		c.logger.Error().Err(err).Int64("student_id", id).Msg("Error occurred while updating student")
		handleFailure(ctx, err, "Can't update student")
		return
	}

	c.logger.Info().Int64("student_id", id).Msg("Student updated")
	ctx.Status(http.StatusNoContent)
}

// DeleteStudent removes a student and their enrollments
// @Summary Delete a student
// @Description Deletes a student by their ID.
// @Tags students
// @Param id path int true "Student ID"
// @Success 204 "Student deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 "Student not found"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, c.logger)
	if !ok {
		return
	}

	c.logger.Info().Int64("student_id", id).Msg("Attempting to delete student")

	reqCtx := ctx.Request.Context()
	student, err := c.studentRepository.GetByID(reqCtx, id)
	if err != nil {
		c.logger.Error().Err(err).Int64("student_id", id).Msg("Error occurred while deleting student")
		handleFailure(ctx, err, "Can't delete student")
		return
	}

	if student == nil {
		c.logger.Warn().Int64("student_id", id).Msg("Student not found")
		ctx.Status(http.StatusNotFound)
		return
	}

	if err := c.studentRepository.Delete(reqCtx, student); err != nil {
		c.logger.Error().Err(err).Int64("student_id", id).Msg("Error occurred while deleting student")
		handleFailure(ctx, err, "Can't delete student")
		return
	}
	if err := c.studentRepository.Save(reqCtx); err != nil {
		c.logger.Error().Err(err).Int64("student_id", id).Msg("Error occurred while deleting student")
		handleFailure(ctx, err, "Can't delete student")
		return
	}

	c.logger.Info().Int64("student_id", id).Msg("Student deleted")
	ctx.Status(http.StatusNoContent)
}
