package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories"
)

const teachersPath = "/api/teachers"

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherRepository repositories.TeacherRepository
	logger            zerolog.Logger
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherRepository repositories.TeacherRepository, logger zerolog.Logger) *TeacherController {
	return &TeacherController{
		teacherRepository: teacherRepository,
		logger:            logger,
	}
}

// GetTeachers lists all teachers
// @Summary Get all teachers
// @Description Returns a list of all teachers.
// @Tags teachers
// @Produce json
// @Success 200 {array} models.Teacher
// @Failure 500 {object} dto.ExceptionDetails
// @Router /teachers [get]
func (c *TeacherController) GetTeachers(ctx *gin.Context) {
	c.logger.Info().Msg("Fetching all teachers")

	teachers, err := c.teacherRepository.GetAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Error occurred while fetching all teachers")
		handleFailure(ctx, err, "Can't get all teachers")
		return
	}

	ctx.JSON(http.StatusOK, teachers)
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher by ID
// @Description Returns a single teacher by their unique ID.
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} models.Teacher
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 "Teacher not found"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseID(ctx, c.logger)
	if !ok {
		return
	}

	c.logger.Info().Int64("teacher_id", id).Msg("Fetching teacher")

	teacher, err := c.teacherRepository.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Error().Err(err).Int64("teacher_id", id).Msg("Error occurred while fetching teacher")
		handleFailure(ctx, err, "Can't get teacher with this Id")
		return
	}

	if teacher == nil {
		c.logger.Warn().Int64("teacher_id", id).Msg("Teacher not found")
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// CreateTeacher creates a new teacher
// @Summary Create a new teacher
// @Description Creates a new teacher. The ID is assigned by the server.
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body models.Teacher true "Teacher information"
// @Success 201 {object} models.Teacher
// @Header 201 {string} Location "URL of the created teacher"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher data"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var teacher models.Teacher
	if err := ctx.ShouldBindJSON(&teacher); err != nil {
		c.logger.Warn().Err(invalidPayload(err)).Msg("Invalid teacher model received")
		respondValidationError(ctx, "Invalid teacher data", err)
		return
	}
	teacher.ID = 0
	teacher.Courses = nil

	reqCtx := ctx.Request.Context()
	if err := c.teacherRepository.Add(reqCtx, &teacher); err != nil {
		c.logger.Error().Err(err).Msg("Error occurred while creating a new teacher")
		handleFailure(ctx, err, "Can't create new teacher")
		return
	}
	if err := c.teacherRepository.Save(reqCtx); err != nil {
		c.logger.Error().Err(err).Msg("Error occurred while creating a new teacher")
		handleFailure(ctx, err, "Can't create new teacher")
		return
	}

	c.logger.Info().Int64("teacher_id", teacher.ID).Msg("Teacher created")
	respondCreated(ctx, teachersPath, teacher)
}

// UpdateTeacher replaces an existing teacher
// @Summary Update an existing teacher
// @Description Replaces a teacher by their ID. The payload ID must match the route ID.
// @Tags teachers
// @Accept json
// @Param id path int true "Teacher ID"
// @Param request body models.Teacher true "Teacher information"
// @Success 204 "Teacher updated"
// @Failure 400 {object} dto.ErrorResponse "ID mismatch or invalid teacher data"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseID(ctx, c.logger)
	if !ok {
		return
	}

	var teacher models.Teacher
	if err := decodeBody(ctx, &teacher); err != nil {
		c.logger.Warn().Err(invalidPayload(err)).Msg("Invalid teacher model received for update")
		respondValidationError(ctx, "Invalid teacher data", err)
		return
	}

	if teacher.ID != id {
		c.logger.Warn().Int64("route_id", id).Int64("teacher_id", teacher.ID).Msg("Mismatch between route ID and teacher ID")
		respondIDMismatch(ctx, id, teacher.ID)
		return
	}

	if err := validateBody(&teacher); err != nil {
		c.logger.Warn().Err(invalidPayload(err)).Msg("Invalid teacher model received for update")
		respondValidationError(ctx, "Invalid teacher data", err)
		return
	}

	reqCtx := ctx.Request.Context()
	if err := c.teacherRepository.Update(reqCtx, &teacher); err != nil {
		c.logger.Error().Err(err).Int64("teacher_id", id).Msg("Error occurred while updating teacher")
		handleFailure(ctx, err, "Can't update teacher")
		return
	}
	if err := c.teacherRepository.Save(reqCtx); err != nil {
		c.logger.Error().Err(err).Int64("teacher_id", id).Msg("Error occurred while updating teacher")
		handleFailure(ctx, err, "Can't update teacher")
		return
	}

	c.logger.Info().Int64("teacher_id", id).Msg("Teacher updated")
	ctx.Status(http.StatusNoContent)
}

// DeleteTeacher removes a teacher and the courses they own
// @Summary Delete a teacher
// @Description Deletes a teacher by their ID. Their courses are removed too.
// @Tags teachers
// @Param id path int true "Teacher ID"
// @Success 204 "Teacher deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 "Teacher not found"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseID(ctx, c.logger)
	if !ok {
		return
	}

	c.logger.Info().Int64("teacher_id", id).Msg("Attempting to delete teacher")

	reqCtx := ctx.Request.Context()
	teacher, err := c.teacherRepository.GetByID(reqCtx, id)
	if err != nil {
		c.logger.Error().Err(err).Int64("teacher_id", id).Msg("Error occurred while deleting teacher")
		handleFailure(ctx, err, "Can't delete teacher")
		return
	}

	if teacher == nil {
		c.logger.Warn().Int64("teacher_id", id).Msg("Teacher not found")
		ctx.Status(http.StatusNotFound)
		return
	}

	if err := c.teacherRepository.Delete(reqCtx, teacher); err != nil {
		c.logger.Error().Err(err).Int64("teacher_id", id).Msg("Error occurred while deleting teacher")
		handleFailure(ctx, err, "Can't delete teacher")
		return
	}
	if err := c.teacherRepository.Save(reqCtx); err != nil {
		c.logger.Error().Err(err).Int64("teacher_id", id).Msg("Error occurred while deleting teacher")
		handleFailure(ctx, err, "Can't delete teacher")
		return
	}

	c.logger.Info().Int64("teacher_id", id).Msg("Teacher deleted")
	ctx.Status(http.StatusNoContent)
}
