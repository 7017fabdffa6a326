package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories"
)

const coursesPath = "/api/courses"

// CourseController handles course-related operations
type CourseController struct {
	courseRepository repositories.CourseRepository
	logger           zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseRepository repositories.CourseRepository, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseRepository: courseRepository,
		logger:           logger,
	}
}

// GetCourses lists all courses
// @Summary Get all courses
// @Description Returns a list of all courses.
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Failure 500 {object} dto.ExceptionDetails
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	c.logger.Info().Msg("Fetching all courses")

	courses, err := c.courseRepository.GetAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Error occurred while fetching all courses")
		handleFailure(ctx, err, "Can't get all courses")
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Returns a single course by its unique ID.
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 "Course not found"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseID(ctx, c.logger)
	if !ok {
		return
	}

	c.logger.Info().Int64("course_id", id).Msg("Fetching course")

	course, err := c.courseRepository.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Error().Err(err).Int64("course_id", id).Msg("Error occurred while fetching course")
		handleFailure(ctx, err, "Can't get course with this Id")
		return
	}

	if course == nil {
		c.logger.Warn().Int64("course_id", id).Msg("Course not found")
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// CreateCourse creates a new course
// @Summary Create a new course
// @Description Creates a new course. The ID is assigned by the server and teacherId must reference an existing teacher.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.Course true "Course information"
// @Success 201 {object} models.Course
// @Header 201 {string} Location "URL of the created course"
// @Failure 400 {object} dto.ErrorResponse "Invalid course data"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var course models.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		c.logger.Warn().Err(invalidPayload(err)).Msg("Invalid course model received")
		respondValidationError(ctx, "Invalid course data", err)
		return
	}
	course.ID = 0
	course.Teacher = nil

	reqCtx := ctx.Request.Context()
	if err := c.courseRepository.Add(reqCtx, &course); err != nil {
		c.logger.Error().Err(err).Msg("Error occurred while creating a new course")
		handleFailure(ctx, err, "Can't create new course")
		return
	}
	if err := c.courseRepository.Save(reqCtx); err != nil {
		c.logger.Error().Err(err).Msg("Error occurred while creating a new course")
		handleFailure(ctx, err, "Can't create new course")
		return
	}

	c.logger.Info().Int64("course_id", course.ID).Msg("Course created")
	respondCreated(ctx, coursesPath, course)
}

// UpdateCourse replaces an existing course
// @Summary Update an existing course
// @Description Replaces a course by its ID. The payload ID must match the route ID.
// @Tags courses
// @Accept json
// @Param id path int true "Course ID"
// @Param request body models.Course true "Course information"
// @Success 204 "Course updated"
// @Failure 400 {object} dto.ErrorResponse "ID mismatch or invalid course data"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, c.logger)
	if !ok {
		return
	}

	var course models.Course
	if err := decodeBody(ctx, &course); err != nil {
		c.logger.Warn().Err(invalidPayload(err)).Msg("Invalid course model received for update")
		respondValidationError(ctx, "Invalid course data", err)
		return
	}

	if course.ID != id {
		c.logger.Warn().Int64("route_id", id).Int64("course_id", course.ID).Msg("Mismatch between route ID and course ID")
		respondIDMismatch(ctx, id, course.ID)
		return
	}

	if err := validateBody(&course); err != nil {
		c.logger.Warn().Err(invalidPayload(err)).Msg("Invalid course model received for update")
		respondValidationError(ctx, "Invalid course data", err)
		return
	}

	reqCtx := ctx.Request.Context()
	if err := c.courseRepository.Update(reqCtx, &course); err != nil {
		c.logger.Error().Err(err).Int64("course_id", id).Msg("Error occurred while updating course")
		handleFailure(ctx, err, "Can't update course")
		return
	}
	if err := c.courseRepository.Save(reqCtx); err != nil {
		c.logger.Error().Err(err).Int64("course_id", id).Msg("Error occurred while updating course")
		handleFailure(ctx, err, "Can't update course")
		return
	}

	c.logger.Info().Int64("course_id", id).Msg("Course updated")
	ctx.Status(http.StatusNoContent)
}

// DeleteCourse removes a course. Enrolled students are kept.
// @Summary Delete a course
// @Description Deletes a course by its ID.
// @Tags courses
// @Param id path int true "Course ID"
// @Success 204 "Course deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 "Course not found"
// @Failure 500 {object} dto.ExceptionDetails
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, c.logger)
	if !ok {
		return
	}

	c.logger.Info().Int64("course_id", id).Msg("Attempting to delete course")

	reqCtx := ctx.Request.Context()
	course, err := c.courseRepository.GetByID(reqCtx, id)
	if err != nil {
		c.logger.Error().Err(err).Int64("course_id", id).Msg("Error occurred while deleting course")
		handleFailure(ctx, err, "Can't delete course")
		return
	}

	if course == nil {
		c.logger.Warn().Int64("course_id", id).Msg("Course not found")
		ctx.Status(http.StatusNotFound)
		return
	}

	if err := c.courseRepository.Delete(reqCtx, course); err != nil {
		c.logger.Error().Err(err).Int64("course_id", id).Msg("Error occurred while deleting course")
		handleFailure(ctx, err, "Can't delete course")
		return
	}
	if err := c.courseRepository.Save(reqCtx); err != nil {
		c.logger.Error().Err(err).Int64("course_id", id).Msg("Error occurred while deleting course")
		handleFailure(ctx, err, "Can't delete course")
		return
	}

	c.logger.Info().Int64("course_id", id).Msg("Course deleted")
	ctx.Status(http.StatusNoContent)
}
