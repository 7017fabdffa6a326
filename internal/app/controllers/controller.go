package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/validation"
)

// parseID reads the {id} path parameter. On failure the 400 response is already written.
func parseID(ctx *gin.Context, logger zerolog.Logger) (int64, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn().Str("id", idStr).Msg("Invalid ID in route")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidID, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// decodeBody reads the JSON payload without running validation
func decodeBody(ctx *gin.Context, obj interface{}) error {
	if ctx.Request.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	return json.NewDecoder(ctx.Request.Body).Decode(obj)
}

// validateBody runs the binding constraints declared on obj
func validateBody(obj interface{}) error {
	return binding.Validator.ValidateStruct(obj)
}

// invalidPayload marks a bind or validation failure with ErrValidationFailed
func invalidPayload(err error) error {
	return fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
}

func respondValidationError(ctx *gin.Context, message string, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	errorDetail = errorDetail.WithDetails(validation.TranslateErrors(err))
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

func respondIDMismatch(ctx *gin.Context, routeID, bodyID int64) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeIDMismatch, "ID mismatch")
	errorDetail = errorDetail.WithDetails(fmt.Sprintf("route ID %d does not match payload ID %d", routeID, bodyID))
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// respondCreated writes 201 with a Location header pointing at the new resource
func respondCreated(ctx *gin.Context, basePath string, entity models.Entity) {
	ctx.Header("Location", fmt.Sprintf("%s/%d", basePath, entity.GetID()))
	ctx.JSON(http.StatusCreated, entity)
}

// handleFailure hands err to the exception middleware under a fixed message
func handleFailure(ctx *gin.Context, err error, message string) {
	_ = ctx.Error(apperrors.Wrap(err, message))
	ctx.Abort()
}
