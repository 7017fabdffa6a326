package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/pkg/apperrors"
)

const internalServerErrorMessage = "Internal Server Error"

type exceptionMapping struct {
	target     error
	statusCode int
	message    string
}

// exceptionTable is checked in order; errors matching nothing become 500.
var exceptionTable = []exceptionMapping{
	{target: apperrors.ErrMissingArgument, statusCode: http.StatusBadRequest, message: "Required parameter is missing"},
	{target: apperrors.ErrUnauthorizedAccess, statusCode: http.StatusUnauthorized, message: "Access denied"},
}

// ClassifyError maps an error onto the response status and message
func ClassifyError(err error) dto.ExceptionDetails {
	for _, m := range exceptionTable {
		if errors.Is(err, m.target) {
			return dto.ExceptionDetails{StatusCode: m.statusCode, Message: m.message}
		}
	}
	return dto.ExceptionDetails{StatusCode: http.StatusInternalServerError, Message: internalServerErrorMessage}
}

// ExceptionHandler turns errors attached with ctx.Error and panics raised by
// downstream handlers into a JSON ExceptionDetails response.
func ExceptionHandler(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				}
				writeException(c, logger, err)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			writeException(c, logger, c.Errors.Last().Err)
		}
	}
}

func writeException(c *gin.Context, logger zerolog.Logger, err error) {
	logger.Error().
		Err(err).
		Str("request_id", c.GetString(ContextKeyRequestID)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled exception")

	if c.Writer.Written() {
		return
	}

	details := ClassifyError(err)
	c.AbortWithStatusJSON(details.StatusCode, details)
}

// ErrorPage is the generic failure endpoint used in production
func ErrorPage(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.ExceptionDetails{
		StatusCode: http.StatusInternalServerError,
		Message:    internalServerErrorMessage,
	})
}
