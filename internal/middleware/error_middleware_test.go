package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWithHandler(t *testing.T, logger zerolog.Logger, handler gin.HandlerFunc) (*httptest.ResponseRecorder, dto.ExceptionDetails) {
	t.Helper()

	r := gin.New()
	r.Use(ExceptionHandler(logger))
	r.GET("/boom", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body dto.ExceptionDetails
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestExceptionHandlerMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"missing argument", apperrors.ErrMissingArgument, http.StatusBadRequest, "Required parameter is missing"},
		{"unauthorized", apperrors.ErrUnauthorizedAccess, http.StatusUnauthorized, "Access denied"},
		{"wrapped missing argument", apperrors.Wrap(apperrors.ErrMissingArgument, "Can't create new student"), http.StatusBadRequest, "Required parameter is missing"},
		{"constraint violation", apperrors.Wrap(apperrors.ErrConstraintViolation, "Can't create new course"), http.StatusInternalServerError, "Internal Server Error"},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveWithHandler(t, zerolog.Nop(), func(c *gin.Context) {
				_ = c.Error(tt.err)
				c.Abort()
			})

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
			assert.Equal(t, tt.status, body.StatusCode)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestExceptionHandlerRecoversPanics(t *testing.T) {
	w, body := serveWithHandler(t, zerolog.Nop(), func(c *gin.Context) {
		panic("unexpected")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", body.Message)

	w, body = serveWithHandler(t, zerolog.Nop(), func(c *gin.Context) {
		panic(apperrors.ErrMissingArgument)
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Required parameter is missing", body.Message)
}

func TestExceptionHandlerLogsOriginalError(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	serveWithHandler(t, logger, func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(errors.New("connection reset"), "Can't get all courses"))
	})

	assert.Contains(t, buf.String(), "Can't get all courses: connection reset")
}

func TestExceptionHandlerPassesThroughSuccess(t *testing.T) {
	w, _ := serveWithHandler(t, zerolog.Nop(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestErrorPage(t *testing.T) {
	r := gin.New()
	r.GET("/error", ErrorPage)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/error", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"StatusCode":500,"Message":"Internal Server Error"}`, w.Body.String())
}
