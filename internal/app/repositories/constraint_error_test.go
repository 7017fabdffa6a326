package repositories

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/university/internal/pkg/apperrors"
)

func TestConstraintErrorNamesPostgresConstraint(t *testing.T) {
	cause := fmt.Errorf("insert Course: %w", &pgconn.PgError{Code: "23503", ConstraintName: "fk_teachers_courses"})

	err := constraintError(cause)

	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	assert.ErrorContains(t, err, `(foreign key "fk_teachers_courses")`)
}

func TestConstraintErrorUniqueViolation(t *testing.T) {
	err := constraintError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_teachers_email"})

	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	assert.ErrorContains(t, err, `(integrity "idx_teachers_email")`)
}
