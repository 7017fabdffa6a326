package apperrors

import "errors"

// Common errors
var (
	// ErrMissingArgument is returned when a required argument (usually an entity) is nil.
	ErrMissingArgument = errors.New("required argument is missing")
	// ErrUnauthorizedAccess marks an operation the caller is not allowed to perform.
	ErrUnauthorizedAccess = errors.New("unauthorized access")

	// ErrConstraintViolation is returned when the database rejects a commit
	// because of a foreign key, unique or not-null constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrValidationFailed marks request payloads that failed declared constraints.
	ErrValidationFailed = errors.New("validation failed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" && e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// Wrap attaches a fixed human-readable message to err, keeping it reachable
// through errors.Is / errors.As. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return NewCustomError(err, message)
}
