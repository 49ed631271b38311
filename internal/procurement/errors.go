package procurement

import (
	"fmt"
	"net/http"
)

const (
	ValidationAppError = "ValidationError"
	BadRequestAppError = "BadRequest"
	NotFoundAppError   = "NotFound"
	ConflictAppError   = "Conflict"
	ServerAppError     = "InternalError"
)

// AppError is raised by the service layer and mapped 1:1 to an HTTP status
// at the handler boundary. Unexpected storage failures are wrapped as
// ServerAppError so no internal detail leaks to the client.
type AppError struct {
	Type    string
	Message string
	Code    int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(errType string, message string, code int, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Err:     err,
	}
}

func newBadRequest(format string, args ...interface{}) *AppError {
	return NewError(BadRequestAppError, fmt.Sprintf(format, args...), http.StatusBadRequest, nil)
}

func newNotFound(format string, args ...interface{}) *AppError {
	return NewError(NotFoundAppError, fmt.Sprintf(format, args...), http.StatusNotFound, nil)
}

func newConflict(format string, args ...interface{}) *AppError {
	return NewError(ConflictAppError, fmt.Sprintf(format, args...), http.StatusConflict, nil)
}

func newServerError(message string, err error) *AppError {
	return NewError(ServerAppError, message, http.StatusInternalServerError, err)
}
