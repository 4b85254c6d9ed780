package apperrors

import "fmt"

// ValidationError is returned when the input is malformed or semantically
// invalid. The caller can fix the payload and retry; it is never retried here.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError is returned when the referenced resource does not exist at the
// time of the operation.
type NotFoundError struct {
	Recurso string
	ID      uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s no encontrada", e.Recurso)
	}
	return fmt.Sprintf("%s %d no encontrada", e.Recurso, e.ID)
}

func NotFound(recurso string, id uint) *NotFoundError {
	return &NotFoundError{Recurso: recurso, ID: id}
}
