package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists field-level binding failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError converts a gin/validator binding error. Returns nil if err is not a validator error.
func NewValidationError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			fields[fe.Namespace()] = fmt.Sprintf("failed on %s=%s", fe.Tag(), fe.Param())
			continue
		}
		fields[fe.Namespace()] = "failed on " + fe.Tag()
	}
	return &ValidationError{Fields: fields}
}
