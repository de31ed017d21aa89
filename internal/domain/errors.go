package domain

import (
	"errors"
	"fmt"
)

// ErrRefreshFailed is wrapped by every price-index refresh failure
var ErrRefreshFailed = errors.New("price index refresh failed")

// ValidationError reports a missing or out-of-range required field.
// It aborts only the request that produced it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a catalog lookup miss
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// RegionNotFoundError is returned by the seasonal adjuster when no regional
// record exists for a key. There is no fallback on that path.
type RegionNotFoundError struct {
	Key string
}

func (e *RegionNotFoundError) Error() string {
	return fmt.Sprintf("no regional data for region key %q", e.Key)
}

// ParseError reports user input that could not be parsed
type ParseError struct {
	Input   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Message)
}
