package model

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a record does not exist for the requesting user.
var ErrNotFound = errors.New("record not found")

// ErrInvalidPIN reports a failed PIN comparison.
var ErrInvalidPIN = errors.New("invalid PIN")

// ValidationError reports malformed input detected before any mutation is
// attempted: a bad date or time string, a name length out of bounds, an
// empty id in a reorder request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// DuplicateNameError reports a heading name collision within one user's scope.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a heading named %q already exists", e.Name)
}

// InUseError reports an attempt to delete a heading that work-hour entries
// still reference.
type InUseError struct {
	HeadingID string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("heading %s is referenced by existing work hours", e.HeadingID)
}

// PartialReorderError reports a bulk reorder that modified fewer records
// than requested. Assignments that did apply are not rolled back; the
// caller sees exactly how far the operation got.
type PartialReorderError struct {
	Requested int
	Modified  int
}

func (e *PartialReorderError) Error() string {
	return fmt.Sprintf("reorder applied %d of %d assignments", e.Modified, e.Requested)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicateName reports whether err is (or wraps) a DuplicateNameError.
func IsDuplicateName(err error) bool {
	var de *DuplicateNameError
	return errors.As(err, &de)
}

// IsInUse reports whether err is (or wraps) an InUseError.
func IsInUse(err error) bool {
	var ie *InUseError
	return errors.As(err, &ie)
}

// IsPartialReorder reports whether err is (or wraps) a PartialReorderError.
func IsPartialReorder(err error) bool {
	var pe *PartialReorderError
	return errors.As(err, &pe)
}
