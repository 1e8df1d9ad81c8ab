package useragent

import (
	"errors"
	"fmt"
)

var (
	ErrResourceNotFound = errors.New("keyword table resource not found")
	ErrMissingSeparator = errors.New("missing '=' separator")
	ErrEmptyToken       = errors.New("empty token")
	ErrUnknownKind      = errors.New("unknown entity kind")
	ErrUnknownDevice    = errors.New("unknown device category")
	ErrDuplicateToken   = errors.New("duplicate token")
)

// LoadError reports a defect in a keyword table resource. Line is 1-based and
// zero when the failure is not tied to a particular line.
type LoadError struct {
	Path string
	Line int
	Err  error
}

// Error formats the failure with its resource path and line.
func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("useragent: keyword table %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("useragent: keyword table %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying sentinel or I/O error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
