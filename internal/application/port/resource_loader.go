package port

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound is returned when a resource does not exist.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrResourceUnreadable is returned when a resource exists but cannot be read.
	ErrResourceUnreadable = errors.New("resource unreadable")
)

// ResourceError reports a failed read. It matches both its Kind sentinel
// and the underlying cause with errors.Is.
type ResourceError struct {
	URI   string
	Kind  error
	Cause error
}

func (e *ResourceError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("read %s: %v", e.URI, e.Kind)
	}
	return fmt.Sprintf("read %s: %v: %v", e.URI, e.Kind, e.Cause)
}

func (e *ResourceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// ResourceLoader reads raw bytes addressed by URI.
type ResourceLoader interface {
	Read(ctx context.Context, uri string) ([]byte, error)
}
