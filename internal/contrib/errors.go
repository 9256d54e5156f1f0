package contrib

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRegistration is matched by every DuplicateRegistrationError.
	ErrDuplicateRegistration = errors.New("contribution point already registered")
	// ErrHandlerAlreadySet is returned when a point already has a handler.
	ErrHandlerAlreadySet = errors.New("contribution handler already set")
	// ErrNoHandler is returned when users are delivered to a point without a handler.
	ErrNoHandler = errors.New("contribution point has no handler")
	// ErrInvalidPointName is returned for an empty point name.
	ErrInvalidPointName = errors.New("invalid contribution point name")
)

// DuplicateRegistrationError reports a second registration of a point name.
// Existing is the point that was registered first.
type DuplicateRegistrationError struct {
	Name     string
	Existing *Point
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("contribution point %q already registered", e.Name)
}

func (e *DuplicateRegistrationError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}
