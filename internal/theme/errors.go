package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrThemeLoadFailure is matched by every LoadError.
	ErrThemeLoadFailure = errors.New("theme load failure")
	// ErrInvalidContribution is matched by every ContributionError.
	ErrInvalidContribution = errors.New("invalid theme contribution")
	// ErrRegistryMismatch is returned when the themes point is already bound
	// to a different theme registry.
	ErrRegistryMismatch = errors.New("themes contribution point bound to another registry")
	// ErrIncludeCycle is returned when a theme includes itself, directly or not.
	ErrIncludeCycle = errors.New("theme include cycle")
	// ErrIncludeDepth is returned when an include chain is too deep.
	ErrIncludeDepth = errors.New("theme include chain too deep")
)

// LoadError reports a descriptor whose content could not be materialized.
type LoadError struct {
	ThemeID  string
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("load theme %s: %v", e.ThemeID, e.Err)
	}
	return fmt.Sprintf("load theme %s from %s: %v", e.ThemeID, e.Location, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrThemeLoadFailure }

// ContributionError reports a malformed entry of a themes declaration.
// Index is -1 when the declaration itself is malformed.
type ContributionError struct {
	Extension string
	Index     int
	Field     string
	Message   string
}

func (e *ContributionError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("extension %s: themes: %s", e.Extension, e.Message)
	case e.Field == "":
		return fmt.Sprintf("extension %s: themes[%d]: %s", e.Extension, e.Index, e.Message)
	default:
		return fmt.Sprintf("extension %s: themes[%d].%s: %s", e.Extension, e.Index, e.Field, e.Message)
	}
}

func (e *ContributionError) Is(target error) bool { return target == ErrInvalidContribution }

// ParseError reports theme content that is not valid JSON or has the wrong shape.
type ParseError struct {
	URI string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URI, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
