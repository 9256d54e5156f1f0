package port_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/stretchr/testify/assert"
)

func TestResourceError_MatchesKindAndCause(t *testing.T) {
	err := &port.ResourceError{URI: "file:///x.json", Kind: port.ErrResourceNotFound, Cause: fs.ErrNotExist}

	assert.True(t, errors.Is(err, port.ErrResourceNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, port.ErrResourceUnreadable))
	assert.Contains(t, err.Error(), "file:///x.json")
}

func TestResourceError_WithoutCause(t *testing.T) {
	err := &port.ResourceError{URI: "builtin:///a", Kind: port.ErrResourceUnreadable}

	assert.ErrorIs(t, err, port.ErrResourceUnreadable)
	assert.Equal(t, "read builtin:///a: resource unreadable", err.Error())
}
