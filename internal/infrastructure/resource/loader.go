// Package resource reads theme resources addressed by URI.
package resource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/spf13/afero"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/infrastructure/extensions"
	"github.com/bnema/themehost/internal/logging"
)

// ErrUnsupportedScheme is the cause attached to URIs no filesystem serves.
var ErrUnsupportedScheme = errors.New("unsupported uri scheme")

// Loader implements port.ResourceLoader for file:// and builtin:// URIs.
type Loader struct {
	files   afero.Fs
	builtin afero.Fs
}

// Option configures a Loader.
type Option func(*Loader)

// WithFs replaces the filesystem serving file:// URIs.
func WithFs(fsys afero.Fs) Option {
	return func(l *Loader) { l.files = fsys }
}

// WithBuiltinFs replaces the filesystem serving builtin:// URIs.
func WithBuiltinFs(fsys afero.Fs) Option {
	return func(l *Loader) { l.builtin = fsys }
}

// NewLoader creates a loader reading the OS filesystem and the embedded extensions.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		files:   afero.NewOsFs(),
		builtin: &afero.FromIOFS{FS: extensions.BuiltinFS()},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ port.ResourceLoader = (*Loader)(nil)

// Read returns the bytes of the resource at uri.
func (l *Loader) Read(ctx context.Context, uri string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fsys, name, err := l.resolve(uri)
	if err != nil {
		return nil, &port.ResourceError{URI: uri, Kind: port.ErrResourceUnreadable, Cause: err}
	}

	info, err := fsys.Stat(name)
	if err != nil {
		return nil, classify(uri, err)
	}
	if info.IsDir() {
		return nil, &port.ResourceError{URI: uri, Kind: port.ErrResourceUnreadable, Cause: fmt.Errorf("%s is a directory", name)}
	}

	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		return nil, classify(uri, err)
	}

	logging.FromContext(ctx).Trace().Str("uri", uri).Int("bytes", len(data)).Msg("resource read")
	return data, nil
}

func (l *Loader) resolve(uri string) (afero.Fs, string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, "", err
	}
	switch u.Scheme {
	case "file":
		if u.Path == "" {
			return nil, "", errors.New("empty path")
		}
		return l.files, u.Path, nil
	case extensions.BuiltinScheme:
		name := strings.TrimPrefix(u.Path, "/")
		if name == "" {
			name = "."
		}
		if !fs.ValidPath(name) {
			return nil, "", fmt.Errorf("invalid builtin path %q", u.Path)
		}
		return l.builtin, name, nil
	default:
		return nil, "", fmt.Errorf("%w %q", ErrUnsupportedScheme, u.Scheme)
	}
}

func classify(uri string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &port.ResourceError{URI: uri, Kind: port.ErrResourceNotFound, Cause: err}
	}
	return &port.ResourceError{URI: uri, Kind: port.ErrResourceUnreadable, Cause: err}
}
