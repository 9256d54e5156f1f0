// Package extensions discovers installed extensions and their manifests.
package extensions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/logging"
)

const defaultConcurrency = 4

// Scanner implements port.ExtensionScanner over a set of search directories.
type Scanner struct {
	fs             afero.Fs
	builtin        afero.Fs
	dirs           []string
	includeBuiltin bool
	concurrency    int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithFs replaces the filesystem used for search directories.
func WithFs(fsys afero.Fs) Option {
	return func(s *Scanner) { s.fs = fsys }
}

// WithBuiltin toggles scanning of the embedded extensions.
func WithBuiltin(enabled bool) Option {
	return func(s *Scanner) { s.includeBuiltin = enabled }
}

// WithConcurrency bounds the number of manifests parsed at once.
func WithConcurrency(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewScanner creates a scanner for the given search directories.
func NewScanner(dirs []string, opts ...Option) *Scanner {
	s := &Scanner{
		fs:             afero.NewOsFs(),
		builtin:        &afero.FromIOFS{FS: BuiltinFS()},
		dirs:           dirs,
		includeBuiltin: true,
		concurrency:    defaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ port.ExtensionScanner = (*Scanner)(nil)

// source is one search root and how its extensions are addressed.
type source struct {
	fs      afero.Fs
	root    string
	builtin bool
}

func (src source) location(dir string) string {
	if src.builtin {
		return (&url.URL{Scheme: BuiltinScheme, Path: "/" + dir}).String()
	}
	abs := filepath.Join(src.root, dir)
	if resolved, err := filepath.Abs(abs); err == nil {
		abs = resolved
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}

func (src source) manifestPath(dir string) string {
	if src.builtin {
		return path.Join(dir, ManifestFile)
	}
	return filepath.Join(src.root, dir, ManifestFile)
}

// Scan returns the extensions of every search directory, builtin first,
// then in configuration order. Within a directory extensions are sorted
// by directory name.
func (s *Scanner) Scan(ctx context.Context) ([]entity.Extension, error) {
	log := logging.FromContext(ctx)

	sources := make([]source, 0, len(s.dirs)+1)
	if s.includeBuiltin {
		sources = append(sources, source{fs: s.builtin, root: ".", builtin: true})
	}
	for _, dir := range s.dirs {
		sources = append(sources, source{fs: s.fs, root: dir})
	}

	var out []entity.Extension
	for _, src := range sources {
		exts, err := s.scanSource(ctx, src)
		if err != nil {
			return nil, err
		}
		out = append(out, exts...)
	}

	log.Debug().Int("extensions", len(out)).Int("sources", len(sources)).Msg("extension scan complete")
	return out, nil
}

func (s *Scanner) scanSource(ctx context.Context, src source) ([]entity.Extension, error) {
	log := logging.FromContext(ctx)

	entries, err := afero.ReadDir(src.fs, src.root)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("dir", src.root).Msg("extension directory does not exist, skipped")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read extension directory %s: %w", src.root, err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}

	// Slots keep directory order regardless of completion order.
	results := make([]*entity.Extension, len(dirs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ext, ok := s.readExtension(gctx, src, dir)
			if ok {
				results[i] = &ext
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]entity.Extension, 0, len(results))
	for _, ext := range results {
		if ext != nil {
			out = append(out, *ext)
		}
	}
	return out, nil
}

func (s *Scanner) readExtension(ctx context.Context, src source, dir string) (entity.Extension, bool) {
	log := logging.FromContext(ctx)
	manifestPath := src.manifestPath(dir)

	data, err := afero.ReadFile(src.fs, manifestPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("dir", dir).Msg("no manifest, skipped")
		return entity.Extension{}, false
	}
	if err != nil {
		log.Warn().Err(err).Str("manifest", manifestPath).Msg("manifest unreadable, skipped")
		return entity.Extension{}, false
	}

	ext, err := ParseManifest(data)
	if err != nil {
		log.Warn().Err(err).Str("manifest", manifestPath).Msg("malformed manifest, skipped")
		return entity.Extension{}, false
	}
	ext.Location = src.location(dir)
	ext.Builtin = src.builtin
	return ext, true
}
