package resource_test

import (
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/infrastructure/resource"
	"github.com/bnema/themehost/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestLoader_ReadFile(t *testing.T) {
	fs := memFs(t, map[string]string{"/ext/acme/themes/dark.json": `{"name": "Acme Dark"}`})
	loader := resource.NewLoader(resource.WithFs(fs))

	data, err := loader.Read(testContext(), "file:///ext/acme/themes/dark.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Acme Dark"}`, string(data))
}

func TestLoader_EscapedPath(t *testing.T) {
	fs := memFs(t, map[string]string{"/ext/my theme/t.json": `{}`})
	loader := resource.NewLoader(resource.WithFs(fs))

	_, err := loader.Read(testContext(), "file:///ext/my%20theme/t.json")
	require.NoError(t, err)
}

func TestLoader_Errors(t *testing.T) {
	fs := memFs(t, map[string]string{"/ext/acme/package.json": `{}`})
	loader := resource.NewLoader(resource.WithFs(fs))

	tests := []struct {
		name string
		uri  string
		kind error
	}{
		{name: "missing file", uri: "file:///ext/acme/missing.json", kind: port.ErrResourceNotFound},
		{name: "directory", uri: "file:///ext/acme", kind: port.ErrResourceUnreadable},
		{name: "unknown scheme", uri: "https://example.com/theme.json", kind: port.ErrResourceUnreadable},
		{name: "missing builtin", uri: "builtin:///nope/package.json", kind: port.ErrResourceNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Read(testContext(), tt.uri)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var resErr *port.ResourceError
			require.ErrorAs(t, err, &resErr)
			assert.Equal(t, tt.uri, resErr.URI)
		})
	}
}

func TestLoader_UnsupportedSchemeCause(t *testing.T) {
	loader := resource.NewLoader()
	_, err := loader.Read(testContext(), "ftp://host/theme.json")
	assert.ErrorIs(t, err, resource.ErrUnsupportedScheme)
}

func TestLoader_PermissionDenied(t *testing.T) {
	fs := afero.NewReadOnlyFs(memFs(t, map[string]string{"/t.json": `{}`}))
	loader := resource.NewLoader(resource.WithFs(permissionFs{Fs: fs}))

	_, err := loader.Read(testContext(), "file:///t.json")
	assert.ErrorIs(t, err, port.ErrResourceUnreadable)
	assert.ErrorIs(t, err, os.ErrPermission)
}

// permissionFs stats fine but refuses to open anything.
type permissionFs struct {
	afero.Fs
}

func (permissionFs) Open(string) (afero.File, error) {
	return nil, os.ErrPermission
}

func TestLoader_Builtin(t *testing.T) {
	loader := resource.NewLoader()

	data, err := loader.Read(testContext(), "builtin:///theme-defaults/themes/dark_defaults.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Default Dark")
}

func TestLoader_InjectedBuiltin(t *testing.T) {
	builtin := fstest.MapFS{"pack/t.json": {Data: []byte(`{"name": "x"}`)}}
	loader := resource.NewLoader(resource.WithBuiltinFs(&afero.FromIOFS{FS: builtin}))

	data, err := loader.Read(testContext(), "builtin:///pack/t.json")
	require.NoError(t, err)
	assert.Equal(t, `{"name": "x"}`, string(data))
}

func TestLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := resource.NewLoader().Read(ctx, "builtin:///theme-defaults/package.json")
	assert.ErrorIs(t, err, context.Canceled)
}
