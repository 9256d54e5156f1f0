package xdg

import (
	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) CacheDir() (string, error) {
	return config.GetCacheDir()
}

func (a *Adapter) ExtensionsDir() (string, error) {
	return config.GetExtensionsDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
