package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	CacheDir() (string, error)

	// ExtensionsDir is the default user extensions directory.
	ExtensionsDir() (string, error)
}
