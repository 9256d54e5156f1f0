package theme_test

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// memLoader serves resources from memory and counts reads per URI.
type memLoader struct {
	mu    sync.Mutex
	files map[string]string
	reads map[string]*atomic.Int32
}

func newMemLoader(files map[string]string) *memLoader {
	return &memLoader{files: files, reads: make(map[string]*atomic.Int32)}
}

func (l *memLoader) Read(_ context.Context, uri string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.reads[uri] == nil {
		l.reads[uri] = new(atomic.Int32)
	}
	l.reads[uri].Add(1)

	data, ok := l.files[uri]
	if !ok {
		return nil, &port.ResourceError{URI: uri, Kind: port.ErrResourceNotFound}
	}
	return []byte(data), nil
}

func (l *memLoader) set(uri, data string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files[uri] = data
}

func (l *memLoader) count(uri string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.reads[uri] == nil {
		return 0
	}
	return int(l.reads[uri].Load())
}
