package resource

import (
	"bytes"
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/logging"
)

// CachingLoader memoizes successful reads of another loader.
// Failures are never cached.
type CachingLoader struct {
	next   port.ResourceLoader
	cache  port.Cache[string, []byte]
	flight singleflight.Group
}

// NewCachingLoader wraps next with cache.
func NewCachingLoader(next port.ResourceLoader, cache port.Cache[string, []byte]) *CachingLoader {
	return &CachingLoader{next: next, cache: cache}
}

var _ port.ResourceLoader = (*CachingLoader)(nil)

// Read returns a private copy of the cached bytes, reading through on a miss.
// A read shared by several callers is not cut short when one of them gives up.
func (c *CachingLoader) Read(ctx context.Context, uri string) ([]byte, error) {
	if data, ok := c.cache.Get(uri); ok {
		logging.FromContext(ctx).Trace().Str("uri", uri).Msg("resource cache hit")
		return bytes.Clone(data), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	readCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(uri, func() (any, error) {
		data, err := c.next.Read(readCtx, uri)
		if err != nil {
			return nil, err
		}
		c.cache.Set(uri, data)
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return bytes.Clone(res.Val.([]byte)), nil
	}
}

// Invalidate drops uri from the cache.
func (c *CachingLoader) Invalidate(uri string) {
	c.cache.Remove(uri)
}
