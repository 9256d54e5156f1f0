package contrib

import (
	"context"
	"sync"

	"github.com/invopop/jsonschema"
)

// Handler consumes the users of a contribution point.
type Handler interface {
	AcceptUsers(ctx context.Context, users []User) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, users []User) error

func (f HandlerFunc) AcceptUsers(ctx context.Context, users []User) error {
	return f(ctx, users)
}

// PointDescriptor describes a contribution point at registration.
type PointDescriptor struct {
	Name        string
	Description string
	Schema      *jsonschema.Schema
}

// Point is a registered contribution point.
type Point struct {
	desc PointDescriptor

	mu      sync.RWMutex
	handler Handler
}

func (p *Point) Name() string { return p.desc.Name }
func (p *Point) Description() string { return p.desc.Description }
func (p *Point) Schema() *jsonschema.Schema { return p.desc.Schema }

// SetHandler installs the handler. A point accepts exactly one handler.
func (p *Point) SetHandler(h Handler) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handler != nil {
		return ErrHandlerAlreadySet
	}
	p.handler = h
	return nil
}

// HasHandler reports whether a handler is installed.
func (p *Point) HasHandler() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.handler != nil
}

// Handler returns the installed handler, or nil.
func (p *Point) Handler() Handler {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.handler
}

// AcceptUsers delivers users to the installed handler.
func (p *Point) AcceptUsers(ctx context.Context, users []User) error {
	p.mu.RLock()
	h := p.handler
	p.mu.RUnlock()

	if h == nil {
		return ErrNoHandler
	}
	return h.AcceptUsers(ctx, users)
}
