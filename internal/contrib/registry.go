package contrib

import (
	"sort"
	"sync"
)

// Registry holds contribution points by name. It is constructed explicitly
// and shared by reference.
type Registry struct {
	mu     sync.RWMutex
	points map[string]*Point
}

// NewRegistry creates an empty contribution point registry.
func NewRegistry() *Registry {
	return &Registry{
		points: make(map[string]*Point),
	}
}

// Register adds a point. Registering a name twice returns a
// *DuplicateRegistrationError carrying the existing point.
func (r *Registry) Register(desc PointDescriptor) (*Point, error) {
	if desc.Name == "" {
		return nil, ErrInvalidPointName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.points[desc.Name]; ok {
		return nil, &DuplicateRegistrationError{Name: desc.Name, Existing: existing}
	}

	p := &Point{desc: desc}
	r.points[desc.Name] = p
	return p, nil
}

// Lookup returns the point registered under name.
func (r *Registry) Lookup(name string) (*Point, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.points[name]
	return p, ok
}

// Names returns the registered point names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.points))
	for name := range r.points {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
