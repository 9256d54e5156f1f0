package theme

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registry indexes descriptors by settings identifier. Lookups are exact and
// case-sensitive; listing follows first registration order. Entries are
// never removed.
type Registry struct {
	mu      sync.RWMutex
	entries *orderedmap.OrderedMap[string, *Descriptor]
}

// Replaced records a descriptor displaced by ReplaceBatch. InBatch is set
// when the displaced descriptor came from the same batch.
type Replaced struct {
	SettingsID string
	Previous   *Descriptor
	Current    *Descriptor
	InBatch    bool
}

// NewRegistry creates an empty theme registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: orderedmap.New[string, *Descriptor](),
	}
}

// FindBySettingsID returns the descriptor registered under id. A miss is a
// normal outcome.
func (r *Registry) FindBySettingsID(id string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries.Get(id)
}

// FindByID returns the descriptor with the given internal id.
func (r *Registry) FindByID(id string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.ID == id {
			return pair.Value, true
		}
	}
	return nil, false
}

// List returns the registered descriptors in registration order.
func (r *Registry) List() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// SettingsIDs returns the registered settings identifiers in registration order.
func (r *Registry) SettingsIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Len returns the number of registered settings identifiers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries.Len()
}

// ReplaceBatch inserts or overwrites every descriptor under its settings
// identifier in one write-locked step. Later descriptors in descs win over
// earlier ones with the same identifier.
func (r *Registry) ReplaceBatch(descs []*Descriptor) []Replaced {
	var replaced []Replaced
	inBatch := make(map[string]*Descriptor, len(descs))

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range descs {
		if d == nil {
			continue
		}
		prev, present := r.entries.Set(d.SettingsID, d)
		if present {
			replaced = append(replaced, Replaced{
				SettingsID: d.SettingsID,
				Previous:   prev,
				Current:    d,
				InBatch:    inBatch[d.SettingsID] == prev,
			})
		}
		inBatch[d.SettingsID] = d
	}
	return replaced
}
