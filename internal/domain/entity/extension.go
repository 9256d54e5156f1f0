package entity

import (
	"encoding/json"
	"strings"
)

// Extension is an installed extension as reported by a scanner.
// It is immutable for the lifetime of a scan.
type Extension struct {
	Name        string
	Publisher   string
	Version     string
	DisplayName string

	// Location is the URI of the extension root ("file:///..." or "builtin:///...").
	Location string
	Builtin  bool

	// Contributes maps contribution point names to the raw declared value.
	Contributes map[string]json.RawMessage
}

// ID returns the canonical "publisher.name" identifier, lower-cased.
// Extensions without a publisher are identified by name alone.
func (e Extension) ID() string {
	name := strings.ToLower(strings.TrimSpace(e.Name))
	publisher := strings.ToLower(strings.TrimSpace(e.Publisher))
	if publisher == "" {
		return name
	}
	return publisher + "." + name
}

// Contribution returns the raw value declared under the given point name.
func (e Extension) Contribution(point string) (json.RawMessage, bool) {
	if e.Contributes == nil {
		return nil, false
	}
	raw, ok := e.Contributes[point]
	return raw, ok
}
