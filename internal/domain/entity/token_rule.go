package entity

import "slices"

// TokenSettings holds the styling applied by a token rule.
type TokenSettings struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// TokenRule is a syntax highlighting rule. An empty Scope applies the
// settings as editor defaults.
type TokenRule struct {
	Name     string        `json:"name,omitempty"`
	Scope    []string      `json:"scope,omitempty"`
	Settings TokenSettings `json:"settings"`
}

// Clone returns a deep copy of the rule.
func (r TokenRule) Clone() TokenRule {
	r.Scope = slices.Clone(r.Scope)
	return r
}
