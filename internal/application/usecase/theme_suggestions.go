package usecase

import "github.com/sahilm/fuzzy"

const maxSuggestions = 3

// suggestSettingsIDs returns the registered identifiers closest to id.
func suggestSettingsIDs(id string, known []string) []string {
	if id == "" || len(known) == 0 {
		return nil
	}
	matches := fuzzy.Find(id, known)
	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
