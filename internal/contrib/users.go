// Package contrib indexes contributions declared by installed extensions
// and routes them to registered contribution points.
package contrib

import (
	"context"
	"encoding/json"

	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/logging"
)

// User is one extension's raw declaration for a contribution point.
type User struct {
	Extension entity.Extension
	Value     json.RawMessage
	Collector *Collector
}

// BuildUsers keeps the extensions that declare point, in input order, and
// pairs each raw value with a collector bound to that extension. Values are
// not validated here.
func BuildUsers(ctx context.Context, extensions []entity.Extension, point string) []User {
	log := logging.FromContext(ctx).With().Str("component", "contrib").Logger()

	users := make([]User, 0, len(extensions))
	for _, ext := range extensions {
		value, ok := ext.Contribution(point)
		if !ok {
			continue
		}

		log.Debug().
			Str("extension", ext.ID()).
			Str("point", point).
			Msg("extension declares contribution")

		users = append(users, User{
			Extension: ext,
			Value:     value,
			Collector: NewCollector(ctx, ext.ID(), point),
		})
	}
	return users
}

// Messages flattens the diagnostics of every user's collector.
func Messages(users []User) []Message {
	var out []Message
	for _, u := range users {
		if u.Collector == nil {
			continue
		}
		out = append(out, u.Collector.Messages()...)
	}
	return out
}
