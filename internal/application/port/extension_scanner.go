// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"

	"github.com/bnema/themehost/internal/domain/entity"
)

// ExtensionScanner discovers installed extensions.
type ExtensionScanner interface {
	// Scan returns every installed extension in a stable order.
	// Errors are returned unchanged to the caller.
	Scan(ctx context.Context) ([]entity.Extension, error)
}
