// Package websearch discovers candidate pages for expanded keywords.
package websearch

import (
	"context"

	"github.com/NageshProgrammer/leadequator/core"
)

// SearchProvider executes one keyword query against a web search backend.
type SearchProvider interface {
	// Search returns raw hits for the keyword. An empty slice is a valid
	// answer for keywords with no results.
	Search(ctx context.Context, keyword string) ([]core.RawResult, error)
}

// ProviderFunc adapts a function to the SearchProvider interface.
type ProviderFunc func(ctx context.Context, keyword string) ([]core.RawResult, error)

// Search implements SearchProvider.
func (f ProviderFunc) Search(ctx context.Context, keyword string) ([]core.RawResult, error) {
	return f(ctx, keyword)
}
