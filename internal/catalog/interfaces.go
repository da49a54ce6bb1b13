package catalog

import (
	"context"

	"github.com/sweetbird/sweet-catalog/internal/model"
)

// Fetcher defines the interface for the catalog client.
// This interface is implemented by *Service and can be used for testing.
type Fetcher interface {
	FetchItems(ctx context.Context) ([]model.CatalogItem, error)
}

// Ensure Service implements Fetcher at compile time.
var _ Fetcher = (*Service)(nil)
