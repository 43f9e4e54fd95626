package search

import (
	"context"
	"time"

	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
)

// CatalogReader resolves catalogs by name.
type CatalogReader interface {
	Get(ctx context.Context, name string) (*catalog.Catalog, error)
}

// Recorder receives per-query engine measurements.
type Recorder interface {
	ObserveFilter(catalog string, elapsed time.Duration, totalAfter int)
	ObserveTopLocal(catalog string, elapsed time.Duration, returned int)
}
