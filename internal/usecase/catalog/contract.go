package catalog

import (
	"context"

	domcat "github.com/kailas-cloud/dirsearch/internal/domain/catalog"
)

// Repository defines the read contract for catalogs.
type Repository interface {
	Get(ctx context.Context, name string) (*domcat.Catalog, error)
	List(ctx context.Context) ([]*domcat.Catalog, error)
}
