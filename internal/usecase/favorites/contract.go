package favorites

import (
	"context"

	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	domfav "github.com/kailas-cloud/dirsearch/internal/domain/favorites"
)

// Repository defines the storage contract for favorites.
type Repository interface {
	Load(ctx context.Context, owner, catalog string) (domfav.Registry, error)
	Save(ctx context.Context, owner, catalog string, reg domfav.Registry) error
	Delete(ctx context.Context, owner, catalog string) error
}

// CatalogReader resolves catalogs by name.
type CatalogReader interface {
	Get(ctx context.Context, name string) (*catalog.Catalog, error)
}

// Recorder counts toggles by action ("add" or "remove").
type Recorder interface {
	ObserveToggle(catalog, action string)
}
