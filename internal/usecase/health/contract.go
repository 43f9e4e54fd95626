package health

import "context"

// CatalogChecker reports whether catalogs are loaded.
type CatalogChecker interface {
	Check(ctx context.Context) error
}

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}
