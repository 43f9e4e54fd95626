package dirsearch

import "github.com/kailas-cloud/dirsearch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound       = domain.ErrNotFound
	ErrEntryNotFound  = domain.ErrEntryNotFound
	ErrInvalidCatalog = domain.ErrInvalidCatalog
	ErrFavoritesLimit = domain.ErrFavoritesLimit
	ErrInvalidRequest = domain.ErrInvalidRequest
)
