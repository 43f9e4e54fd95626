package domain

import "errors"

var (
	// ErrNotFound signals a missing catalog.
	ErrNotFound = errors.New("not found")
	// ErrEntryNotFound signals a key that is not part of the catalog.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrInvalidCatalog signals catalog data that violates load-time invariants.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrInvalidEntry signals a directory entry that violates its invariants.
	ErrInvalidEntry = errors.New("invalid entry")
	// ErrFavoritesLimit signals an add past the configured favorites maximum.
	ErrFavoritesLimit = errors.New("favorites limit reached")
	// ErrInvalidRequest signals caller input rejected at the boundary.
	ErrInvalidRequest = errors.New("invalid request")
)
