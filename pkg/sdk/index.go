package dirsearch

import (
	"context"
	"fmt"

	catalogrepo "github.com/kailas-cloud/dirsearch/internal/repository/catalog"
)

// TypedIndex is a schema-first view of one catalog: results are decoded into
// T using its dirsearch struct tags.
type TypedIndex[T any] struct {
	catalog string
	client  *Client
	meta    *schemaMeta
}

// NewIndex creates a typed handle for the named catalog.
// T must be a struct with dirsearch tags. The schema is parsed once.
func NewIndex[T any](client *Client, catalog string) (*TypedIndex[T], error) {
	meta, err := parseSchema[T]()
	if err != nil {
		return nil, fmt.Errorf("new index %q: %w", catalog, err)
	}
	return &TypedIndex[T]{catalog: catalog, client: client, meta: meta}, nil
}

// Search returns a fluent query builder for this catalog.
func (idx *TypedIndex[T]) Search() *SearchBuilder[T] {
	return &SearchBuilder[T]{idx: idx}
}

// Top returns up to n typed entries local to loc.
func (idx *TypedIndex[T]) Top(ctx context.Context, loc *Location, n int) ([]Hit[T], error) {
	entries, err := idx.client.TopLocal(ctx, idx.catalog, loc, n)
	if err != nil {
		return nil, err
	}
	return idx.toHits(entries), nil
}

// Favorites returns the owner's favorites decoded into T, in favorite order.
// Keys no longer present in the catalog are skipped.
func (idx *TypedIndex[T]) Favorites(ctx context.Context, owner string) ([]T, error) {
	keys, err := idx.client.Favorites(ctx, owner, idx.catalog)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []T{}, nil
	}
	res, err := idx.client.Filter(ctx, idx.catalog, Query{}, nil)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]*Entry, len(res.Entries))
	for i := range res.Entries {
		byKey[res.Entries[i].Key] = &res.Entries[i]
	}
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		if e, ok := byKey[k]; ok {
			if item, ok := idx.meta.fromEntry(e).(T); ok {
				out = append(out, item)
			}
		}
	}
	return out, nil
}

func (idx *TypedIndex[T]) toHits(entries []Entry) []Hit[T] {
	hits := make([]Hit[T], 0, len(entries))
	for i := range entries {
		item, ok := idx.meta.fromEntry(&entries[i]).(T)
		if !ok {
			continue
		}
		hits = append(hits, Hit[T]{Item: item, Tier: entries[i].Tier, Score: entries[i].Score})
	}
	return hits
}

// EncodeCatalog renders tagged structs as a catalog YAML file suitable for
// WithCatalogDir. The catalog is validated before encoding.
func EncodeCatalog[T any](name, title string, items []T) ([]byte, error) {
	meta, err := parseSchema[T]()
	if err != nil {
		return nil, err
	}
	f := catalogrepo.File{
		Name:    name,
		Title:   title,
		Entries: make([]catalogrepo.EntryFile, len(items)),
	}
	for i := range items {
		f.Entries[i] = meta.toEntryFile(items[i])
	}
	if _, err := f.ToDomain(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return catalogrepo.Encode(f)
}
