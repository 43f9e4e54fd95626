package dirsearch

import (
	"context"
	"fmt"
)

// Hit is a typed search result.
type Hit[T any] struct {
	Item  T
	Tier  int // -1 without a location
	Score float64
}

// SearchBuilder is a fluent builder for typed catalog queries.
type SearchBuilder[T any] struct {
	idx   *TypedIndex[T]
	q     Query
	loc   *Location
	limit int
}

// Text sets the free-text query.
func (b *SearchBuilder[T]) Text(q string) *SearchBuilder[T] {
	b.q.Text = q
	return b
}

// Category adds categories; an entry matches when it has any of them.
func (b *SearchBuilder[T]) Category(labels ...string) *SearchBuilder[T] {
	b.q.Categories = append(b.q.Categories, labels...)
	return b
}

// Region restricts results to a city or country.
func (b *SearchBuilder[T]) Region(region string) *SearchBuilder[T] {
	b.q.Region = region
	return b
}

// Platform restricts results to one platform or type.
func (b *SearchBuilder[T]) Platform(platform string) *SearchBuilder[T] {
	b.q.Platform = platform
	return b
}

// Preset applies a catalog preset.
func (b *SearchBuilder[T]) Preset(id string) *SearchBuilder[T] {
	b.q.Preset = id
	return b
}

// Near ranks results relative to the caller's city and country.
func (b *SearchBuilder[T]) Near(city, country string) *SearchBuilder[T] {
	b.loc = &Location{City: city, Country: country}
	return b
}

// Limit caps the number of results. 0 returns all.
func (b *SearchBuilder[T]) Limit(n int) *SearchBuilder[T] {
	b.limit = n
	return b
}

// Do executes the query and returns typed results in rank order.
func (b *SearchBuilder[T]) Do(ctx context.Context) ([]Hit[T], error) {
	res, err := b.idx.client.Filter(ctx, b.idx.catalog, b.q, b.loc)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", b.idx.catalog, err)
	}
	entries := res.Entries
	if b.limit > 0 && len(entries) > b.limit {
		entries = entries[:b.limit]
	}
	return b.idx.toHits(entries), nil
}
