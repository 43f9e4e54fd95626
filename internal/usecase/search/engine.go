package search

import (
	"strings"

	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/criteria"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/location"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
)

// Filter narrows and ranks a catalog. It is pure and total: no I/O, no state
// kept between calls, and an empty result is a normal outcome.
//
// Stages run in a fixed order: preset resolution, platform facet, category
// facet, location facet, text search, ranking. loc may be nil.
func Filter(cat *catalog.Catalog, crit criteria.Criteria, loc *location.Context) result.Filtered {
	if cat == nil {
		return result.New(nil, 0)
	}
	if loc != nil && loc.IsZero() {
		loc = nil
	}

	working := cat.Entries()
	total := len(working)

	categories := effectiveCategories(cat, crit)

	if p := crit.Platform(); p != "" && cat.HasPlatform(p) {
		working = keep(working, func(e *entry.Entry) bool { return matchesPlatform(e, p) })
	}

	if len(categories) > 0 {
		set := toSet(categories)
		working = keep(working, func(e *entry.Entry) bool { return matchesAnyCategory(e, set) })
	}

	if crit.HasRegion() {
		region := strings.ToLower(crit.Region())
		working = keep(working, func(e *entry.Entry) bool { return matchesRegion(e, region, loc) })
	}

	if q := crit.Query(); q != "" {
		q = strings.ToLower(q)
		working = keep(working, func(e *entry.Entry) bool { return matchesQuery(e, q) })
	}

	return result.New(rank(working, loc), total)
}

// effectiveCategories resolves the preset when it is known to the catalog;
// an unknown preset falls back to the manual selection.
func effectiveCategories(cat *catalog.Catalog, crit criteria.Criteria) []string {
	if id := crit.Preset(); id != "" {
		if cats, ok := cat.ResolvePreset(id); ok {
			return cats
		}
	}
	return crit.Categories()
}

// keep filters in place; entries is always a private copy.
func keep(entries []entry.Entry, pred func(e *entry.Entry) bool) []entry.Entry {
	out := entries[:0]
	for i := range entries {
		if pred(&entries[i]) {
			out = append(out, entries[i])
		}
	}
	return out
}
