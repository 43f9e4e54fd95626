package search

import (
	"sort"

	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/location"
)

// TopLocal returns up to n catalog entries that match the caller's city or
// country, best quality score first. Entries without a local match are never
// used as padding, so the list may be short or empty.
func TopLocal(cat *catalog.Catalog, loc *location.Context, n int) []entry.Entry {
	if cat == nil {
		return []entry.Entry{}
	}
	return TopLocalFrom(cat.Entries(), loc, n)
}

// TopLocalFrom applies the TopLocal selection to an arbitrary entry slice,
// for example an already filtered result. The input is not modified.
func TopLocalFrom(entries []entry.Entry, loc *location.Context, n int) []entry.Entry {
	if n <= 0 || loc == nil || loc.IsZero() {
		return []entry.Entry{}
	}

	local := make([]entry.Entry, 0, len(entries))
	for i := range entries {
		if LocationTier(&entries[i], loc).IsLocal() {
			local = append(local, entries[i])
		}
	}

	sort.SliceStable(local, func(i, j int) bool {
		return byScoreThenName(&local[i], &local[j])
	})

	if len(local) > n {
		local = local[:n]
	}
	return local
}
