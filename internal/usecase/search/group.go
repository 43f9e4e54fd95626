package search

import (
	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
)

// GroupByCategory buckets a filtered result by category. Grouping is not
// exclusive: an entry with N categories lands in N buckets. Buckets follow
// order; labels missing from order are appended in order of first appearance.
// Empty buckets are omitted. Within a bucket the engine order is kept.
func GroupByCategory(res *result.Filtered, order []string) []result.Group {
	buckets := make(map[string][]entry.Entry, len(order))
	var extra []string

	known := toSet(order)
	entries := res.Entries()
	for i := range entries {
		e := entries[i]
		e.EachCategory(func(c string) bool {
			if _, ok := known[c]; !ok {
				if _, seen := buckets[c]; !seen {
					extra = append(extra, c)
				}
			}
			buckets[c] = append(buckets[c], e)
			return false
		})
	}

	groups := make([]result.Group, 0, len(buckets))
	for _, label := range order {
		if b, ok := buckets[label]; ok {
			groups = append(groups, result.NewGroup(label, b))
		}
	}
	for _, label := range extra {
		groups = append(groups, result.NewGroup(label, buckets[label]))
	}
	return groups
}
