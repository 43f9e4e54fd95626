package search

import (
	"strings"

	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/location"
)

// matchesPlatform is an exact, case-sensitive label match.
func matchesPlatform(e *entry.Entry, platform string) bool {
	return e.PlatformOrType() == platform
}

// matchesAnyCategory is OR semantics: one shared label is enough.
func matchesAnyCategory(e *entry.Entry, set map[string]struct{}) bool {
	return e.EachCategory(func(c string) bool {
		_, ok := set[c]
		return ok
	})
}

// matchesRegion keeps entries tagged with the selected region, plus entries in
// the caller's own country regardless of the region picked.
func matchesRegion(e *entry.Entry, regionLower string, loc *location.Context) bool {
	if e.EachLocationTag(func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), regionLower)
	}) {
		return true
	}
	return loc != nil && e.EachLocationTag(loc.MatchesCountry)
}

// matchesQuery is plain lowercase substring containment.
func matchesQuery(e *entry.Entry, queryLower string) bool {
	return e.EachSearchable(func(s string) bool {
		return strings.Contains(strings.ToLower(s), queryLower)
	})
}

func toSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}
