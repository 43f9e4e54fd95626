package search

import (
	"sort"

	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/location"
)

// Tier is the coarse location-match bucket; lower ranks first.
type Tier int

// Location match tiers.
const (
	TierCity    Tier = 0
	TierCountry Tier = 1
	TierNone    Tier = 2
)

// IsLocal reports whether the tier is a city or country match.
func (t Tier) IsLocal() bool { return t <= TierCountry }

// LocationTier classifies an entry against the caller's location.
// City: the most specific tag equals the city. Country: any tag equals the country.
func LocationTier(e *entry.Entry, loc *location.Context) Tier {
	if loc == nil {
		return TierNone
	}
	if loc.MatchesCity(e.CityTag()) {
		return TierCity
	}
	if e.EachLocationTag(loc.MatchesCountry) {
		return TierCountry
	}
	return TierNone
}

type ranked struct {
	entry entry.Entry
	tier  Tier
}

// rank orders entries by tier ascending, quality score descending, display
// name ascending, then key ascending so equal-looking entries still have a
// fixed order.
func rank(entries []entry.Entry, loc *location.Context) []entry.Entry {
	rs := make([]ranked, len(entries))
	for i := range entries {
		rs[i] = ranked{entry: entries[i], tier: LocationTier(&entries[i], loc)}
	}

	sort.SliceStable(rs, func(i, j int) bool {
		a, b := &rs[i], &rs[j]
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		return byScoreThenName(&a.entry, &b.entry)
	})

	out := make([]entry.Entry, len(rs))
	for i := range rs {
		out[i] = rs[i].entry
	}
	return out
}

func byScoreThenName(a, b *entry.Entry) bool {
	if a.QualityScore() != b.QualityScore() {
		return a.QualityScore() > b.QualityScore()
	}
	if a.DisplayName() != b.DisplayName() {
		return a.DisplayName() < b.DisplayName()
	}
	return a.Key() < b.Key()
}
