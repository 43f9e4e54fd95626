package dirsearch

import (
	domcat "github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/location"
	searchuc "github.com/kailas-cloud/dirsearch/internal/usecase/search"
)

// All clears a facet when passed as Region, Platform or a category.
const All = "all"

// Tier values reported in Entry.Tier.
const (
	TierCity    = int(searchuc.TierCity)
	TierCountry = int(searchuc.TierCountry)
	TierNone    = int(searchuc.TierNone)
)

// Query selects entries. The zero value matches the whole catalog.
type Query struct {
	Text       string
	Categories []string
	Region     string // city or country; "" or All for any
	Platform   string
	Preset     string // preset id; its categories override Categories
}

// Location is the caller's city and country, used for ranking.
type Location struct {
	City    string
	Country string
}

func (l *Location) toInternal() *location.Context {
	if l == nil {
		return nil
	}
	return location.New(l.City, l.Country).Pointer()
}

// CatalogInfo describes a loaded catalog.
type CatalogInfo struct {
	Name       string
	Title      string
	Entries    int
	Categories []string // display order
	Platforms  []string
	Presets    []string
}

// Entry is one directory listing.
type Entry struct {
	Key        string
	Name       string
	Text       []string
	Categories []string
	Platform   string
	Locations  []string // most specific first
	Score      float64
	Verified   bool
	URL        string
	// Tier is the location tier relative to the query Location, -1 without one.
	Tier int
}

// Result is the outcome of Filter.
type Result struct {
	Entries     []Entry
	TotalBefore int
	TotalAfter  int
}

// Group is one category bucket of Group's result.
type Group struct {
	Category string
	Entries  []Entry
}

func fromInternalCatalog(c *domcat.Catalog) CatalogInfo {
	return CatalogInfo{
		Name:       c.Name(),
		Title:      c.Title(),
		Entries:    c.Len(),
		Categories: c.CategoryOrder(),
		Platforms:  c.Platforms(),
		Presets:    c.PresetIDs(),
	}
}

func fromInternalEntry(e *entry.Entry, loc *location.Context) Entry {
	tier := -1
	if loc != nil {
		tier = int(searchuc.LocationTier(e, loc))
	}
	return Entry{
		Key:        e.Key(),
		Name:       e.DisplayName(),
		Text:       e.SearchableText(),
		Categories: e.Categories(),
		Platform:   e.PlatformOrType(),
		Locations:  e.LocationTags(),
		Score:      e.QualityScore(),
		Verified:   e.Verified(),
		URL:        e.URL(),
		Tier:       tier,
	}
}

func fromInternalEntries(in []entry.Entry, loc *location.Context) []Entry {
	out := make([]Entry, len(in))
	for i := range in {
		out[i] = fromInternalEntry(&in[i], loc)
	}
	return out
}
