package search

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/criteria"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/location"
)

type entryOpt func(p *entry.Params)

func withCats(cats ...string) entryOpt {
	return func(p *entry.Params) { p.Categories = cats }
}

func withTags(tags ...string) entryOpt {
	return func(p *entry.Params) { p.LocationTags = tags }
}

func withScore(s float64) entryOpt {
	return func(p *entry.Params) { p.QualityScore = s }
}

func withPlatform(pl string) entryOpt {
	return func(p *entry.Params) { p.PlatformOrType = pl }
}

func withText(text ...string) entryOpt {
	return func(p *entry.Params) { p.SearchableText = text }
}

func withName(name string) entryOpt {
	return func(p *entry.Params) { p.DisplayName = name }
}

func mkEntry(t *testing.T, key string, opts ...entryOpt) entry.Entry {
	t.Helper()
	p := entry.Params{
		Key:          key,
		DisplayName:  key,
		Categories:   []string{"General"},
		LocationTags: []string{"Global"},
	}
	for _, o := range opts {
		o(&p)
	}
	e, err := entry.New(p)
	if err != nil {
		t.Fatalf("entry.New(%s): %v", key, err)
	}
	return e
}

func mkCatalog(t *testing.T, p catalog.Params) *catalog.Catalog {
	t.Helper()
	if p.Name == "" {
		p.Name = "test"
	}
	c, err := catalog.New(p)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func mkCriteria(t *testing.T, query string, cats []string, region, platform, preset string) criteria.Criteria {
	t.Helper()
	c, err := criteria.New(query, cats, region, platform, preset)
	if err != nil {
		t.Fatalf("criteria.New: %v", err)
	}
	return c
}

func loc(city, country string) *location.Context {
	l := location.New(city, country)
	return &l
}

func keysOf(entries []entry.Entry) string {
	keys := make([]string, len(entries))
	for i := range entries {
		keys[i] = entries[i].Key()
	}
	return strings.Join(keys, ",")
}

// communityCatalog mirrors the five-entry scenario: A, B business in Bangkok,
// C sports in Bangkok, D business global, E sports in Chiang Mai.
func communityCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return mkCatalog(t, catalog.Params{
		Name:          "communities",
		CategoryOrder: []string{"Business", "Sports"},
		Platforms:     []string{"Facebook", "LINE", "Discord"},
		Presets: map[string][]string{
			"work": {"Business"},
			"fun":  {"Sports"},
		},
		Entries: []entry.Entry{
			mkEntry(t, "A", withName("Alpha Founders"), withCats("Business"),
				withTags("Bangkok", "Thailand"), withScore(500), withPlatform("Facebook")),
			mkEntry(t, "B", withName("Beta Network"), withCats("Business"),
				withTags("Bangkok", "Thailand"), withScore(900), withPlatform("LINE")),
			mkEntry(t, "C", withName("Court Club"), withCats("Sports"),
				withTags("Bangkok", "Thailand"), withScore(300), withPlatform("LINE")),
			mkEntry(t, "D", withName("Digital Nomads"), withCats("Business"),
				withTags("Global"), withScore(10000), withPlatform("Discord")),
			mkEntry(t, "E", withName("Elephant Runners"), withCats("Sports", "Business"),
				withTags("Chiang Mai", "Thailand"), withScore(50), withPlatform("Facebook"),
				withText("Weekend trail runs", "Best for: expats")),
		},
	})
}
