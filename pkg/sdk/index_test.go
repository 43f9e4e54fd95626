package dirsearch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

type club struct {
	Key      string   `dirsearch:"key"`
	Name     string   `dirsearch:"name"`
	Cats     []string `dirsearch:"categories"`
	City     string   `dirsearch:"locations"`
	Score    int      `dirsearch:"score"`
	Platform string   `dirsearch:"platform"`
	Note     string
}

type shop struct {
	ID       string   `dirsearch:"key"`
	Title    string   `dirsearch:"name"`
	Blurb    string   `dirsearch:"text"`
	Kind     string   `dirsearch:"categories"`
	Where    []string `dirsearch:"locations"`
	Rating   float32  `dirsearch:"score"`
	Checked  bool     `dirsearch:"verified"`
	Homepage string   `dirsearch:"url"`
	Internal string   `dirsearch:"-"`
}

func TestParseSchema(t *testing.T) {
	if _, err := parseSchema[club](); err != nil {
		t.Fatalf("club: %v", err)
	}
	if _, err := parseSchema[*shop](); err != nil {
		t.Fatalf("pointer type: %v", err)
	}

	tests := []struct {
		name string
		fn   func() (*schemaMeta, error)
	}{
		{"non struct", parseSchema[int]},
		{"interface", parseSchema[any]},
		{"missing name", parseSchema[struct {
			K string `dirsearch:"key"`
		}]},
		{"unknown role", parseSchema[struct {
			K string `dirsearch:"key"`
			N string `dirsearch:"title"`
		}]},
		{"duplicate role", parseSchema[struct {
			K  string `dirsearch:"key"`
			N  string `dirsearch:"name"`
			N2 string `dirsearch:"name"`
		}]},
		{"wrong kind", parseSchema[struct {
			K string `dirsearch:"key"`
			N string `dirsearch:"name"`
			S string `dirsearch:"score"`
		}]},
		{"int slice locations", parseSchema[struct {
			K string `dirsearch:"key"`
			N string `dirsearch:"name"`
			L []int  `dirsearch:"locations"`
		}]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.fn(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSchema_EntryConversion(t *testing.T) {
	meta, err := parseSchema[shop]()
	if err != nil {
		t.Fatal(err)
	}
	in := shop{
		ID: "s1", Title: "Scooter Hub", Blurb: "Honda Click rentals", Kind: "Scooters",
		Where: []string{"Phuket", "Thailand"}, Rating: 4.5, Checked: true,
		Homepage: "https://example.com", Internal: "ignored",
	}

	f := meta.toEntryFile(&in)
	if f.Key != "s1" || f.Name != "Scooter Hub" || strings.Join(f.Categories, ",") != "Scooters" {
		t.Errorf("unexpected entry file %+v", f)
	}
	if strings.Join(f.Text, ",") != "Honda Click rentals" || f.Score != 4.5 || !f.Verified {
		t.Errorf("unexpected entry file %+v", f)
	}

	e := Entry{
		Key: f.Key, Name: f.Name, Text: f.Text, Categories: f.Categories,
		Locations: f.Locations, Score: f.Score, Verified: f.Verified, URL: f.URL,
	}
	out, ok := meta.fromEntry(&e).(shop)
	if !ok {
		t.Fatal("fromEntry returned wrong type")
	}
	in.Internal = ""
	if out.ID != in.ID || out.Kind != in.Kind || out.Rating != in.Rating ||
		strings.Join(out.Where, ",") != "Phuket,Thailand" || out.Homepage != in.Homepage || !out.Checked {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestEncodeCatalog(t *testing.T) {
	clubs := []club{
		{Key: "run", Name: "Run Club", Cats: []string{"Sports"}, City: "Bangkok", Score: 10, Platform: "LINE"},
		{Key: "biz", Name: "Founders", Cats: []string{"Business"}, City: "Phuket", Score: 20},
	}
	data, err := EncodeCatalog("clubs", "Clubs", clubs)
	if err != nil {
		t.Fatalf("EncodeCatalog: %v", err)
	}

	c, err := New(context.Background(), WithCatalogFS(fstest.MapFS{"clubs.yaml": {Data: data}}, "."))
	if err != nil {
		t.Fatalf("load encoded catalog: %v", err)
	}
	defer c.Close()

	info, err := c.Catalog(context.Background(), "clubs")
	if err != nil || info.Entries != 2 {
		t.Fatalf("catalog = %+v, %v", info, err)
	}

	_, err = EncodeCatalog("clubs", "", []club{{Key: "x", Name: "No category", City: "Bangkok"}})
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("expected ErrInvalidCatalog, got %v", err)
	}
}

type testEntry struct {
	Key       string   `dirsearch:"key"`
	Name      string   `dirsearch:"name"`
	Locations []string `dirsearch:"locations"`
	Score     float64  `dirsearch:"score"`
}

func TestTypedIndex(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	idx, err := NewIndex[testEntry](c, "clubs")
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	hits, err := idx.Search().Category("Business").Near("Bangkok", "TH").Limit(3).Do(ctx)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got []string
	for _, h := range hits {
		got = append(got, h.Item.Key)
	}
	if strings.Join(got, ",") != "B,A,E" {
		t.Errorf("keys = %v, want B,A,E", got)
	}
	if hits[0].Tier != TierCity || hits[0].Item.Score != 900 || hits[2].Tier != TierCountry {
		t.Errorf("unexpected hits %+v", hits)
	}

	top, err := idx.Top(ctx, bangkok, 1)
	if err != nil || len(top) != 1 || top[0].Item.Name != "Bravo Biz" {
		t.Errorf("top = %+v, %v", top, err)
	}

	if _, err := idx.Search().Text("x").Do(ctx); err != nil {
		t.Errorf("empty result must not fail: %v", err)
	}

	_, _, _ = c.ToggleFavorite(ctx, "u1", "clubs", "E")
	_, _, _ = c.ToggleFavorite(ctx, "u1", "clubs", "A")
	favs, err := idx.Favorites(ctx, "u1")
	if err != nil {
		t.Fatalf("Favorites: %v", err)
	}
	if len(favs) != 2 || favs[0].Key != "E" || favs[1].Key != "A" {
		t.Errorf("favorites = %+v", favs)
	}
}

func TestSearchBuilder_Chaining(t *testing.T) {
	idx, err := NewIndex[testEntry](nil, "clubs")
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	b := idx.Search().
		Text("run").
		Category("Sports").
		Category("Business").
		Region("TH").
		Platform("LINE").
		Preset("work").
		Near("Bangkok", "TH").
		Limit(5)

	if b.q.Text != "run" || len(b.q.Categories) != 2 || b.q.Region != "TH" ||
		b.q.Platform != "LINE" || b.q.Preset != "work" || b.limit != 5 {
		t.Errorf("builder state = %+v", b)
	}
	if b.loc == nil || b.loc.City != "Bangkok" {
		t.Errorf("location = %+v", b.loc)
	}
}
