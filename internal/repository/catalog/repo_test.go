package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/kailas-cloud/dirsearch/internal/domain"
)

const minimalYAML = `
name: demo
title: Demo
categories: [A, B]
platforms: [X]
presets:
  only-a: [A]
entries:
  - key: one
    name: One
    categories: [A]
    platform: X
    locations: [Bangkok, Thailand]
    score: 10
  - key: two
    name: Two
    text: [second entry]
    categories: [B, A]
    locations: [Global]
    score: 5
    url: https://example.com/two
`

func TestRepo_Embedded(t *testing.T) {
	r := New(Options{Embedded: true}, nil)
	cats, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("embedded catalogs must load: %v", err)
	}
	want := []string{"communities", "delivery", "esim", "rentals"}
	if len(cats) != len(want) {
		t.Fatalf("expected %d catalogs, got %d", len(want), len(cats))
	}
	for i, c := range cats {
		if c.Name() != want[i] {
			t.Errorf("catalog[%d]: expected %s, got %s", i, want[i], c.Name())
		}
		if c.Len() == 0 {
			t.Errorf("catalog %s is empty", c.Name())
		}
	}
}

func TestRepo_GetFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"cats/demo.yaml":  {Data: []byte(minimalYAML)},
		"cats/README.md":  {Data: []byte("ignored")},
		"cats/nested/x.y": {Data: []byte("ignored")},
	}
	r := NewFromFS(fsys, "cats", nil)

	c, err := r.Get(context.Background(), "demo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title() != "Demo" || c.Len() != 2 {
		t.Errorf("unexpected catalog: title=%s len=%d", c.Title(), c.Len())
	}
	e, ok := c.Entry("two")
	if !ok {
		t.Fatal("expected entry two")
	}
	if e.URL() != "https://example.com/two" {
		t.Errorf("unexpected url %q", e.URL())
	}
	if ids := c.PresetIDs(); len(ids) != 1 || ids[0] != "only-a" {
		t.Errorf("unexpected presets %v", ids)
	}
}

func TestRepo_GetUnknown(t *testing.T) {
	r := NewFromFS(fstest.MapFS{"c/demo.yml": {Data: []byte(minimalYAML)}}, "c", nil)
	_, err := r.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_InvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "name: [unterminated"},
		{"unknown field", "name: x\nbogus: 1\nentries: []\n"},
		{"missing categories", `
name: x
entries:
  - key: a
    name: A
    locations: [Global]
`},
		{"undeclared category", `
name: x
categories: [A]
entries:
  - key: a
    name: A
    categories: [B]
    locations: [Global]
`},
		{"undeclared platform", `
name: x
platforms: [P]
entries:
  - key: a
    name: A
    categories: [A]
    platform: Q
    locations: [Global]
`},
		{"duplicate key", `
name: x
entries:
  - key: a
    name: A
    categories: [A]
    locations: [Global]
  - key: a
    name: A2
    categories: [A]
    locations: [Global]
`},
		{"preset unknown category", `
name: x
presets:
  p: [Z]
entries:
  - key: a
    name: A
    categories: [A]
    locations: [Global]
`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewFromFS(fstest.MapFS{"c/x.yaml": {Data: []byte(tc.yaml)}}, "c", nil)
			err := r.Load()
			if !errors.Is(err, domain.ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
			if _, err := r.Get(context.Background(), "x"); err == nil {
				t.Error("Get must fail after a failed load")
			}
		})
	}
}

func TestRepo_DuplicateNameInSource(t *testing.T) {
	fsys := fstest.MapFS{
		"c/a.yaml": {Data: []byte(minimalYAML)},
		"c/b.yaml": {Data: []byte(minimalYAML)},
	}
	err := NewFromFS(fsys, "c", nil).Load()
	if !errors.Is(err, domain.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestRepo_DirOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	override := `
name: esim
title: Local eSIMs
entries:
  - key: only
    name: Only
    categories: [Local]
    locations: [Thailand]
    score: 1
`
	if err := os.WriteFile(filepath.Join(dir, "esim.yaml"), []byte(override), 0o600); err != nil {
		t.Fatal(err)
	}
	r := New(Options{Embedded: true, Dir: dir}, nil)

	c, err := r.Get(context.Background(), "esim")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title() != "Local eSIMs" || c.Len() != 1 {
		t.Errorf("expected override catalog, got title=%s len=%d", c.Title(), c.Len())
	}
	if _, err := r.Get(context.Background(), "rentals"); err != nil {
		t.Errorf("embedded catalogs must remain: %v", err)
	}
}

func TestRepo_MissingDir(t *testing.T) {
	r := New(Options{Dir: filepath.Join(t.TempDir(), "missing")}, nil)
	if err := r.Load(); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestEncodeDecode_PreservesCatalog(t *testing.T) {
	f, err := Decode([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, err := Encode(f)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := Decode(data)
	if err != nil {
		t.Fatalf("decode encoded: %v", err)
	}
	c, err := again.ToDomain()
	if err != nil {
		t.Fatalf("to domain: %v", err)
	}
	if c.Name() != "demo" || c.Len() != 2 {
		t.Errorf("unexpected catalog %s len=%d", c.Name(), c.Len())
	}
}
