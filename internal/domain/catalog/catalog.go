// Package catalog holds the immutable, validated directory catalog aggregate.
package catalog

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxEntries caps a single catalog; the engine is a linear scan over in-memory data.
const MaxEntries = 10000

// Params holds the raw catalog definition before validation.
type Params struct {
	Name          string
	Title         string
	CategoryOrder []string
	Platforms     []string
	Presets       map[string][]string
	Entries       []entry.Entry
}

// Catalog is a read-only collection of directory entries for one directory screen.
// Safe for concurrent use: nothing mutates it after New returns.
type Catalog struct {
	name          string
	title         string
	categoryOrder []string
	platforms     map[string]struct{} // declared, or observed on entries
	platformList  []string
	presets       map[string][]string
	entries       []entry.Entry
	byKey         map[string]int
}

// New validates and creates a Catalog.
//
// Labels form closed sets: when CategoryOrder is declared every entry category
// must be in it; when Platforms is declared every non-empty platform must be in it.
// Without a declared CategoryOrder the display order is the order of first appearance.
func New(p Params) (*Catalog, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("catalog name is required")
	}
	if len(p.Name) > 64 {
		return nil, fmt.Errorf("catalog name too long (max 64)")
	}
	if !nameRegex.MatchString(p.Name) {
		return nil, fmt.Errorf("catalog name must be alphanumeric with underscores and hyphens")
	}
	if len(p.Entries) > MaxEntries {
		return nil, fmt.Errorf("catalog %q: too many entries (max %d)", p.Name, MaxEntries)
	}

	byKey := make(map[string]int, len(p.Entries))
	for i := range p.Entries {
		k := p.Entries[i].Key()
		if _, dup := byKey[k]; dup {
			return nil, fmt.Errorf("catalog %q: duplicate entry key %q", p.Name, k)
		}
		byKey[k] = i
	}

	order, err := categoryOrder(p.Name, p.CategoryOrder, p.Entries)
	if err != nil {
		return nil, err
	}

	platforms, platformList, err := platformSet(p.Name, p.Platforms, p.Entries)
	if err != nil {
		return nil, err
	}

	presets, err := presetTable(p.Name, p.Presets, order)
	if err != nil {
		return nil, err
	}

	entries := make([]entry.Entry, len(p.Entries))
	copy(entries, p.Entries)

	title := p.Title
	if title == "" {
		title = p.Name
	}

	return &Catalog{
		name:          p.Name,
		title:         title,
		categoryOrder: order,
		platforms:     platforms,
		platformList:  platformList,
		presets:       presets,
		entries:       entries,
		byKey:         byKey,
	}, nil
}

func categoryOrder(name string, declared []string, entries []entry.Entry) ([]string, error) {
	if len(declared) == 0 {
		seen := make(map[string]struct{})
		var order []string
		for i := range entries {
			entries[i].EachCategory(func(c string) bool {
				if _, ok := seen[c]; !ok {
					seen[c] = struct{}{}
					order = append(order, c)
				}
				return false
			})
		}
		return order, nil
	}

	known := make(map[string]struct{}, len(declared))
	order := make([]string, 0, len(declared))
	for _, c := range declared {
		if c == "" {
			return nil, fmt.Errorf("catalog %q: empty category label in category order", name)
		}
		if _, dup := known[c]; dup {
			return nil, fmt.Errorf("catalog %q: duplicate category %q in category order", name, c)
		}
		known[c] = struct{}{}
		order = append(order, c)
	}

	for i := range entries {
		var unknown string
		entries[i].EachCategory(func(c string) bool {
			if _, ok := known[c]; !ok {
				unknown = c
				return true
			}
			return false
		})
		if unknown != "" {
			return nil, fmt.Errorf("catalog %q: entry %q has undeclared category %q",
				name, entries[i].Key(), unknown)
		}
	}
	return order, nil
}

func platformSet(name string, declared []string, entries []entry.Entry) (map[string]struct{}, []string, error) {
	if len(declared) == 0 {
		set := make(map[string]struct{})
		for i := range entries {
			if pt := entries[i].PlatformOrType(); pt != "" {
				set[pt] = struct{}{}
			}
		}
		return set, nil, nil
	}
	set := make(map[string]struct{}, len(declared))
	list := make([]string, 0, len(declared))
	for _, p := range declared {
		if p == "" {
			return nil, nil, fmt.Errorf("catalog %q: empty platform label", name)
		}
		if _, dup := set[p]; dup {
			continue
		}
		set[p] = struct{}{}
		list = append(list, p)
	}
	for i := range entries {
		pt := entries[i].PlatformOrType()
		if pt == "" {
			continue
		}
		if _, ok := set[pt]; !ok {
			return nil, nil, fmt.Errorf("catalog %q: entry %q has undeclared platform %q",
				name, entries[i].Key(), pt)
		}
	}
	return set, list, nil
}

func presetTable(name string, raw map[string][]string, order []string) (map[string][]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	known := make(map[string]struct{}, len(order))
	for _, c := range order {
		known[c] = struct{}{}
	}
	out := make(map[string][]string, len(raw))
	for id, cats := range raw {
		if id == "" {
			return nil, fmt.Errorf("catalog %q: preset id is required", name)
		}
		if len(cats) == 0 {
			return nil, fmt.Errorf("catalog %q: preset %q has no categories", name, id)
		}
		for _, c := range cats {
			if _, ok := known[c]; !ok {
				return nil, fmt.Errorf("catalog %q: preset %q references unknown category %q", name, id, c)
			}
		}
		cp := make([]string, len(cats))
		copy(cp, cats)
		out[id] = cp
	}
	return out, nil
}

// Name returns the catalog identifier.
func (c *Catalog) Name() string { return c.name }

// Title returns the human-readable catalog title.
func (c *Catalog) Title() string { return c.title }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns the entries in declared catalog order.
// The slice is a copy; the entries themselves are immutable.
func (c *Catalog) Entries() []entry.Entry {
	out := make([]entry.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Entry looks up an entry by key.
func (c *Catalog) Entry(key string) (entry.Entry, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return entry.Entry{}, false
	}
	return c.entries[i], true
}

// HasEntry reports whether key belongs to the catalog.
func (c *Catalog) HasEntry(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// CategoryOrder returns the category display order.
func (c *Catalog) CategoryOrder() []string {
	out := make([]string, len(c.categoryOrder))
	copy(out, c.categoryOrder)
	return out
}

// Platforms returns the declared platform labels (nil when the set is open).
func (c *Catalog) Platforms() []string {
	if c.platformList == nil {
		return nil
	}
	out := make([]string, len(c.platformList))
	copy(out, c.platformList)
	return out
}

// HasPlatform reports whether the label is a known platform: a declared one,
// or for catalogs without a declared set, one carried by some entry.
func (c *Catalog) HasPlatform(label string) bool {
	_, ok := c.platforms[label]
	return ok
}

// ResolvePreset returns the category subset of a preset.
// Unknown ids report ok=false.
func (c *Catalog) ResolvePreset(id string) ([]string, bool) {
	cats, ok := c.presets[id]
	if !ok {
		return nil, false
	}
	out := make([]string, len(cats))
	copy(out, cats)
	return out, true
}

// PresetIDs returns the preset identifiers sorted alphabetically.
func (c *Catalog) PresetIDs() []string {
	ids := make([]string, 0, len(c.presets))
	for id := range c.presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
