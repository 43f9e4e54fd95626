package fsq

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	domcat "github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	catalogrepo "github.com/kailas-cloud/dirsearch/internal/repository/catalog"
)

const labelSep = ">"

var keyUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

// Options controls which places become entries.
type Options struct {
	Name     string
	Title    string
	Country  string // ISO country code, case-insensitive; empty keeps all
	Locality string // case-insensitive; empty keeps all
	Platform string // platform label stamped on every entry
	Limit    int    // 0 means the catalog maximum
}

// Stats counts rows by outcome.
type Stats struct {
	Read       int
	Imported   int
	Closed     int
	Filtered   int
	NoCategory int
	Invalid    int
	Duplicate  int
}

// Builder accumulates places into a catalog file.
type Builder struct {
	opts      Options
	entries   []catalogrepo.EntryFile
	seen      map[string]struct{}
	catCounts  map[string]int
	stats     Stats
}

// NewBuilder validates options.
func NewBuilder(opts Options) (*Builder, error) {
	if strings.TrimSpace(opts.Name) == "" {
		return nil, errors.New("catalog name is required")
	}
	if opts.Limit <= 0 || opts.Limit > domcat.MaxEntries {
		opts.Limit = domcat.MaxEntries
	}
	return &Builder{
		opts:      opts,
		seen:      make(map[string]struct{}),
		catCounts: make(map[string]int),
	}, nil
}

// Add converts one row. It returns false once the limit is reached, so it can
// be passed to Reader.ReadPlaces directly.
func (b *Builder) Add(row *PlaceRow) bool {
	if len(b.entries) >= b.opts.Limit {
		return false
	}
	b.stats.Read++

	switch {
	case row.DateClosed != nil && *row.DateClosed != "":
		b.stats.Closed++
	case !b.matches(row):
		b.stats.Filtered++
	default:
		b.convert(row)
	}
	return len(b.entries) < b.opts.Limit
}

func (b *Builder) matches(row *PlaceRow) bool {
	if b.opts.Country != "" && !strings.EqualFold(str(row.Country), b.opts.Country) {
		return false
	}
	if b.opts.Locality != "" && !strings.EqualFold(strings.TrimSpace(str(row.Locality)), b.opts.Locality) {
		return false
	}
	return true
}

func (b *Builder) convert(row *PlaceRow) {
	categories, leaves := splitLabels(row.FSQCategoryLabel)
	if len(categories) == 0 {
		b.stats.NoCategory++
		return
	}
	key := keyUnsafe.ReplaceAllString(row.FSQPlaceID, "-")
	locations := nonEmpty(str(row.Locality), str(row.Region), strings.ToUpper(str(row.Country)))
	name := strings.TrimSpace(row.Name)
	if key == "" || name == "" || len(locations) == 0 {
		b.stats.Invalid++
		return
	}
	if _, dup := b.seen[key]; dup {
		b.stats.Duplicate++
		return
	}
	b.seen[key] = struct{}{}

	for _, c := range categories {
		b.catCounts[c]++
	}
	b.entries = append(b.entries, catalogrepo.EntryFile{
		Key:        key,
		Name:       name,
		Text:       nonEmpty(append(leaves, str(row.Address))...),
		Categories: categories,
		Platform:   b.opts.Platform,
		Locations:  locations,
		Score:      completeness(row),
		URL:        normalizeURL(str(row.Website)),
	})
	b.stats.Imported++
}

// Stats returns counters so far.
func (b *Builder) Stats() Stats { return b.stats }

// File renders the catalog. Categories are declared by popularity, then name.
func (b *Builder) File() catalogrepo.File {
	cats := make([]string, 0, len(b.catCounts))
	for c := range b.catCounts {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		ci, cj := b.catCounts[cats[i]], b.catCounts[cats[j]]
		if ci != cj {
			return ci > cj
		}
		return cats[i] < cats[j]
	})

	f := catalogrepo.File{
		Name:       b.opts.Name,
		Title:      b.opts.Title,
		Categories: cats,
		Entries:    b.entries,
	}
	if b.opts.Platform != "" {
		f.Platforms = []string{b.opts.Platform}
	}
	return f
}

// splitLabels turns "Dining and Drinking > Restaurant > Thai Restaurant" into
// the top-level category and the most specific label.
func splitLabels(labels []string) (categories, leaves []string) {
	seenCat := make(map[string]struct{})
	for _, l := range labels {
		parts := strings.Split(l, labelSep)
		top := strings.TrimSpace(parts[0])
		if top == "" {
			continue
		}
		if _, ok := seenCat[top]; !ok {
			seenCat[top] = struct{}{}
			categories = append(categories, top)
		}
		if len(parts) > 1 {
			leaves = append(leaves, strings.TrimSpace(parts[len(parts)-1]))
		}
	}
	return categories, leaves
}

// completeness scores a place by how much contact data it carries.
func completeness(row *PlaceRow) float64 {
	score := 1.0
	for _, p := range []*string{row.Address, row.Website, row.Tel} {
		if strings.TrimSpace(str(p)) != "" {
			score++
		}
	}
	return score
}

func normalizeURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" || strings.Contains(u, "://") {
		return u
	}
	return "https://" + u
}

func nonEmpty(in ...string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
