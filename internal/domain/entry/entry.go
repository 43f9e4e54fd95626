package entry

import (
	"fmt"
	"regexp"
	"strings"
)

var keyRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// MaxKeyLength is the maximum entry key length.
const MaxKeyLength = 256

// Params holds the raw fields of a directory entry before validation.
type Params struct {
	Key            string
	DisplayName    string
	SearchableText []string
	Categories     []string
	PlatformOrType string
	LocationTags   []string
	QualityScore   float64
	Verified       bool
	URL            string
}

// Entry is one catalog item (immutable value object).
// Location tags are ordered from most specific (city) to least (region or Global).
type Entry struct {
	key            string
	displayName    string
	searchableText []string
	categories     []string
	platformOrType string
	locationTags   []string
	qualityScore   float64
	verified       bool
	url            string
}

// New validates and creates an Entry.
// Key: ^[a-zA-Z0-9_.-]+$, 1-256 chars. Display name, categories and location tags are required.
func New(p Params) (Entry, error) {
	if p.Key == "" {
		return Entry{}, fmt.Errorf("entry key is required")
	}
	if len(p.Key) > MaxKeyLength {
		return Entry{}, fmt.Errorf("entry key too long (max %d)", MaxKeyLength)
	}
	if !keyRegex.MatchString(p.Key) {
		return Entry{}, fmt.Errorf("entry key %q must be alphanumeric with dots, underscores and hyphens", p.Key)
	}
	if strings.TrimSpace(p.DisplayName) == "" {
		return Entry{}, fmt.Errorf("entry %q: display name is required", p.Key)
	}

	categories := dedupe(p.Categories)
	if len(categories) == 0 {
		return Entry{}, fmt.Errorf("entry %q: at least one category is required", p.Key)
	}
	locationTags := nonEmpty(p.LocationTags)
	if len(locationTags) == 0 {
		return Entry{}, fmt.Errorf("entry %q: at least one location tag is required", p.Key)
	}

	return Entry{
		key:            p.Key,
		displayName:    p.DisplayName,
		searchableText: nonEmpty(p.SearchableText),
		categories:     categories,
		platformOrType: strings.TrimSpace(p.PlatformOrType),
		locationTags:   locationTags,
		qualityScore:   p.QualityScore,
		verified:       p.Verified,
		url:            p.URL,
	}, nil
}

// Key returns the stable unique identifier.
func (e *Entry) Key() string { return e.key }

// DisplayName returns the human-readable name.
func (e *Entry) DisplayName() string { return e.displayName }

// SearchableText returns a copy of the free-text fields.
func (e *Entry) SearchableText() []string { return cloneStrings(e.searchableText) }

// Categories returns a copy of the category labels.
func (e *Entry) Categories() []string { return cloneStrings(e.categories) }

// PlatformOrType returns the discriminator label ("" when unset).
func (e *Entry) PlatformOrType() string { return e.platformOrType }

// LocationTags returns a copy of the location labels, most specific first.
func (e *Entry) LocationTags() []string { return cloneStrings(e.locationTags) }

// QualityScore returns the ranking tie-break value (higher is better).
func (e *Entry) QualityScore() float64 { return e.qualityScore }

// Verified reports the informational verified flag.
func (e *Entry) Verified() bool { return e.verified }

// URL returns the provider link, if any.
func (e *Entry) URL() string { return e.url }

// HasCategory reports whether the entry carries the given category label.
func (e *Entry) HasCategory(label string) bool {
	for _, c := range e.categories {
		if c == label {
			return true
		}
	}
	return false
}

// CityTag returns the most specific location tag.
func (e *Entry) CityTag() string {
	if len(e.locationTags) == 0 {
		return ""
	}
	return e.locationTags[0]
}

// EachSearchable calls fn with every text field that participates in search:
// display name, searchable text, then categories. Stops when fn returns true.
func (e *Entry) EachSearchable(fn func(s string) bool) bool {
	if fn(e.displayName) {
		return true
	}
	for _, s := range e.searchableText {
		if fn(s) {
			return true
		}
	}
	for _, c := range e.categories {
		if fn(c) {
			return true
		}
	}
	return false
}

// EachLocationTag calls fn with every location tag until fn returns true.
func (e *Entry) EachLocationTag(fn func(tag string) bool) bool {
	for _, t := range e.locationTags {
		if fn(t) {
			return true
		}
	}
	return false
}

// EachCategory calls fn with every category until fn returns true.
func (e *Entry) EachCategory(fn func(label string) bool) bool {
	for _, c := range e.categories {
		if fn(c) {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func nonEmpty(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
