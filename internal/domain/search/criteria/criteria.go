// Package criteria defines the per-query filter value object.
package criteria

import (
	"fmt"
	"sort"
	"strings"
)

// All is the facet sentinel meaning "no restriction".
const All = "all"

// MaxQueryLength is the maximum allowed free-text query length.
const MaxQueryLength = 512

// Criteria is an immutable set of filters for one query.
// Zero value matches everything.
type Criteria struct {
	query      string
	categories []string
	region     string
	platform   string
	preset     string
}

// New validates and normalizes filter criteria.
// The "all" sentinel (any case) and blank values clear a facet. Categories are
// deduplicated and sorted so equal selections produce equal criteria.
func New(query string, categories []string, region, platform, preset string) (Criteria, error) {
	if len(query) > MaxQueryLength {
		return Criteria{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	return Criteria{
		query:      query,
		categories: normalizeSet(categories),
		region:     normalizeFacet(region),
		platform:   normalizeFacet(platform),
		preset:     strings.TrimSpace(preset),
	}, nil
}

// Query returns the free-text query ("" means no text filter).
func (c Criteria) Query() string { return c.query }

// Categories returns the selected category labels (empty means unrestricted).
func (c Criteria) Categories() []string {
	if c.categories == nil {
		return nil
	}
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Region returns the selected region or city ("" means unrestricted).
func (c Criteria) Region() string { return c.region }

// Platform returns the selected platform ("" means unrestricted).
func (c Criteria) Platform() string { return c.platform }

// Preset returns the active preset id ("" when none).
func (c Criteria) Preset() string { return c.preset }

// HasRegion reports whether a location restriction is active.
func (c Criteria) HasRegion() bool { return c.region != "" }

// HasPlatform reports whether a platform restriction is active.
func (c Criteria) HasPlatform() bool { return c.platform != "" }

// WithQuery returns a copy with the query replaced.
func (c Criteria) WithQuery(q string) Criteria {
	c.query = q
	return c
}

// WithPreset returns a copy with the preset replaced.
func (c Criteria) WithPreset(id string) Criteria {
	c.preset = strings.TrimSpace(id)
	return c
}

// String renders the normalized criteria. Equivalent criteria render equally.
func (c Criteria) String() string {
	return fmt.Sprintf("q=%q c=[%s] r=%q p=%q s=%q",
		c.query, strings.Join(c.categories, ","), c.region, c.platform, c.preset)
}

func normalizeFacet(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, All) {
		return ""
	}
	return v
}

func normalizeSet(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, All) {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}
