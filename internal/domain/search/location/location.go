// Package location holds the caller's best-known position.
package location

import "strings"

// Context is the caller's current city and country. Both parts are optional.
type Context struct {
	city    string
	country string
}

// New creates a location context. Blank parts are treated as unknown.
func New(city, country string) Context {
	return Context{
		city:    strings.TrimSpace(city),
		country: strings.TrimSpace(country),
	}
}

// City returns the city ("" when unknown).
func (c Context) City() string { return c.city }

// Country returns the country ("" when unknown).
func (c Context) Country() string { return c.country }

// IsZero reports whether nothing is known about the location.
func (c Context) IsZero() bool { return c.city == "" && c.country == "" }

// MatchesCity reports whether tag names the caller's city (case-insensitive).
func (c Context) MatchesCity(tag string) bool {
	return c.city != "" && strings.EqualFold(tag, c.city)
}

// MatchesCountry reports whether tag names the caller's country (case-insensitive).
func (c Context) MatchesCountry(tag string) bool {
	return c.country != "" && strings.EqualFold(tag, c.country)
}

// Pointer returns nil for a zero context so callers can pass "absent" explicitly.
func (c Context) Pointer() *Context {
	if c.IsZero() {
		return nil
	}
	return &c
}
