package catalog

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	domcat "github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
)

// File is the on-disk YAML shape of one catalog.
type File struct {
	Name       string              `yaml:"name"`
	Title      string              `yaml:"title,omitempty"`
	Categories []string            `yaml:"categories,omitempty"`
	Platforms  []string            `yaml:"platforms,omitempty"`
	Presets    map[string][]string `yaml:"presets,omitempty"`
	Entries    []EntryFile         `yaml:"entries"`
}

// EntryFile is the on-disk YAML shape of one directory entry.
type EntryFile struct {
	Key        string   `yaml:"key"`
	Name       string   `yaml:"name"`
	Text       []string `yaml:"text,omitempty"`
	Categories []string `yaml:"categories"`
	Platform   string   `yaml:"platform,omitempty"`
	Locations  []string `yaml:"locations"`
	Score      float64  `yaml:"score"`
	Verified   bool     `yaml:"verified,omitempty"`
	URL        string   `yaml:"url,omitempty"`
}

// Decode parses a catalog file. Unknown fields are rejected.
func Decode(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}

// Encode renders a catalog file as YAML.
func Encode(f File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// ToDomain validates the file and builds the immutable catalog.
func (f File) ToDomain() (*domcat.Catalog, error) {
	entries := make([]entry.Entry, 0, len(f.Entries))
	for i, ef := range f.Entries {
		e, err := entry.New(entry.Params{
			Key:            ef.Key,
			DisplayName:    ef.Name,
			SearchableText: ef.Text,
			Categories:     ef.Categories,
			PlatformOrType: ef.Platform,
			LocationTags:   ef.Locations,
			QualityScore:   ef.Score,
			Verified:       ef.Verified,
			URL:            ef.URL,
		})
		if err != nil {
			return nil, fmt.Errorf("entry #%d: %w", i, err)
		}
		entries = append(entries, e)
	}

	return domcat.New(domcat.Params{
		Name:          f.Name,
		Title:         f.Title,
		CategoryOrder: f.Categories,
		Platforms:     f.Platforms,
		Presets:       f.Presets,
		Entries:       entries,
	})
}
