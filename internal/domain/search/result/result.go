package result

import "github.com/kailas-cloud/dirsearch/internal/domain/entry"

// Filtered is the ordered outcome of one filter pass.
type Filtered struct {
	entries     []entry.Entry
	totalBefore int
	totalAfter  int
}

// New creates a filtered result. totalAfter is derived from entries.
func New(entries []entry.Entry, totalBefore int) Filtered {
	return Filtered{entries: entries, totalBefore: totalBefore, totalAfter: len(entries)}
}

// Entries returns the ranked entries. The slice is a copy.
func (f Filtered) Entries() []entry.Entry { return cloneEntries(f.entries) }

// TotalBeforeFilter returns the catalog size the filter ran against.
func (f Filtered) TotalBeforeFilter() int { return f.totalBefore }

// TotalAfterFilter returns the number of surviving entries.
func (f Filtered) TotalAfterFilter() int { return f.totalAfter }

// IsEmpty reports whether nothing survived the filters.
func (f Filtered) IsEmpty() bool { return f.totalAfter == 0 }

// Keys returns the entry keys in result order.
func (f Filtered) Keys() []string {
	keys := make([]string, len(f.entries))
	for i := range f.entries {
		keys[i] = f.entries[i].Key()
	}
	return keys
}

// Group is one named bucket of a grouped result.
type Group struct {
	label   string
	entries []entry.Entry
}

// NewGroup creates a bucket.
func NewGroup(label string, entries []entry.Entry) Group {
	return Group{label: label, entries: entries}
}

// Label returns the bucket label.
func (g Group) Label() string { return g.label }

// Entries returns a copy of the bucket entries in engine order.
func (g Group) Entries() []entry.Entry { return cloneEntries(g.entries) }

func cloneEntries(in []entry.Entry) []entry.Entry {
	out := make([]entry.Entry, len(in))
	copy(out, in)
	return out
}
