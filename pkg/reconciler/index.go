package reconciler

import (
	"sort"

	"github.com/agentstation/rostercheck/pkg/normalize"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Entry is one master record in the index. Values are normalized.
type Entry struct {
	Identifier string
	Name       string
	Workplace  string
	Row        int
	Record     *records.Record
}

// Index maps normalized master identifiers to entries. When an identifier
// repeats, the later record replaces the earlier one.
type Index struct {
	entries map[string]*Entry

	// ordered, byName and byWordKey hold entries by ascending row.
	ordered   []*Entry
	byName    map[string][]*Entry
	byWordKey map[string][]*Entry

	overwritten int
	skipped     int
}

// BuildIndex indexes the master records that have both an identifier and a
// name.
func BuildIndex(master *records.Dataset, fields records.Fields) *Index {
	ix := &Index{
		entries:   make(map[string]*Entry, master.Len()),
		byName:    make(map[string][]*Entry),
		byWordKey: make(map[string][]*Entry),
	}

	for i := 0; i < master.Len(); i++ {
		rec := master.Records[i]
		identifier := normalize.Text(rec.Value(fields.Identifier))
		name := normalize.Text(rec.Value(fields.Name))
		if identifier == "" || name == "" {
			ix.skipped++
			continue
		}
		if _, exists := ix.entries[identifier]; exists {
			ix.overwritten++
		}
		ix.entries[identifier] = &Entry{
			Identifier: identifier,
			Name:       name,
			Workplace:  normalize.Text(rec.Value(fields.Workplace)),
			Row:        master.Row(i),
			Record:     rec,
		}
	}

	ix.ordered = make([]*Entry, 0, len(ix.entries))
	for _, e := range ix.entries {
		ix.ordered = append(ix.ordered, e)
	}
	sort.Slice(ix.ordered, func(i, j int) bool {
		return ix.ordered[i].Row < ix.ordered[j].Row
	})

	for _, e := range ix.ordered {
		ix.byName[e.Name] = append(ix.byName[e.Name], e)
		if key := normalize.WordKey(e.Name); key != "" {
			ix.byWordKey[key] = append(ix.byWordKey[key], e)
		}
	}

	return ix
}

// Lookup returns the entry for a normalized identifier.
func (ix *Index) Lookup(identifier string) (*Entry, bool) {
	e, ok := ix.entries[identifier]
	return e, ok
}

// Len returns the number of distinct identifiers.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns all entries by ascending master row.
func (ix *Index) Entries() []*Entry {
	return append([]*Entry(nil), ix.ordered...)
}

// Overwritten returns how many master records replaced an earlier record
// with the same identifier.
func (ix *Index) Overwritten() int {
	return ix.overwritten
}

// Skipped returns how many master records lacked an identifier or name.
func (ix *Index) Skipped() int {
	return ix.skipped
}
