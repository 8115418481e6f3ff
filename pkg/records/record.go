// Package records holds the tabular data model shared by loaders, the
// duplicate detector and the reconciler: ordered records, datasets and the
// column mapping chosen by the user.
package records

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Record is one data row of a tabular source: an ordered mapping from column
// name to cell value. Empty cells are absent. Records are immutable.
type Record struct {
	columns []string
	values  map[string]any
}

// New builds a record from parallel column and value slices. Nil values are
// skipped; when a column repeats, the first position and the last value win.
func New(columns []string, values []any) *Record {
	r := &Record{values: make(map[string]any, len(columns))}
	n := min(len(columns), len(values))
	for i := 0; i < n; i++ {
		if values[i] == nil {
			continue
		}
		if _, exists := r.values[columns[i]]; !exists {
			r.columns = append(r.columns, columns[i])
		}
		r.values[columns[i]] = values[i]
	}
	return r
}

// FromMap builds a record with the given column order. Columns missing from
// m are skipped.
func FromMap(columns []string, m map[string]any) *Record {
	values := make([]any, len(columns))
	for i, c := range columns {
		values[i] = m[c]
	}
	return New(columns, values)
}

// Get returns the raw value of column and whether it is present.
func (r *Record) Get(column string) (any, bool) {
	if r == nil || column == "" {
		return nil, false
	}
	v, ok := r.values[column]
	return v, ok
}

// Value returns the raw value of column, or nil when absent.
func (r *Record) Value(column string) any {
	v, _ := r.Get(column)
	return v
}

// String returns the value of column formatted for display, or "".
func (r *Record) String(column string) string {
	v, ok := r.Get(column)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Columns returns the record's column names in source order.
func (r *Record) Columns() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.columns...)
}

// Len returns the number of non-empty cells.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.columns)
}

// MarshalJSON encodes the record as a JSON object preserving column order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[c])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as an ordered YAML mapping.
func (r *Record) MarshalYAML() (any, error) {
	slice := make(yaml.MapSlice, 0, r.Len())
	for _, c := range r.Columns() {
		slice = append(slice, yaml.MapItem{Key: c, Value: r.values[c]})
	}
	return slice, nil
}
