package records

import (
	"slices"

	"github.com/agentstation/rostercheck/pkg/constants"
)

// Dataset is a loaded tabular source.
type Dataset struct {
	// Name identifies the source, usually its file name.
	Name string `json:"name" yaml:"name"`

	// Headers lists the column names in sheet order.
	Headers []string `json:"headers" yaml:"headers"`

	Records []*Record `json:"records" yaml:"records"`
}

// NewDataset creates a dataset.
func NewDataset(name string, headers []string, recs []*Record) *Dataset {
	return &Dataset{Name: name, Headers: headers, Records: recs}
}

// Len returns the number of records, and 0 for a nil dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Row returns the 1-based source row of the i-th record. The header occupies
// the first row, so the first record is row 2.
func Row(i int) int {
	return i + constants.FirstDataRow
}

// Row returns the 1-based source row of the i-th record.
func (d *Dataset) Row(i int) int {
	return Row(i)
}

// HasColumn reports whether column is one of the dataset headers.
func (d *Dataset) HasColumn(column string) bool {
	return d != nil && slices.Contains(d.Headers, column)
}
