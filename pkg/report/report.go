// Package report flattens a findings set into fixed, human-readable tables:
// one sheet per non-empty category, in a fixed order, each with a header row
// and a literal cause column. Terminal output and every export writer render
// the same sheets.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/rostercheck/pkg/constants"
	"github.com/agentstation/rostercheck/pkg/findings"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Causes written in the last column of every row.
const (
	CauseExactDuplicate     = "Exact duplicate record"
	CauseScrambledDuplicate = "Same person, scrambled name"
	CauseScrambledName      = "Name has the same words in a different order"
	CauseWrongIdentifier    = "Identifier does not match registered name"
	CauseWrongName          = "Name does not match registered identifier"
	CauseWrongWorkplace     = "Workplace does not match"
	CauseNotFound           = "Person does not exist in the master dataset"
)

// Report groups the findings of one run.
type Report struct {
	set             *findings.Set
	originalColumns bool
	masterLabel     string
	validationLabel string
}

// Option configures a Report.
type Option func(*Report)

// WithOriginalColumns appends the cells of the original records to every
// row, prefixed with the document label.
func WithOriginalColumns() Option {
	return func(r *Report) {
		r.originalColumns = true
	}
}

// WithDocumentLabels sets the labels used for both datasets.
func WithDocumentLabels(master, validation string) Option {
	return func(r *Report) {
		if master != "" {
			r.masterLabel = master
		}
		if validation != "" {
			r.validationLabel = validation
		}
	}
}

// New creates a report over set. A nil set is an empty report.
func New(set *findings.Set, opts ...Option) *Report {
	if set == nil {
		set = findings.NewSet()
	}
	r := &Report{
		set:             set,
		masterLabel:     constants.MasterLabel,
		validationLabel: constants.ValidationLabel,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Findings returns the underlying set.
func (r *Report) Findings() *findings.Set {
	return r.set
}

// Total returns the number of findings.
func (r *Report) Total() int {
	if r == nil {
		return 0
	}
	return r.set.Total()
}

// Count returns the number of findings in category c.
func (r *Report) Count(c findings.Category) int {
	if r == nil {
		return 0
	}
	return r.set.Count(c)
}

// Empty reports whether there is nothing to show or export.
func (r *Report) Empty() bool {
	return r.Total() == 0
}

// CategoryCount is one line of the summary.
type CategoryCount struct {
	Category findings.Category `json:"category" yaml:"category"`
	Title    string            `json:"title" yaml:"title"`
	Count    int               `json:"count" yaml:"count"`
}

// Summary returns the count of every category, in report order, including
// empty ones.
func (r *Report) Summary() []CategoryCount {
	summary := make([]CategoryCount, 0, len(findings.Categories()))
	for _, c := range findings.Categories() {
		summary = append(summary, CategoryCount{Category: c, Title: c.Title(), Count: r.Count(c)})
	}
	return summary
}

// FileName returns the export file name for a run on day t.
func FileName(t time.Time) string {
	return constants.ExportFilePrefix + t.Format(constants.ExportDateLayout) + constants.ExportExtension
}

// row is an int rendered as a cell.
func row(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// originalCells renders the cells of rec as "Label: column=value" pairs.
func originalCells(label string, rec *records.Record) string {
	if rec == nil {
		return ""
	}
	cols := rec.Columns()
	if len(cols) == 0 {
		return ""
	}
	pairs := make([]string, len(cols))
	for i, c := range cols {
		pairs[i] = fmt.Sprintf("%s=%s", c, rec.String(c))
	}
	return label + ": " + strings.Join(pairs, "; ")
}
