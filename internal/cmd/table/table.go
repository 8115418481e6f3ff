// Package table converts reports and datasets into rows for terminal tables.
package table

import (
	"strconv"

	"github.com/agentstation/rostercheck/pkg/records"
	"github.com/agentstation/rostercheck/pkg/report"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// SummaryToTableData lists every category with its finding count.
func SummaryToTableData(rep *report.Report) Data {
	rows := make([][]string, 0, len(rep.Summary()))
	for _, c := range rep.Summary() {
		rows = append(rows, []string{c.Title, strconv.Itoa(c.Count)})
	}
	rows = append(rows, []string{"Total", strconv.Itoa(rep.Total())})

	return Data{
		Headers:         []string{"Category", "Count"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// SheetToTableData converts one report sheet.
func SheetToTableData(sheet report.Sheet) Data {
	return Data{
		Headers: sheet.Headers,
		Rows:    sheet.Rows,
	}
}

// ColumnsToTableData lists the headers of ds and marks the ones suggested
// for each mapped field.
func ColumnsToTableData(ds *records.Dataset, suggested records.Fields) Data {
	roles := map[string]string{}
	if suggested.Identifier != "" {
		roles[suggested.Identifier] = "identifier"
	}
	if suggested.Name != "" {
		roles[suggested.Name] = "name"
	}
	if suggested.Workplace != "" {
		roles[suggested.Workplace] = "workplace"
	}

	rows := make([][]string, 0, len(ds.Headers))
	for i, h := range ds.Headers {
		role := roles[h]
		if role == "" {
			role = "-"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), h, role})
	}

	return Data{
		Headers:         []string{"#", "Column", "Suggested"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft},
	}
}
