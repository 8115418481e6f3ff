package report

import (
	"github.com/agentstation/rostercheck/pkg/findings"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Sheet is the tabular projection of one category.
type Sheet struct {
	Category findings.Category `json:"category" yaml:"category"`

	// Name is a short worksheet name.
	Name string `json:"name" yaml:"name"`

	Title   string     `json:"title" yaml:"title"`
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Column headers per category.
var (
	duplicateHeaders       = []string{"Type", "Identifier", "Name", "Workplace", "Current Row", "First Row", "Document", "Cause"}
	scrambledNameHeaders   = []string{"Identifier", "Correct Name", "Scrambled Name", "Workplace (Master)", "Workplace (Validation)", "Row (Master)", "Row (Validation)", "Cause"}
	wrongIdentifierHeaders = []string{"Wrong Identifier", "Correct Identifier", "Name", "Workplace (Master)", "Workplace (Validation)", "Row (Master)", "Row (Validation)", "Cause"}
	wrongNameHeaders       = []string{"Identifier", "Correct Name", "Wrong Name", "Workplace (Master)", "Workplace (Validation)", "Row (Master)", "Row (Validation)", "Cause"}
	wrongWorkplaceHeaders  = []string{"Identifier", "Name", "Correct Workplace", "Wrong Workplace", "Row (Master)", "Row (Validation)", "Cause"}
	notFoundHeaders        = []string{"Identifier", "Name", "Workplace", "Row (Validation)", "Cause"}
)

// sheetNames are worksheet names, at most 31 characters.
var sheetNames = map[findings.Category]string{
	findings.CategoryDuplicates:       "Duplicates",
	findings.CategoryScrambledNames:   "Scrambled Names",
	findings.CategoryWrongIdentifiers: "Wrong Identifiers",
	findings.CategoryWrongNames:       "Wrong Names",
	findings.CategoryWrongWorkplaces:  "Wrong Workplaces",
	findings.CategoryNotFound:         "Not Found",
}

// Sheets returns one sheet per non-empty category, in report order.
func (r *Report) Sheets() []Sheet {
	var sheets []Sheet
	for _, c := range findings.Categories() {
		if r.Count(c) == 0 {
			continue
		}
		sheets = append(sheets, r.Sheet(c))
	}
	return sheets
}

// Sheet returns the sheet of category c, which may have no rows.
func (r *Report) Sheet(c findings.Category) Sheet {
	s := Sheet{Category: c, Name: sheetNames[c], Title: c.Title()}
	set := r.set

	switch c {
	case findings.CategoryDuplicates:
		s.Headers = duplicateHeaders
		for _, f := range set.Duplicates {
			cause := CauseExactDuplicate
			if f.Type == findings.KindScrambledDuplicate {
				cause = CauseScrambledDuplicate
			}
			cells := []string{
				f.Type.String(), f.Identifier, f.DisplayName(), f.Workplace,
				row(f.CurrentRow), row(f.FirstRow), r.label(f.Document), cause,
			}
			if f.Document == findings.Master {
				s.Rows = append(s.Rows, r.withOriginals(cells, f.Record, nil))
			} else {
				s.Rows = append(s.Rows, r.withOriginals(cells, nil, f.Record))
			}
		}
	case findings.CategoryScrambledNames:
		s.Headers = scrambledNameHeaders
		for _, f := range set.ScrambledNames {
			s.Rows = append(s.Rows, r.withOriginals([]string{
				f.Identifier, f.CorrectName, f.ScrambledName, f.WorkplaceMaster, f.WorkplaceValidation,
				row(f.RowMaster), row(f.RowValidation), CauseScrambledName,
			}, f.Master, f.Validation))
		}
	case findings.CategoryWrongIdentifiers:
		s.Headers = wrongIdentifierHeaders
		for _, f := range set.WrongIdentifiers {
			s.Rows = append(s.Rows, r.withOriginals([]string{
				f.WrongIdentifier, f.CorrectIdentifier, f.Name, f.WorkplaceMaster, f.WorkplaceValidation,
				row(f.RowMaster), row(f.RowValidation), CauseWrongIdentifier,
			}, f.Master, f.Validation))
		}
	case findings.CategoryWrongNames:
		s.Headers = wrongNameHeaders
		for _, f := range set.WrongNames {
			s.Rows = append(s.Rows, r.withOriginals([]string{
				f.Identifier, f.CorrectName, f.WrongName, f.WorkplaceMaster, f.WorkplaceValidation,
				row(f.RowMaster), row(f.RowValidation), CauseWrongName,
			}, f.Master, f.Validation))
		}
	case findings.CategoryWrongWorkplaces:
		s.Headers = wrongWorkplaceHeaders
		for _, f := range set.WrongWorkplaces {
			s.Rows = append(s.Rows, r.withOriginals([]string{
				f.Identifier, f.Name, f.CorrectWorkplace, f.WrongWorkplace,
				row(f.RowMaster), row(f.RowValidation), CauseWrongWorkplace,
			}, f.Master, f.Validation))
		}
	case findings.CategoryNotFound:
		s.Headers = notFoundHeaders
		for _, f := range set.NotFound {
			s.Rows = append(s.Rows, r.withOriginals([]string{
				f.Identifier, f.Name, f.Workplace, row(f.RowValidation), CauseNotFound,
			}, nil, f.Validation))
		}
	}

	if r.originalColumns {
		s.Headers = append(append([]string(nil), s.Headers...), r.masterLabel+" Record", r.validationLabel+" Record")
	}
	return s
}

func (r *Report) label(doc findings.Document) string {
	if doc == findings.Master {
		return r.masterLabel
	}
	return r.validationLabel
}

// withOriginals appends the original record cells when enabled.
func (r *Report) withOriginals(cells []string, master, validation *records.Record) []string {
	if !r.originalColumns {
		return cells
	}
	return append(cells, originalCells(r.masterLabel, master), originalCells(r.validationLabel, validation))
}
