package export

import (
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/report"
)

// defaultSheet is the worksheet every new workbook starts with. It is
// renamed to the first category.
const defaultSheet = "Sheet1"

// XLSX writes one worksheet per non-empty category, with a bold header row.
func XLSX(w io.Writer, rep *report.Report) error {
	f, err := workbook(rep)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// XLSXFile writes the workbook to path.
func XLSXFile(path string, rep *report.Report) error {
	if rep.Empty() {
		return errors.ErrNoInconsistencies
	}
	return writeFile(path, func(out *os.File) error {
		return XLSX(out, rep)
	})
}

func workbook(rep *report.Report) (*excelize.File, error) {
	if rep.Empty() {
		return nil, errors.ErrNoInconsistencies
	}

	f := excelize.NewFile()
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, sheet := range rep.Sheets() {
		if i == 0 {
			err = f.SetSheetName(defaultSheet, sheet.Name)
		} else {
			_, err = f.NewSheet(sheet.Name)
		}
		if err == nil {
			err = writeSheet(f, sheet, header)
		}
		if err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet report.Sheet, headerStyle int) error {
	if err := f.SetSheetRow(sheet.Name, "A1", &sheet.Headers); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet.Name, 1, 1, headerStyle); err != nil {
		return err
	}
	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return err
		}
	}

	last, err := excelize.ColumnNumberToName(len(sheet.Headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet.Name, "A", last, 22)
}
