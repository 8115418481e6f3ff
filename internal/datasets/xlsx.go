package datasets

import (
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/rostercheck/pkg/errors"
)

// readXLSX reads the selected worksheet, or the first one. Cells are read
// as displayed, so identifiers stored as numbers keep their formatting.
func readXLSX(src Source) ([][]any, error) {
	if _, err := os.Stat(src.Path); err != nil {
		return nil, errors.WrapIO("open", src.Path, err)
	}
	f, err := excelize.OpenFile(src.Path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", src.Path, err)
	}
	defer f.Close()

	sheet := src.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.NewNotFoundError("sheet", sheet)
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WrapParse("xlsx", src.Path, err)
	}

	rows := make([][]any, len(cells))
	for i, row := range cells {
		rows[i] = make([]any, len(row))
		for j, cell := range row {
			rows[i][j] = cell
		}
	}
	return rows, nil
}

// Sheets lists the worksheets of an XLSX file.
func Sheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}
