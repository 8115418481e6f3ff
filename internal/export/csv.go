package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/rostercheck/pkg/constants"
	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/report"
)

// CSVDir writes one CSV file per non-empty category into dir, named after
// the sheet with spaces replaced by underscores. Files start with a UTF-8 BOM
// so spreadsheet tools detect the encoding.
func CSVDir(dir string, rep *report.Report) ([]string, error) {
	if rep.Empty() {
		return nil, errors.ErrNoInconsistencies
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}

	var written []string
	for _, sheet := range rep.Sheets() {
		path := filepath.Join(dir, strings.ReplaceAll(sheet.Name, " ", "_")+".csv")
		err := writeFile(path, func(f *os.File) error {
			if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
				return err
			}
			w := csv.NewWriter(f)
			if err := w.Write(sheet.Headers); err != nil {
				return err
			}
			if err := w.WriteAll(sheet.Rows); err != nil {
				return err
			}
			return w.Error()
		})
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
