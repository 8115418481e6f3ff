// Package export writes reconciliation reports as an XLSX workbook, one CSV
// file per category, or a Markdown document. Every writer refuses an empty
// report with errors.ErrNoInconsistencies.
package export

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentstation/rostercheck/pkg/constants"
	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/report"
)

// Format is an export format.
type Format string

const (
	FormatXLSX     Format = "xlsx"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
)

// ParseFormat parses an export format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return "", &errors.ValidationError{
			Field:   "export-format",
			Value:   s,
			Message: "must be one of xlsx, csv, md",
			Err:     errors.ErrUnsupportedFormat,
		}
	}
}

// ToPath writes rep in format to path and returns the files written. When
// path is an existing directory, or empty, a dated file name is chosen inside
// it. CSV output always goes to a directory.
func ToPath(path string, format Format, rep *report.Report, now time.Time) ([]string, error) {
	if rep.Empty() {
		return nil, errors.ErrNoInconsistencies
	}

	if format == FormatCSV {
		if path == "" {
			path = strings.TrimSuffix(report.FileName(now), constants.ExportExtension)
		}
		return CSVDir(path, rep)
	}

	if path == "" || isDir(path) {
		name := report.FileName(now)
		if format == FormatMarkdown {
			name = strings.TrimSuffix(name, constants.ExportExtension) + ".md"
		}
		path = filepath.Join(path, name)
	}

	var err error
	switch format {
	case FormatMarkdown:
		err = MarkdownFile(path, rep)
	default:
		err = XLSXFile(path, rep)
	}
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// createFile creates path and its parent directories.
func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return nil, errors.WrapIO("create", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return nil, errors.WrapIO("create", path, err)
	}
	return f, nil
}

// writeFile creates path, calls write and closes the file.
func writeFile(path string, write func(f *os.File) error) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return errors.WrapResource("export", "report", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
