// Package datasets loads rosters from CSV, XLSX and SQLite sources.
//
// Every loader produces the same shape: the first non-blank row is the
// header, fully blank rows are skipped, empty header cells are named
// __EMPTY, __EMPTY_1, ... and repeated headers get a numeric suffix
// (NAME, NAME_1, ...). Empty cells are absent from the resulting records.
package datasets

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/logging"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Format is a supported source format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// Source describes where to load a dataset from.
type Source struct {
	// Path to the file.
	Path string

	// Sheet selects an XLSX worksheet. Defaults to the first one.
	Sheet string

	// Table selects a SQLite table. Ignored when Query is set.
	Table string

	// Query is a SQLite SELECT statement.
	Query string
}

// Name returns the display name of the source.
func (s Source) Name() string {
	name := filepath.Base(s.Path)
	switch {
	case s.Sheet != "":
		return name + ":" + s.Sheet
	case s.Query != "":
		return name + ":query"
	case s.Table != "":
		return name + ":" + s.Table
	default:
		return name
	}
}

// DetectFormat returns the format of path from its extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", &errors.ValidationError{
			Field:   "path",
			Value:   path,
			Message: "unsupported file type, expected .csv, .tsv, .xlsx or .sqlite",
			Err:     errors.ErrUnsupportedFormat,
		}
	}
}

// Load reads the dataset described by src.
func Load(ctx context.Context, src Source) (*records.Dataset, error) {
	format, err := DetectFormat(src.Path)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	logger.Debug().
		Str("path", src.Path).
		Str("format", string(format)).
		Msg("Loading dataset")

	var rows [][]any
	switch format {
	case FormatCSV:
		rows, err = readCSV(src.Path)
	case FormatXLSX:
		rows, err = readXLSX(src)
	case FormatSQLite:
		rows, err = readSQLite(ctx, src)
	}
	if err != nil {
		return nil, err
	}

	ds := build(src.Name(), rows)
	logger.Debug().
		Str("source", ds.Name).
		Int("columns", len(ds.Headers)).
		Int("records", ds.Len()).
		Msg("Dataset loaded")
	return ds, nil
}
