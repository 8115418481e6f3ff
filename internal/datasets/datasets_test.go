package datasets_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/agentstation/rostercheck/internal/datasets"
	"github.com/agentstation/rostercheck/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want datasets.Format
	}{
		{"a.csv", datasets.FormatCSV},
		{"a.TSV", datasets.FormatCSV},
		{"a.xlsx", datasets.FormatXLSX},
		{"a.xlsm", datasets.FormatXLSX},
		{"a.sqlite3", datasets.FormatSQLite},
		{"a.db", datasets.FormatSQLite},
	}
	for _, tt := range tests {
		got, err := datasets.DetectFormat(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := datasets.DetectFormat("roster.pdf")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "master.csv", "\xEF\xBB\xBFCEDULA,NOMBRE,LUGAR,,NOMBRE\n"+
		"123,John Smith,HQ,x,dup\n"+
		",,,,\n"+
		"456,\"Pérez, Ana\",,,\n")

	ds, err := datasets.Load(context.Background(), datasets.Source{Path: path})
	require.NoError(t, err)

	assert.Equal(t, "master.csv", ds.Name)
	assert.Equal(t, []string{"CEDULA", "NOMBRE", "LUGAR", "__EMPTY", "NOMBRE_1"}, ds.Headers)
	require.Equal(t, 2, ds.Len())

	first := ds.Records[0]
	assert.Equal(t, "123", first.String("CEDULA"))
	assert.Equal(t, "dup", first.String("NOMBRE_1"))
	assert.Equal(t, "x", first.String("__EMPTY"))

	second := ds.Records[1]
	assert.Equal(t, "Pérez, Ana", second.String("NOMBRE"))
	_, ok := second.Get("LUGAR")
	assert.False(t, ok, "empty cells are absent")
	assert.Equal(t, 3, ds.Row(1), "blank rows do not count")
}

func TestLoadCSVDelimiters(t *testing.T) {
	semicolon := writeFile(t, "export.csv", "CEDULA;NOMBRE\n1;Ana\n")
	ds, err := datasets.Load(context.Background(), datasets.Source{Path: semicolon})
	require.NoError(t, err)
	assert.Equal(t, []string{"CEDULA", "NOMBRE"}, ds.Headers)
	assert.Equal(t, "Ana", ds.Records[0].String("NOMBRE"))

	tsv := writeFile(t, "export.tsv", "ID\tNAME, FULL\n1\tSmith, John\n")
	ds, err = datasets.Load(context.Background(), datasets.Source{Path: tsv})
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "NAME, FULL"}, ds.Headers)
	assert.Equal(t, "Smith, John", ds.Records[0].String("NAME, FULL"))
}

func TestLoadCSVLeadingBlankRows(t *testing.T) {
	path := writeFile(t, "padded.csv", ",\n,\nID,NAME\n1,Ana\n")
	ds, err := datasets.Load(context.Background(), datasets.Source{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "NAME"}, ds.Headers)
	assert.Equal(t, 1, ds.Len())
}

func TestLoadCSVEmptyFile(t *testing.T) {
	ds, err := datasets.Load(context.Background(), datasets.Source{Path: writeFile(t, "empty.csv", "")})
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, ds.Headers)
}

func TestLoadMissingFile(t *testing.T) {
	for _, name := range []string{"missing.csv", "missing.xlsx", "missing.sqlite"} {
		_, err := datasets.Load(context.Background(), datasets.Source{
			Path:  filepath.Join(t.TempDir(), name),
			Table: "people",
		})
		require.Error(t, err, name)
		var ioErr *errors.IOError
		assert.True(t, errors.As(err, &ioErr), name)
		assert.ErrorIs(t, err, os.ErrNotExist, name)
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	f := excelize.NewFile()
	_, err := f.NewSheet("Second")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Cédula", "Nombre", "Lugar"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"123", "José Pérez", "Sede Norte"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]any{456, "Ana Luz"}))
	require.NoError(t, f.SetSheetRow("Second", "A1", &[]any{"ID", "NAME"}))
	require.NoError(t, f.SetSheetRow("Second", "A2", &[]any{"9", "Bea"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := datasets.Load(context.Background(), datasets.Source{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "roster.xlsx", ds.Name)
	assert.Equal(t, []string{"Cédula", "Nombre", "Lugar"}, ds.Headers)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "José Pérez", ds.Records[0].String("Nombre"))
	assert.Equal(t, "456", ds.Records[1].String("Cédula"))
	assert.Equal(t, 0, len(ds.Records[1].String("Lugar")))

	ds, err = datasets.Load(context.Background(), datasets.Source{Path: path, Sheet: "Second"})
	require.NoError(t, err)
	assert.Equal(t, "roster.xlsx:Second", ds.Name)
	assert.Equal(t, "Bea", ds.Records[0].String("NAME"))

	_, err = datasets.Load(context.Background(), datasets.Source{Path: path, Sheet: "Nope"})
	assert.True(t, errors.IsNotFound(err))

	sheets, err := datasets.Sheets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sheet1", "Second"}, sheets)
}

func TestLoadXLSXCorrupt(t *testing.T) {
	path := writeFile(t, "broken.xlsx", "not a zip")
	_, err := datasets.Load(context.Background(), datasets.Source{Path: path})
	require.Error(t, err)
	var perr *errors.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestLoadSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "hr.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE people (cedula INTEGER, nombre TEXT, lugar TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO people VALUES (123, 'John Smith', 'HQ'), (456, 'Ana', NULL), (NULL, NULL, NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	ds, err := datasets.Load(ctx, datasets.Source{Path: path, Table: "people"})
	require.NoError(t, err)
	assert.Equal(t, "hr.sqlite:people", ds.Name)
	assert.Equal(t, []string{"cedula", "nombre", "lugar"}, ds.Headers)
	require.Equal(t, 2, ds.Len(), "all-null rows are blank")
	v, ok := ds.Records[0].Get("cedula")
	require.True(t, ok)
	assert.Equal(t, int64(123), v)
	_, ok = ds.Records[1].Get("lugar")
	assert.False(t, ok)

	ds, err = datasets.Load(ctx, datasets.Source{Path: path, Query: "SELECT nombre AS name FROM people WHERE cedula = 456"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, ds.Headers)
	assert.Equal(t, "Ana", ds.Records[0].String("name"))

	tables, err := datasets.Tables(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"people"}, tables)

	_, err = datasets.Load(ctx, datasets.Source{Path: path})
	assert.True(t, errors.IsValidationError(err))

	_, err = datasets.Load(ctx, datasets.Source{Path: path, Table: "missing"})
	var perr *errors.ParseError
	assert.True(t, errors.As(err, &perr))
}
