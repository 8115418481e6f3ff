package export_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/agentstation/rostercheck/internal/export"
	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/findings"
	"github.com/agentstation/rostercheck/pkg/report"
)

func sampleReport() *report.Report {
	set := findings.NewSet()
	set.Add(findings.WrongName{Identifier: "123", CorrectName: "JOHN SMITH", WrongName: "JON SMITH", RowMaster: 2, RowValidation: 3})
	set.Add(findings.NotFound{Identifier: "5", Name: "ANA | PAZ", RowValidation: 4})
	return report.New(set)
}

var day = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestEmptyReport(t *testing.T) {
	empty := report.New(nil)
	dir := t.TempDir()

	assert.ErrorIs(t, export.XLSX(&bytes.Buffer{}, empty), errors.ErrNoInconsistencies)
	assert.ErrorIs(t, export.XLSXFile(filepath.Join(dir, "a.xlsx"), empty), errors.ErrNoInconsistencies)
	assert.ErrorIs(t, export.Markdown(&bytes.Buffer{}, empty), errors.ErrNoInconsistencies)

	_, err := export.CSVDir(filepath.Join(dir, "csv"), empty)
	assert.ErrorIs(t, err, errors.ErrNoInconsistencies)

	_, err = export.ToPath(dir, export.FormatXLSX, nil, day)
	assert.True(t, errors.IsNoInconsistencies(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be written")
}

func TestXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.XLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Wrong Names", "Not Found"}, f.GetSheetList())

	rows, err := f.GetRows("Wrong Names")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Identifier", rows[0][0])
	assert.Equal(t, []string{"123", "JOHN SMITH", "JON SMITH"}, rows[1][:3])

	rows, err = f.GetRows("Not Found")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ANA | PAZ", rows[1][1])
}

func TestCSVDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := export.CSVDir(dir, sampleReport())
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "Wrong_Names.csv"),
		filepath.Join(dir, "Not_Found.csv"),
	}, paths)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	rows, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Identifier", rows[0][0])
	assert.Equal(t, "JON SMITH", rows[1][2])
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Markdown(&buf, sampleReport()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# HR Inconsistency Report"))
	assert.Contains(t, out, "**2** inconsistencies found.")
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "## Wrong Names")
	assert.Contains(t, out, "## Persons Not Found")
	assert.NotContains(t, out, "## Wrong Workplaces")
	assert.Contains(t, out, "ANA")
}

func TestToPath(t *testing.T) {
	rep := sampleReport()

	t.Run("directory gets dated name", func(t *testing.T) {
		dir := t.TempDir()
		paths, err := export.ToPath(dir, export.FormatXLSX, rep, day)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "HR_Inconsistencies_2026-03-14.xlsx")}, paths)
		assert.FileExists(t, paths[0])
	})

	t.Run("explicit markdown file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "report.md")
		paths, err := export.ToPath(path, export.FormatMarkdown, rep, day)
		require.NoError(t, err)
		assert.Equal(t, []string{path}, paths)
		assert.FileExists(t, path)
	})

	t.Run("csv directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "csv")
		paths, err := export.ToPath(dir, export.FormatCSV, rep, day)
		require.NoError(t, err)
		assert.Len(t, paths, 2)
	})
}

func TestParseFormat(t *testing.T) {
	tests := map[string]export.Format{
		"":         export.FormatXLSX,
		"XLSX":     export.FormatXLSX,
		"excel":    export.FormatXLSX,
		"csv":      export.FormatCSV,
		"markdown": export.FormatMarkdown,
		" md ":     export.FormatMarkdown,
	}
	for in, want := range tests {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := export.ParseFormat("pdf")
	assert.True(t, errors.IsValidationError(err))
	assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)
}
