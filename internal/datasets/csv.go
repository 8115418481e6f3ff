package datasets

import (
	"bufio"
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/rostercheck/pkg/errors"
)

// utf8BOM is stripped from the start of CSV files saved by spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV reads a delimited text file. The delimiter is a tab for .tsv
// files and otherwise the most frequent of comma, semicolon and tab on the
// first line.
func readCSV(path string) ([][]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	b = bytes.TrimPrefix(b, utf8BOM)

	r := csv.NewReader(bytes.NewReader(b))
	r.Comma = sniffDelimiter(path, b)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]any
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			perr := &errors.ParseError{Format: "csv", File: path, Message: err.Error(), Err: err}
			var csvErr *csv.ParseError
			if stderrors.As(err, &csvErr) {
				perr.Line = csvErr.Line
				perr.Message = csvErr.Err.Error()
			}
			return nil, perr
		}
		row := make([]any, len(rec))
		for i, cell := range rec {
			row[i] = cell
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func sniffDelimiter(path string, b []byte) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	line, _, _ := bufio.NewReader(bytes.NewReader(b)).ReadLine()
	best, bestCount := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := strings.Count(string(line), string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
