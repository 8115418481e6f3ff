package datasets

import (
	"fmt"
	"strings"

	"github.com/agentstation/rostercheck/pkg/records"
)

// emptyHeader names header cells without text.
const emptyHeader = "__EMPTY"

// build turns raw rows into a dataset. Cells must be nil, string, int64,
// float64 or bool.
func build(name string, rows [][]any) *records.Dataset {
	ds := records.NewDataset(name, nil, nil)

	start := -1
	width := 0
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		if start < 0 {
			start = i
		}
		width = max(width, len(row))
	}
	if start < 0 {
		return ds
	}

	raw := make([]string, width)
	for i, cell := range rows[start] {
		raw[i] = strings.TrimSpace(cellString(cell))
	}
	ds.Headers = uniqueHeaders(raw)

	for _, row := range rows[start+1:] {
		if isBlank(row) {
			continue
		}
		values := make([]any, len(row))
		for i, cell := range row {
			if !isEmpty(cell) {
				values[i] = cell
			}
		}
		ds.Records = append(ds.Records, records.New(ds.Headers, values))
	}
	return ds
}

// uniqueHeaders names empty headers and suffixes repeated ones.
func uniqueHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	suffix := make(map[string]int, len(raw))

	for i, h := range raw {
		base := h
		if base == "" {
			base = emptyHeader
		}
		name := base
		if used[name] {
			n := suffix[base]
			for used[name] {
				n++
				name = fmt.Sprintf("%s_%d", base, n)
			}
			suffix[base] = n
		}
		used[name] = true
		headers[i] = name
	}
	return headers
}

func isBlank(row []any) bool {
	for _, cell := range row {
		if !isEmpty(cell) {
			return false
		}
	}
	return true
}

func isEmpty(cell any) bool {
	switch v := cell.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []byte:
		return len(v) == 0
	default:
		return false
	}
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
