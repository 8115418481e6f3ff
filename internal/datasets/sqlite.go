package datasets

import (
	"context"
	"database/sql"
	"os"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/agentstation/rostercheck/pkg/errors"
)

// readSQLite runs src.Query, or selects every row of src.Table. The column
// names become the header row.
func readSQLite(ctx context.Context, src Source) ([][]any, error) {
	query := src.Query
	if query == "" {
		if src.Table == "" {
			return nil, &errors.ValidationError{
				Field:   "table",
				Message: "a table or query is required for SQLite sources",
			}
		}
		query = "SELECT * FROM " + quoteIdent(src.Table)
	}

	// sql.Open would create a missing database file.
	if _, err := os.Stat(src.Path); err != nil {
		return nil, errors.WrapIO("open", src.Path, err)
	}

	db, err := sql.Open("sqlite", src.Path)
	if err != nil {
		return nil, errors.WrapIO("open", src.Path, err)
	}
	defer db.Close()

	rs, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.WrapParse("sqlite", src.Path, err)
	}
	defer rs.Close()

	columns, err := rs.Columns()
	if err != nil {
		return nil, errors.WrapParse("sqlite", src.Path, err)
	}
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	rows := [][]any{header}

	for rs.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, errors.WrapParse("sqlite", src.Path, err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		rows = append(rows, values)
	}
	if err := rs.Err(); err != nil {
		return nil, errors.WrapParse("sqlite", src.Path, err)
	}
	return rows, nil
}

// Tables lists the user tables of a SQLite database.
func Tables(ctx context.Context, path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer db.Close()

	rs, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, errors.WrapParse("sqlite", path, err)
	}
	defer rs.Close()

	var tables []string
	for rs.Next() {
		var name string
		if err := rs.Scan(&name); err != nil {
			return nil, errors.WrapParse("sqlite", path, err)
		}
		tables = append(tables, name)
	}
	return tables, rs.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
