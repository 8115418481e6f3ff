// Package columns implements the columns command, which shows the headers
// of a roster and the column mapping rostercheck would suggest for it.
package columns

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/rostercheck/internal/appcontext"
	"github.com/agentstation/rostercheck/internal/cmd/emoji"
	"github.com/agentstation/rostercheck/internal/cmd/output"
	"github.com/agentstation/rostercheck/internal/cmd/table"
	"github.com/agentstation/rostercheck/internal/datasets"
	"github.com/agentstation/rostercheck/internal/matcher"
	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/logging"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Info describes one roster.
type Info struct {
	Source    string         `json:"source" yaml:"source"`
	Records   int            `json:"records" yaml:"records"`
	Columns   []string       `json:"columns" yaml:"columns"`
	Suggested records.Fields `json:"suggested" yaml:"suggested"`

	// Sheets or tables available in the file, when it has several.
	Sheets []string `json:"sheets,omitempty" yaml:"sheets,omitempty"`
	Tables []string `json:"tables,omitempty" yaml:"tables,omitempty"`
}

// NewCommand creates the columns command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var src datasets.Source

	cmd := &cobra.Command{
		Use:     "columns FILE",
		GroupID: "core",
		Short:   "List the columns of a roster and the suggested mapping",
		Args:    cobra.ExactArgs(1),
		Example: `  rostercheck columns master.xlsx
  rostercheck columns master.xlsx --sheet Personal
  rostercheck columns hr.db --table staff -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src.Path = args[0]
			return Execute(cmd.Context(), app, src, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&src.Sheet, "sheet", "", "worksheet of an xlsx file (default first)")
	cmd.Flags().StringVar(&src.Table, "table", "", "table of a sqlite file")
	cmd.Flags().StringVar(&src.Query, "query", "", "SELECT statement for a sqlite file")

	return cmd
}

// Execute loads src and prints its columns to w.
func Execute(ctx context.Context, app appcontext.Interface, src datasets.Source, w io.Writer) error {
	ctx = logging.WithLogger(ctx, app.Logger())

	format, err := output.ParseFormat(string(output.DetectFormat(app.OutputFormat())))
	if err != nil {
		return errors.NewValidationError("format", app.OutputFormat(), err.Error())
	}

	info, err := Inspect(ctx, src)
	if err != nil {
		return err
	}

	if !output.IsTabular(format) {
		return output.NewFormatter(format).Format(w, info)
	}

	fmt.Fprintf(w, "%s %s: %d records, %d columns\n", emoji.Info, info.Source, info.Records, len(info.Columns))
	if len(info.Sheets) > 1 {
		fmt.Fprintf(w, "  sheets: %s\n", strings.Join(info.Sheets, ", "))
	}
	if len(info.Tables) > 0 {
		fmt.Fprintf(w, "  tables: %s\n", strings.Join(info.Tables, ", "))
	}
	fmt.Fprintln(w)

	ds := records.NewDataset(info.Source, info.Columns, nil)
	return output.NewFormatter(format).Format(w, table.ColumnsToTableData(ds, info.Suggested))
}

// Inspect loads src and describes it. A SQLite file without a table or
// query lists its tables instead of failing.
func Inspect(ctx context.Context, src datasets.Source) (*Info, error) {
	format, err := datasets.DetectFormat(src.Path)
	if err != nil {
		return nil, err
	}

	info := &Info{Source: src.Name()}

	switch format {
	case datasets.FormatSQLite:
		tables, err := datasets.Tables(ctx, src.Path)
		if err != nil {
			return nil, err
		}
		info.Tables = tables
		if src.Table == "" && src.Query == "" {
			return info, nil
		}
	case datasets.FormatXLSX:
		sheets, err := datasets.Sheets(src.Path)
		if err != nil {
			return nil, err
		}
		info.Sheets = sheets
	}

	ds, err := datasets.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	info.Records = ds.Len()
	info.Columns = ds.Headers
	info.Suggested = matcher.SuggestFields(ds.Headers)
	return info, nil
}
