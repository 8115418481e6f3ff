package validate

import (
	"fmt"
	"io"

	"github.com/agentstation/rostercheck/internal/cmd/emoji"
	"github.com/agentstation/rostercheck/internal/cmd/output"
	"github.com/agentstation/rostercheck/internal/cmd/table"
	"github.com/agentstation/rostercheck/pkg/reconciler"
	"github.com/agentstation/rostercheck/pkg/report"
)

// printResult writes the summary and one table per non-empty category for
// tabular formats, or the whole result for JSON and YAML.
func printResult(w io.Writer, format output.Format, result *reconciler.Result, rep *report.Report) error {
	formatter := output.NewFormatter(format)

	if !output.IsTabular(format) {
		return formatter.Format(w, result)
	}

	if rep.Empty() {
		fmt.Fprintf(w, "%s No inconsistencies found (%d records checked)\n",
			emoji.Success, result.Metadata.Stats.ValidationRecords)
		return nil
	}

	fmt.Fprintf(w, "%s %s\n\n", emoji.Warning, result.Summary())
	if err := formatter.Format(w, table.SummaryToTableData(rep)); err != nil {
		return err
	}

	for _, sheet := range rep.Sheets() {
		fmt.Fprintln(w)
		heading(w, format, fmt.Sprintf("%s (%d)", sheet.Title, len(sheet.Rows)))
		if err := formatter.Format(w, table.SheetToTableData(sheet)); err != nil {
			return err
		}
	}
	return nil
}

func heading(w io.Writer, format output.Format, title string) {
	if format == output.FormatMarkdown {
		fmt.Fprintf(w, "## %s\n\n", title)
		return
	}
	fmt.Fprintln(w, title)
}

// printExported lists the written files. Structured formats keep stdout
// machine-readable, so they rely on the log line instead.
func printExported(w io.Writer, format output.Format, paths []string) {
	if !output.IsTabular(format) {
		return
	}
	fmt.Fprintln(w)
	for _, p := range paths {
		fmt.Fprintf(w, "%s Exported %s\n", emoji.Success, p)
	}
}
