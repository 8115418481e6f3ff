package export

import (
	"io"
	"os"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/report"
)

// Markdown writes a title, a summary table and one section per non-empty
// category.
func Markdown(w io.Writer, rep *report.Report) error {
	if rep.Empty() {
		return errors.ErrNoInconsistencies
	}

	doc := md.NewMarkdown(w)
	doc.H1("HR Inconsistency Report").LF()
	doc.PlainTextf("%s inconsistencies found.", md.Bold(strconv.Itoa(rep.Total()))).LF()

	summary := make([][]string, 0, len(rep.Summary()))
	for _, c := range rep.Summary() {
		summary = append(summary, []string{c.Title, strconv.Itoa(c.Count)})
	}
	doc.H2("Summary").LF()
	doc.Table(md.TableSet{
		Header: []string{"Category", "Count"},
		Rows:   summary,
	}).LF()

	for _, sheet := range rep.Sheets() {
		doc.H2(sheet.Title).LF()
		rows := make([][]string, len(sheet.Rows))
		for i, row := range sheet.Rows {
			rows[i] = escapeCells(row)
		}
		doc.Table(md.TableSet{
			Header: sheet.Headers,
			Rows:   rows,
		}).LF()
	}

	return doc.Build()
}

// MarkdownFile writes the Markdown report to path.
func MarkdownFile(path string, rep *report.Report) error {
	if rep.Empty() {
		return errors.ErrNoInconsistencies
	}
	return writeFile(path, func(f *os.File) error {
		return Markdown(f, rep)
	})
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func escapeCells(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = cellEscaper.Replace(cell)
	}
	return out
}
