package validate

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentstation/rostercheck/internal/datasets"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Flags holds the validate command flags.
type Flags struct {
	Master     datasets.Source
	Validation datasets.Source
	Mapping    records.Mapping

	AutoMap bool

	Export          string
	ExportFormat    string
	OriginalColumns bool

	LinearScan     bool
	FailOnFindings bool
}

// addFlags registers the validate flags on cmd.
func addFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	f := cmd.Flags()

	addDocumentFlags(f, "master", "the master roster", &flags.Master, &flags.Mapping.Master)
	addDocumentFlags(f, "validation", "the roster to validate", &flags.Validation, &flags.Mapping.Validation)
	f.BoolVar(&flags.AutoMap, "auto-map", false, "suggest unmapped columns from the roster headers")

	f.StringVar(&flags.Export, "export", "", "export findings to this file or directory")
	f.StringVar(&flags.ExportFormat, "export-format", "", "export format: xlsx, csv, md (default xlsx)")
	f.BoolVar(&flags.OriginalColumns, "original-columns", false, "include the original record columns in exports")

	f.BoolVar(&flags.LinearScan, "linear-scan", false, "look up names by scanning the master roster instead of indexes")
	f.BoolVar(&flags.FailOnFindings, "fail-on-findings", false, "exit non-zero when any inconsistency is found")

	_ = cmd.MarkFlagRequired("master")
	_ = cmd.MarkFlagRequired("validation")

	return flags
}

// addDocumentFlags registers the source and column flags of one roster,
// e.g. --master, --master-id, --master-sheet.
func addDocumentFlags(f *pflag.FlagSet, prefix, desc string, src *datasets.Source, fields *records.Fields) {
	f.StringVar(&src.Path, prefix, "", desc+" file (csv, xlsx, sqlite)")

	f.StringVar(&fields.Identifier, prefix+"-id", "", "identifier column of "+desc)
	f.StringVar(&fields.Name, prefix+"-name", "", "name column of "+desc)
	f.StringVar(&fields.Workplace, prefix+"-workplace", "", "workplace column of "+desc)

	f.StringVar(&src.Sheet, prefix+"-sheet", "", "worksheet when "+desc+" is an xlsx file (default first)")
	f.StringVar(&src.Table, prefix+"-table", "", "table when "+desc+" is a sqlite file")
	f.StringVar(&src.Query, prefix+"-query", "", "SELECT statement when "+desc+" is a sqlite file")
}
