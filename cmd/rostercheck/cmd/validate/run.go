package validate

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/rostercheck/internal/appcontext"
	"github.com/agentstation/rostercheck/internal/cmd/output"
	"github.com/agentstation/rostercheck/internal/config"
	"github.com/agentstation/rostercheck/internal/datasets"
	"github.com/agentstation/rostercheck/internal/export"
	"github.com/agentstation/rostercheck/internal/matcher"
	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/logging"
	"github.com/agentstation/rostercheck/pkg/reconciler"
	"github.com/agentstation/rostercheck/pkg/records"
	"github.com/agentstation/rostercheck/pkg/report"
)

// ErrFindings is returned with --fail-on-findings when the run found
// inconsistencies.
var ErrFindings = errors.New("inconsistencies found")

// now is replaced in tests.
var now = time.Now

// Execute loads both rosters, reconciles them, prints the findings to w and
// exports them when requested.
func Execute(ctx context.Context, app appcontext.Interface, flags *Flags, w io.Writer) error {
	logger := app.Logger()
	ctx = logging.WithLogger(ctx, logger)

	format, err := output.ParseFormat(string(output.DetectFormat(app.OutputFormat())))
	if err != nil {
		return errors.NewValidationError("format", app.OutputFormat(), err.Error())
	}

	var exportFormat export.Format
	if flags.Export != "" {
		if exportFormat, err = export.ParseFormat(flags.ExportFormat); err != nil {
			return err
		}
	}

	master, err := datasets.Load(ctx, flags.Master)
	if err != nil {
		return err
	}
	validation, err := datasets.Load(ctx, flags.Validation)
	if err != nil {
		return err
	}

	mapping := resolveMapping(flags, app.Mapping(), master, validation, logger)

	r, err := newReconciler(app, flags)
	if err != nil {
		return err
	}

	result, err := r.Reconcile(ctx, master, validation, mapping)
	if err != nil {
		return err
	}

	rep := report.New(result.Findings, reportOptions(flags, result)...)

	if err := printResult(w, format, result, rep); err != nil {
		return err
	}

	if flags.Export != "" && !rep.Empty() {
		paths, err := export.ToPath(flags.Export, exportFormat, rep, now())
		if err != nil {
			return err
		}
		for _, p := range paths {
			logger.Info().Str("path", p).Str("format", string(exportFormat)).Msg("Report exported")
		}
		printExported(w, format, paths)
	}

	if flags.FailOnFindings && !rep.Empty() {
		return ErrFindings
	}
	return nil
}

// resolveMapping merges the flag mapping over the configured one and, with
// --auto-map, fills what is still missing from the roster headers.
func resolveMapping(flags *Flags, configured records.Mapping, master, validation *records.Dataset, logger *zerolog.Logger) records.Mapping {
	mapping := config.MergeMapping(flags.Mapping, configured)
	if !flags.AutoMap {
		return mapping
	}

	mapping.Master = mapping.Master.Merge(matcher.SuggestFields(master.Headers))
	mapping.Validation = mapping.Validation.Merge(matcher.SuggestFields(validation.Headers))

	logger.Debug().
		Str("master_identifier", mapping.Master.Identifier).
		Str("master_name", mapping.Master.Name).
		Str("master_workplace", mapping.Master.Workplace).
		Str("validation_identifier", mapping.Validation.Identifier).
		Str("validation_name", mapping.Validation.Name).
		Str("validation_workplace", mapping.Validation.Workplace).
		Msg("Columns mapped")

	return mapping
}

func newReconciler(app appcontext.Interface, flags *Flags) (reconciler.Reconciler, error) {
	if flags.LinearScan {
		return app.ReconcilerWithOptions(reconciler.WithLinearScan())
	}
	return app.Reconciler()
}

func reportOptions(flags *Flags, result *reconciler.Result) []report.Option {
	opts := []report.Option{
		report.WithDocumentLabels(result.Metadata.MasterLabel, result.Metadata.ValidationLabel),
	}
	if flags.OriginalColumns {
		opts = append(opts, report.WithOriginalColumns())
	}
	return opts
}
