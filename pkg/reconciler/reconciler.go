// Package reconciler checks a validation roster against a master roster.
//
// A run detects duplicates inside both datasets, indexes the master records
// by normalized identifier, and classifies every validation record:
//
//   - identifier unknown: wrong identifier when the exact name is registered
//     under another identifier, scrambled name when only the words match,
//     not found otherwise;
//   - identifier known: scrambled or wrong name when the names differ, plus
//     wrong workplace when both datasets carry a differing workplace.
//
// Validation records already reported as duplicates are not classified
// again. A Reconciler holds only immutable options and is safe for
// concurrent use.
package reconciler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/rostercheck/pkg/duplicates"
	"github.com/agentstation/rostercheck/pkg/findings"
	"github.com/agentstation/rostercheck/pkg/logging"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Reconciler is the main interface for reconciling two rosters.
type Reconciler interface {
	// Reconcile checks validation against master using mapping.
	Reconcile(ctx context.Context, master, validation *records.Dataset, mapping records.Mapping) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	options *options
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{options: options}, nil
}

// Reconcile performs reconciliation with clean step-by-step flow.
func (r *reconciler) Reconcile(ctx context.Context, master, validation *records.Dataset, mapping records.Mapping) (*Result, error) {
	// Step 1: Validate inputs before any state is built
	if err := validateInputs(master, validation, mapping); err != nil {
		return nil, err
	}

	result := NewResult(r.options.clock())
	result.Metadata.MasterSource = master.Name
	result.Metadata.ValidationSource = validation.Name
	result.Metadata.MasterLabel = r.options.masterLabel
	result.Metadata.ValidationLabel = r.options.validationLabel
	result.Metadata.Strategy = r.options.strategy.Type()

	logger := r.logger(ctx, result)
	logger.Info().
		Str("master", master.Name).
		Str("validation", validation.Name).
		Int("master_records", master.Len()).
		Int("validation_records", validation.Len()).
		Str("strategy", r.options.strategy.Type().String()).
		Msg("Starting reconciliation")

	// Step 2: Detect duplicates within each dataset
	detector := duplicates.NewDetector(logger)
	masterDups := detector.Detect(master, mapping.Master, findings.Master)
	validationDups := detector.Detect(validation, mapping.Validation, findings.Validation)
	result.Findings.AddDuplicates(masterDups...)
	result.Findings.AddDuplicates(validationDups...)

	// Step 3: Build the master index
	index := BuildIndex(master, mapping.Master)
	logger.Debug().
		Int("identifiers", index.Len()).
		Int("overwritten", index.Overwritten()).
		Int("skipped", index.Skipped()).
		Str("document", r.options.masterLabel).
		Msg("Master index built")

	// Step 4: Classify validation records
	c := newClassifier(index, mapping, validationDups, r.options.strategy, logger)
	c.run(validation)
	result.Findings.Merge(c.set)

	// Step 5: Build and return result
	result.Metadata.Stats = ResultStatistics{
		MasterRecords:          master.Len(),
		ValidationRecords:      validation.Len(),
		IndexedIdentifiers:     index.Len(),
		OverwrittenIdentifiers: index.Overwritten(),
		SkippedMaster:          index.Skipped(),
		SkippedValidation:      c.skipped,
		DuplicatesSkipped:      c.duplicates,
		Classified:             c.classified,
	}
	result.Finalize(r.options.clock())

	logger.Info().
		Int("findings", result.Findings.Total()).
		Int("duplicates", result.Findings.Count(findings.CategoryDuplicates)).
		Dur("duration", result.Metadata.Duration).
		Msg("Reconciliation complete")

	return result, nil
}

// logger returns the configured logger, or the context logger, tagged with
// the run ID.
func (r *reconciler) logger(ctx context.Context, result *Result) *zerolog.Logger {
	if r.options.logger != nil {
		l := r.options.logger.With().Str("run_id", result.Metadata.RunID.String()).Logger()
		return &l
	}
	ctx = logging.WithRunID(ctx, result.Metadata.RunID.String())
	return logging.FromContext(ctx)
}
