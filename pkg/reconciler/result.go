package reconciler

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agentstation/rostercheck/pkg/findings"
)

// Result represents the outcome of a reconciliation run.
type Result struct {
	// Findings holds the duplicates of both datasets followed by the
	// cross-document findings.
	Findings *findings.Set `json:"findings" yaml:"findings"`

	// Metadata
	Metadata ResultMetadata `json:"metadata" yaml:"metadata"`
}

// ResultMetadata contains metadata about the reconciliation run.
type ResultMetadata struct {
	// RunID uniquely identifies the run in logs and reports
	RunID uuid.UUID `json:"runId" yaml:"runId"`

	// StartTime when reconciliation started
	StartTime time.Time `json:"startTime" yaml:"startTime"`

	// EndTime when reconciliation completed
	EndTime time.Time `json:"endTime" yaml:"endTime"`

	// Duration of the reconciliation
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Sources that were reconciled
	MasterSource     string `json:"masterSource" yaml:"masterSource"`
	ValidationSource string `json:"validationSource" yaml:"validationSource"`

	// Labels used for both datasets
	MasterLabel     string `json:"masterLabel" yaml:"masterLabel"`
	ValidationLabel string `json:"validationLabel" yaml:"validationLabel"`

	// Strategy used for name lookups
	Strategy StrategyType `json:"strategy" yaml:"strategy"`

	// Statistics about the reconciliation
	Stats ResultStatistics `json:"stats" yaml:"stats"`
}

// ResultStatistics contains statistics about the reconciliation.
type ResultStatistics struct {
	MasterRecords          int   `json:"masterRecords" yaml:"masterRecords"`
	ValidationRecords      int   `json:"validationRecords" yaml:"validationRecords"`
	IndexedIdentifiers     int   `json:"indexedIdentifiers" yaml:"indexedIdentifiers"`
	OverwrittenIdentifiers int   `json:"overwrittenIdentifiers" yaml:"overwrittenIdentifiers"`
	SkippedMaster          int   `json:"skippedMaster" yaml:"skippedMaster"`
	SkippedValidation      int   `json:"skippedValidation" yaml:"skippedValidation"`
	DuplicatesSkipped      int   `json:"duplicatesSkipped" yaml:"duplicatesSkipped"`
	Classified             int   `json:"classified" yaml:"classified"`
	TotalTimeMs            int64 `json:"totalTimeMs" yaml:"totalTimeMs"`
}

// NewResult creates a new result with defaults.
func NewResult(start time.Time) *Result {
	return &Result{
		Findings: findings.NewSet(),
		Metadata: ResultMetadata{
			RunID:     uuid.New(),
			StartTime: start,
		},
	}
}

// IsConsistent returns true if no inconsistency was found.
func (r *Result) IsConsistent() bool {
	return r.Findings.Empty()
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	total := r.Findings.Total()
	if total == 0 {
		return fmt.Sprintf("Reconciliation completed. %d records checked, no inconsistencies found.",
			r.Metadata.Stats.ValidationRecords)
	}

	var parts []string
	for _, c := range findings.Categories() {
		if n := r.Findings.Count(c); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(c.Title())))
		}
	}
	return fmt.Sprintf("Reconciliation completed. %d inconsistencies found: %s.",
		total, strings.Join(parts, ", "))
}

// Finalize calculates duration and marks completion.
func (r *Result) Finalize(end time.Time) {
	r.Metadata.EndTime = end
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	r.Metadata.Stats.TotalTimeMs = r.Metadata.Duration.Milliseconds()
}
