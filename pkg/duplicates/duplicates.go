// Package duplicates finds repeated records within a single dataset.
//
// Records are processed in source order. A record whose normalized
// identifier, name and workplace all match an earlier record is an exact
// duplicate. A record sharing identifier and workplace with an earlier record
// whose name has the same words in another order is a scrambled duplicate.
// Duplicates are never remembered themselves, so later records are always
// compared against the first occurrence.
package duplicates

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/rostercheck/pkg/findings"
	"github.com/agentstation/rostercheck/pkg/normalize"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Detector detects duplicates and logs each one at trace level.
type Detector struct {
	logger *zerolog.Logger
}

// NewDetector creates a detector. A nil logger disables logging.
func NewDetector(logger *zerolog.Logger) *Detector {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Detector{logger: logger}
}

// Detect runs a detector without logging.
func Detect(ds *records.Dataset, fields records.Fields, doc findings.Document) []findings.Duplicate {
	return NewDetector(nil).Detect(ds, fields, doc)
}

// seen is a first occurrence.
type seen struct {
	name string
	row  int
}

// Detect returns the duplicates of ds in source order.
func (d *Detector) Detect(ds *records.Dataset, fields records.Fields, doc findings.Document) []findings.Duplicate {
	var dups []findings.Duplicate
	if ds.Len() == 0 {
		return dups
	}

	firstRow := make(map[string]int)
	// byIdentity lists first occurrences per identifier+workplace in
	// insertion order.
	byIdentity := make(map[string][]seen)

	for i, rec := range ds.Records {
		identifier := normalize.Text(rec.Value(fields.Identifier))
		if identifier == "" {
			continue
		}
		name := normalize.Text(rec.Value(fields.Name))
		workplace := normalize.Text(rec.Value(fields.Workplace))
		row := ds.Row(i)
		key := normalize.Key(identifier, name, workplace)

		if first, ok := firstRow[key]; ok {
			dups = append(dups, findings.Duplicate{
				Type:       findings.KindExactDuplicate,
				Identifier: identifier,
				Name:       name,
				Workplace:  workplace,
				CurrentRow: row,
				FirstRow:   first,
				Document:   doc,
				Record:     rec,
			})
			d.logger.Trace().
				Str("document", string(doc)).
				Str("identifier", identifier).
				Int("row", row).
				Int("first_row", first).
				Msg("Exact duplicate")
			continue
		}

		identity := normalize.Key(identifier, workplace)
		if prior, ok := scrambledMatch(byIdentity[identity], name); ok {
			dups = append(dups, findings.Duplicate{
				Type:         findings.KindScrambledDuplicate,
				Identifier:   identifier,
				Name:         name,
				Workplace:    workplace,
				CurrentRow:   row,
				FirstRow:     prior.row,
				Document:     doc,
				OriginalName: prior.name,
				Record:       rec,
			})
			d.logger.Trace().
				Str("document", string(doc)).
				Str("identifier", identifier).
				Int("row", row).
				Int("first_row", prior.row).
				Msg("Scrambled duplicate")
			continue
		}

		firstRow[key] = row
		byIdentity[identity] = append(byIdentity[identity], seen{name: name, row: row})
	}

	d.logger.Debug().
		Str("document", string(doc)).
		Int("records", ds.Len()).
		Int("duplicates", len(dups)).
		Msg("Duplicate detection complete")

	return dups
}

// scrambledMatch returns the first prior occurrence with a different name
// that is scrambled-equal to name.
func scrambledMatch(candidates []seen, name string) (seen, bool) {
	for _, c := range candidates {
		if c.name != name && normalize.IsScrambled(c.name, name) {
			return c, true
		}
	}
	return seen{}, false
}
