package reconciler

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/rostercheck/pkg/findings"
	"github.com/agentstation/rostercheck/pkg/logging"
	"github.com/agentstation/rostercheck/pkg/normalize"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Classify checks every validation record against the master index and
// returns the cross-document findings. dups are the duplicates already found
// in the validation dataset; those records are not classified again. The
// returned set does not include dups.
func Classify(index *Index, validation *records.Dataset, mapping records.Mapping, dups []findings.Duplicate, opts ...Option) *findings.Set {
	o, err := newOptions(opts...)
	if err != nil {
		logging.Default().Warn().Err(err).Msg("Ignoring invalid classify options")
		o = defaultOptions()
	}
	logger := o.logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	c := newClassifier(index, mapping, dups, o.strategy, logger)
	c.run(validation)
	return c.set
}

// dupKey identifies a duplicate validation record.
type dupKey struct {
	identifier string
	row        int
}

// classifier holds the state of one classification pass.
type classifier struct {
	index    *Index
	mapping  records.Mapping
	strategy Strategy
	logger   *zerolog.Logger
	dups     map[dupKey]struct{}
	set      *findings.Set

	classified int
	skipped    int
	duplicates int
}

func newClassifier(index *Index, mapping records.Mapping, dups []findings.Duplicate, strategy Strategy, logger *zerolog.Logger) *classifier {
	c := &classifier{
		index:    index,
		mapping:  mapping,
		strategy: strategy,
		logger:   logger,
		dups:     make(map[dupKey]struct{}, len(dups)),
		set:      findings.NewSet(),
	}
	for _, d := range dups {
		if d.Document == findings.Validation {
			c.dups[dupKey{identifier: d.Identifier, row: d.CurrentRow}] = struct{}{}
		}
	}
	return c
}

func (c *classifier) run(validation *records.Dataset) {
	fields := c.mapping.Validation
	for i := 0; i < validation.Len(); i++ {
		rec := validation.Records[i]
		identifier := normalize.Text(rec.Value(fields.Identifier))
		name := normalize.Text(rec.Value(fields.Name))
		if identifier == "" || name == "" {
			c.skipped++
			continue
		}

		v := candidate{
			identifier: identifier,
			name:       name,
			workplace:  normalize.Text(rec.Value(fields.Workplace)),
			row:        validation.Row(i),
			record:     rec,
		}

		// A duplicate is reported once, as a duplicate.
		if _, dup := c.dups[dupKey{identifier: identifier, row: v.row}]; dup {
			c.duplicates++
			continue
		}

		c.classified++
		if entry, ok := c.index.Lookup(identifier); ok {
			c.present(entry, v)
		} else {
			c.absent(v)
		}
	}
}

// candidate is a normalized validation record.
type candidate struct {
	identifier string
	name       string
	workplace  string
	row        int
	record     *records.Record
}

// absent classifies a record whose identifier is not in the master index.
func (c *classifier) absent(v candidate) {
	if e, ok := c.strategy.ExactName(c.index, v.name); ok {
		c.emit(findings.WrongIdentifier{
			WrongIdentifier:     v.identifier,
			CorrectIdentifier:   e.Identifier,
			Name:                v.name,
			WorkplaceMaster:     e.Workplace,
			WorkplaceValidation: v.workplace,
			RowMaster:           e.Row,
			RowValidation:       v.row,
			Master:              e.Record,
			Validation:          v.record,
		}, v)
		return
	}

	if e, ok := c.strategy.ScrambledName(c.index, v.name); ok {
		c.emit(findings.ScrambledName{
			Identifier:          v.identifier,
			CorrectName:         e.Name,
			ScrambledName:       v.name,
			WorkplaceMaster:     e.Workplace,
			WorkplaceValidation: v.workplace,
			RowMaster:           e.Row,
			RowValidation:       v.row,
			Master:              e.Record,
			Validation:          v.record,
		}, v)
		return
	}

	c.emit(findings.NotFound{
		Identifier:    v.identifier,
		Name:          v.name,
		Workplace:     v.workplace,
		RowValidation: v.row,
		Validation:    v.record,
	}, v)
}

// present classifies a record whose identifier is in the master index.
func (c *classifier) present(e *Entry, v candidate) {
	switch {
	case e.Name == v.name:
	case normalize.IsScrambled(e.Name, v.name):
		c.emit(findings.ScrambledName{
			Identifier:          v.identifier,
			CorrectName:         e.Name,
			ScrambledName:       v.name,
			WorkplaceMaster:     e.Workplace,
			WorkplaceValidation: v.workplace,
			RowMaster:           e.Row,
			RowValidation:       v.row,
			Master:              e.Record,
			Validation:          v.record,
		}, v)
	default:
		c.emit(findings.WrongName{
			Identifier:          v.identifier,
			CorrectName:         e.Name,
			WrongName:           v.name,
			WorkplaceMaster:     e.Workplace,
			WorkplaceValidation: v.workplace,
			RowMaster:           e.Row,
			RowValidation:       v.row,
			Master:              e.Record,
			Validation:          v.record,
		}, v)
	}

	if c.mapping.CompareWorkplace() && e.Workplace != "" && v.workplace != "" && e.Workplace != v.workplace {
		c.emit(findings.WrongWorkplace{
			Identifier:       v.identifier,
			Name:             e.Name,
			CorrectWorkplace: e.Workplace,
			WrongWorkplace:   v.workplace,
			RowMaster:        e.Row,
			RowValidation:    v.row,
			Master:           e.Record,
			Validation:       v.record,
		}, v)
	}
}

func (c *classifier) emit(f findings.Finding, v candidate) {
	c.set.Add(f)
	c.logger.Trace().
		Str("kind", f.Kind().String()).
		Str("identifier", v.identifier).
		Int("row", v.row).
		Msg("Finding")
}
