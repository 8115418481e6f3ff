package records

import (
	"fmt"

	"github.com/agentstation/rostercheck/pkg/errors"
)

// Fields names the columns of one dataset that carry the identifier, the
// person's name and the workplace. Workplace is optional.
type Fields struct {
	Identifier string `json:"identifier" yaml:"identifier" mapstructure:"identifier"`
	Name       string `json:"name" yaml:"name" mapstructure:"name"`
	Workplace  string `json:"workplace,omitempty" yaml:"workplace,omitempty" mapstructure:"workplace"`
}

// HasWorkplace reports whether a workplace column is mapped.
func (f Fields) HasWorkplace() bool {
	return f.Workplace != ""
}

// IsZero reports whether no column is mapped.
func (f Fields) IsZero() bool {
	return f == Fields{}
}

// Merge returns f with every empty column filled from other.
func (f Fields) Merge(other Fields) Fields {
	if f.Identifier == "" {
		f.Identifier = other.Identifier
	}
	if f.Name == "" {
		f.Name = other.Name
	}
	if f.Workplace == "" {
		f.Workplace = other.Workplace
	}
	return f
}

// Validate checks that the mandatory columns are set. document prefixes the
// field names in errors.
func (f Fields) Validate(document string) error {
	var errs []error
	if f.Identifier == "" {
		errs = append(errs, errors.NewValidationError(document+".identifier", f.Identifier, "column is required"))
	}
	if f.Name == "" {
		errs = append(errs, errors.NewValidationError(document+".name", f.Name, "column is required"))
	}
	return errors.Join(errs...)
}

// Check verifies that every mapped column exists in the dataset headers.
// Datasets without headers are not checked.
func (f Fields) Check(ds *Dataset, document string) error {
	if ds == nil || len(ds.Headers) == 0 {
		return nil
	}
	var errs []error
	for _, c := range []struct{ field, column string }{
		{"identifier", f.Identifier},
		{"name", f.Name},
		{"workplace", f.Workplace},
	} {
		if c.column != "" && !ds.HasColumn(c.column) {
			errs = append(errs, errors.NewValidationError(
				document+"."+c.field, c.column,
				fmt.Sprintf("column %q not found in %s", c.column, ds.Name)))
		}
	}
	return errors.Join(errs...)
}

// Mapping is the column mapping for both datasets.
type Mapping struct {
	Master     Fields `json:"master" yaml:"master" mapstructure:"master"`
	Validation Fields `json:"validation" yaml:"validation" mapstructure:"validation"`
}

// Validate reports every missing mandatory column.
func (m Mapping) Validate() error {
	return errors.Join(
		m.Master.Validate("master"),
		m.Validation.Validate("validation"),
	)
}

// CompareWorkplace reports whether both datasets map a workplace column.
func (m Mapping) CompareWorkplace() bool {
	return m.Master.HasWorkplace() && m.Validation.HasWorkplace()
}
