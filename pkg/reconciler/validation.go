package reconciler

import (
	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/records"
)

// validateInputs reports every input problem before a run starts: missing
// or empty datasets, an incomplete mapping, and mapped columns that a
// dataset does not have.
func validateInputs(master, validation *records.Dataset, mapping records.Mapping) error {
	var errs []error
	if master.Len() == 0 {
		errs = append(errs, errors.WrapValidation("master", errors.ErrEmptyDataset))
	}
	if validation.Len() == 0 {
		errs = append(errs, errors.WrapValidation("validation", errors.ErrEmptyDataset))
	}
	if err := mapping.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return errors.Join(
		mapping.Master.Check(master, "master"),
		mapping.Validation.Check(validation, "validation"),
	)
}
