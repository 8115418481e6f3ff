// Package validate implements the validate command, which reconciles a
// validation roster against a master roster.
package validate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/rostercheck/internal/appcontext"
)

// NewCommand creates the validate command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "core",
		Short:   "Reconcile a roster against the master roster",
		Args:    cobra.NoArgs,
		Long: `Validate compares every record of the validation roster with the master
roster, keyed by identifier, and reports:

• Duplicate records inside either roster (exact or with scrambled names)
• Scrambled names: same words, different order
• Wrong identifiers: the name exists in the master under another identifier
• Wrong names: the identifier exists with a different name
• Wrong workplaces (only when both rosters map a workplace column)
• Persons not found in the master roster

Columns come from the flags, the config file (mapping.master.identifier, ...)
or, with --auto-map, from the roster headers.`,
		Example: `  rostercheck validate --master master.xlsx --validation payroll.csv \
      --master-id CEDULA --master-name NOMBRE --validation-id ID --validation-name NAME
  rostercheck validate --master master.csv --validation check.csv --auto-map
  rostercheck validate --master hr.db --master-table staff --validation check.xlsx \
      --auto-map --export reports/ --export-format csv
  rostercheck validate --master m.csv --validation v.csv --auto-map -o json --fail-on-findings`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Execute(cmd.Context(), app, flags, cmd.OutOrStdout())
		},
	}

	flags = addFlags(cmd)

	return cmd
}
