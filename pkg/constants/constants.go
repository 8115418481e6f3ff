// Package constants provides shared constants used throughout the rostercheck codebase.
// This includes row numbering, file permissions, export naming and other values
// that must stay consistent between the core, the loaders and the CLI.
package constants

import "time"

// Row numbering constants describe how reported row numbers relate to
// record positions in a dataset.
const (
	// HeaderRows is the number of header rows preceding the data in a tabular source
	HeaderRows = 1

	// FirstDataRow is the reported row number of the first record (1-based, after the header)
	FirstDataRow = HeaderRows + 1
)

// Matching constants
const (
	// MinWordLength is the minimum length a name token needs to count as a word
	MinWordLength = 2

	// KeySeparator joins normalized fields into an exact-duplicate key
	KeySeparator = "|"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Export constants
const (
	// ExportFilePrefix prefixes every exported workbook name
	ExportFilePrefix = "HR_Inconsistencies_"

	// ExportDateLayout is the date layout embedded in export file names
	ExportDateLayout = "2006-01-02"

	// ExportExtension is the extension of the exported workbook
	ExportExtension = ".xlsx"
)

// Document labels
const (
	// MasterLabel is the default label of the authoritative dataset
	MasterLabel = "Master"

	// ValidationLabel is the default label of the dataset being checked
	ValidationLabel = "Validation"
)

// Timeout constants
const (
	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// ShutdownTimeout bounds cleanup after a failed command
	ShutdownTimeout = 5 * time.Second
)

// Path constants
const (
	// ConfigName is the base name of the configuration file searched in $HOME and the working directory
	ConfigName = ".rostercheck"
)
