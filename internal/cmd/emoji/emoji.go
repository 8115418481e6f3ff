// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents a clean run or a completed export.
	Success = "✓"

	// Error represents failures such as unreadable datasets.
	Error = "✗"

	// Warning represents inconsistencies found in the rosters.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"
)
