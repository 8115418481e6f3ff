// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/rostercheck/pkg/reconciler"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/rostercheck/app implements this interface.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Reconciler returns the default reconciler, creating it lazily if needed.
	Reconciler() (reconciler.Reconciler, error)

	// ReconcilerWithOptions creates a new reconciler with custom options.
	// Use this when a command needs a specific configuration (e.g. --linear-scan).
	ReconcilerWithOptions(...reconciler.Option) (reconciler.Reconciler, error)

	// Mapping returns the column mapping configured in the config file or
	// environment. Flags are merged on top by the commands.
	Mapping() records.Mapping

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, markdown).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
