// Package app provides the application context and dependency management
// for the rostercheck CLI. It centralizes configuration, logging and the
// reconciler so that commands receive their dependencies through
// appcontext.Interface.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/rostercheck/internal/appcontext"
	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/reconciler"
	"github.com/agentstation/rostercheck/pkg/records"
)

// App represents the rostercheck application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Command output, stdout when nil
	out io.Writer

	// Reconciler instance (lazy-initialized, singleton)
	mu         sync.RWMutex
	reconciler reconciler.Reconciler
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with the loaded configuration, which can be
// replaced using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Mapping returns the column mapping from the config file and environment.
func (a *App) Mapping() records.Mapping {
	return a.config.Mapping
}

// Reconciler returns the reconciler, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Reconciler() (reconciler.Reconciler, error) {
	a.mu.RLock()
	if a.reconciler != nil {
		r := a.reconciler
		a.mu.RUnlock()
		return r, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.reconciler != nil {
		return a.reconciler, nil
	}

	r, err := reconciler.New(a.buildReconcilerOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "reconciler", "", err)
	}

	a.reconciler = r
	return r, nil
}

// ReconcilerWithOptions returns a new reconciler built from the app
// configuration plus opts. Later options win.
func (a *App) ReconcilerWithOptions(opts ...reconciler.Option) (reconciler.Reconciler, error) {
	r, err := reconciler.New(append(a.buildReconcilerOptions(), opts...)...)
	if err != nil {
		return nil, errors.WrapResource("create", "reconciler", "with custom options", err)
	}
	return r, nil
}

// Shutdown releases application resources. Reconciliation holds no
// background work, so it only flushes a debug line.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return nil
}

// buildReconcilerOptions constructs reconciler options from the app configuration.
func (a *App) buildReconcilerOptions() []reconciler.Option {
	opts := []reconciler.Option{reconciler.WithLogger(a.logger)}

	if a.config.MasterLabel != "" || a.config.ValidationLabel != "" {
		opts = append(opts, reconciler.WithDocumentLabels(a.config.labels()))
	}

	if a.config.Strategy == reconciler.StrategyTypeLinear.String() {
		opts = append(opts, reconciler.WithLinearScan())
	}

	return opts
}

// resetReconciler drops the cached reconciler so the next call picks up a
// new logger or configuration.
func (a *App) resetReconciler() {
	a.mu.Lock()
	a.reconciler = nil
	a.mu.Unlock()
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return &errors.ValidationError{Field: "config", Message: "cannot be nil"}
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOutput sends command output to w.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}

// WithReconciler sets a custom reconciler instance (useful for testing).
func WithReconciler(r reconciler.Reconciler) Option {
	return func(a *App) error {
		a.reconciler = r
		return nil
	}
}
