package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/rostercheck/pkg/reconciler"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a working default.
type Mock struct {
	ReconcilerFunc            func() (reconciler.Reconciler, error)
	ReconcilerWithOptionsFunc func(...reconciler.Option) (reconciler.Reconciler, error)
	MappingFunc               func() records.Mapping
	LoggerFunc                func() *zerolog.Logger
	OutputFormatFunc          func() string
	VersionFunc               func() string
	CommitFunc                func() string
	DateFunc                  func() string
	BuiltByFunc               func() string
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

// Reconciler returns a reconciler using the mock function or a default one.
func (m *Mock) Reconciler() (reconciler.Reconciler, error) {
	if m.ReconcilerFunc != nil {
		return m.ReconcilerFunc()
	}
	return reconciler.New()
}

// ReconcilerWithOptions returns a reconciler using the mock function or
// one built from opts.
func (m *Mock) ReconcilerWithOptions(opts ...reconciler.Option) (reconciler.Reconciler, error) {
	if m.ReconcilerWithOptionsFunc != nil {
		return m.ReconcilerWithOptionsFunc(opts...)
	}
	return reconciler.New(opts...)
}

// Mapping returns a mapping using the mock function or an empty one.
func (m *Mock) Mapping() records.Mapping {
	if m.MappingFunc != nil {
		return m.MappingFunc()
	}
	return records.Mapping{}
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
