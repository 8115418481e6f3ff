package reconciler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/rostercheck/pkg/constants"
	"github.com/agentstation/rostercheck/pkg/errors"
)

// Options configures a reconciler.
type options struct {
	strategy        Strategy
	logger          *zerolog.Logger
	masterLabel     string
	validationLabel string
	clock           func() time.Time
}

func defaultOptions() *options {
	return &options{
		strategy:        NewIndexedStrategy(),
		masterLabel:     constants.MasterLabel,
		validationLabel: constants.ValidationLabel,
		clock:           time.Now,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithStrategy sets the name lookup strategy.
func WithStrategy(strategy Strategy) Option {
	return func(o *options) error {
		if strategy == nil {
			return &errors.ValidationError{
				Field:   "strategy",
				Message: "cannot be nil",
			}
		}
		o.strategy = strategy
		return nil
	}
}

// WithLinearScan searches names by scanning master entries in row order
// instead of using the name indexes. Results are identical.
func WithLinearScan() Option {
	return WithStrategy(NewLinearStrategy())
}

// WithLogger sets the logger. Without it the logger is taken from the
// context passed to Reconcile.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &errors.ValidationError{
				Field:   "logger",
				Message: "cannot be nil",
			}
		}
		o.logger = logger
		return nil
	}
}

// WithDocumentLabels sets the labels used for both datasets in logs and
// result metadata.
func WithDocumentLabels(master, validation string) Option {
	return func(o *options) error {
		if master == "" || validation == "" {
			return &errors.ValidationError{
				Field:   "labels",
				Value:   []string{master, validation},
				Message: "document labels cannot be empty",
			}
		}
		o.masterLabel = master
		o.validationLabel = validation
		return nil
	}
}

// WithClock sets the time source for result metadata.
func WithClock(clock func() time.Time) Option {
	return func(o *options) error {
		if clock == nil {
			return &errors.ValidationError{
				Field:   "clock",
				Message: "cannot be nil",
			}
		}
		o.clock = clock
		return nil
	}
}
