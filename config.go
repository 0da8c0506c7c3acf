package parallel

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/parallel/metrics"
)

// DefaultWorkers is the pool size used when WithWorkers is not supplied.
const DefaultWorkers = 16

// config holds the per-call configuration assembled from options.
type config struct {
	// Workers defines the fixed worker pool size. Must be >= 1.
	// Default: DefaultWorkers.
	Workers int

	// FeedBuffer defines the size of the feed buffer between the producer
	// and the workers. Zero means an unbuffered hand-off.
	// Default: 0.
	FeedBuffer uint

	// StopOnError cancels the run on the first recorded failure: the
	// producer stops feeding and workers drain without invoking the
	// operation. In-flight invocations still complete and are joined.
	// Default: false.
	StopOnError bool

	// Metrics receives instrument recordings from the worker loop.
	// Default: nil (a no-op provider is substituted).
	Metrics metrics.Provider
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Workers:     DefaultWorkers,
		FeedBuffer:  0,
		StopOnError: false,
		Metrics:     nil,
	}
}

// validateConfig performs invariant checks on an assembled config.
func validateConfig(cfg *config) error {
	if cfg.Workers < 1 {
		return errorc.With(ErrInvalidConfig, errorc.String("", "worker count must be at least 1"))
	}
	return nil
}

// Option configures a single ForEach/Map call.
// Options returning an error cause the call to fail before any work starts.
type Option func(*config) error

// WithWorkers sets the fixed worker pool size (must be >= 1, default 16).
func WithWorkers(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithWorkers requires n >= 1"))
		}
		cfg.Workers = n
		return nil
	}
}

// WithFeedBuffer sets the size of the feed buffer between the producer and
// the workers (default 0, unbuffered).
func WithFeedBuffer(size uint) Option {
	return func(cfg *config) error { cfg.FeedBuffer = size; return nil }
}

// WithStopOnError stops feeding new items after the first failure.
// The run still drains and joins every worker before returning.
func WithStopOnError() Option {
	return func(cfg *config) error { cfg.StopOnError = true; return nil }
}

// WithMetrics wires a metrics provider into the worker loop.
// A nil provider is rejected; omit the option to disable metrics instead.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}
