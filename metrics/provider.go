// Package metrics defines the instrument surface the parallel runtime
// records into, decoupled from any concrete metrics backend. The runtime
// records items processed, items failed, busy workers, and operation
// durations; callers bridge Provider to their backend of choice.
package metrics

// Provider constructs instruments by name. Implementations must be safe for
// concurrent use and must return the same instrument for the same name.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts. Safe for concurrent use.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that move up and down, such as the number of
// currently busy workers. Safe for concurrent use.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements, such as
// per-operation durations in seconds. Safe for concurrent use.
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries advisory instrument metadata.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g. "1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}
