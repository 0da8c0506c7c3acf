package metrics

import (
	"sync"
	"sync/atomic"
)

// MemoryProvider is an in-memory Provider suitable for tests, examples, and
// lightweight introspection. Instruments are created on demand by name and
// reused for the same name; recorded values can be read back via Snapshot
// methods.
type MemoryProvider struct {
	mu         sync.Mutex
	counters   map[string]*MemoryCounter
	updowns    map[string]*MemoryCounter
	histograms map[string]*MemoryHistogram
}

// NewMemoryProvider constructs an empty MemoryProvider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		counters:   make(map[string]*MemoryCounter),
		updowns:    make(map[string]*MemoryCounter),
		histograms: make(map[string]*MemoryHistogram),
	}
}

// Counter returns the counter registered under name, creating it on first use.
func (p *MemoryProvider) Counter(name string, _ ...InstrumentOption) Counter {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.counters[name]
	if !ok {
		c = &MemoryCounter{}
		p.counters[name] = c
	}
	return c
}

// UpDownCounter returns the up/down counter registered under name, creating
// it on first use.
func (p *MemoryProvider) UpDownCounter(name string, _ ...InstrumentOption) UpDownCounter {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, ok := p.updowns[name]
	if !ok {
		u = &MemoryCounter{}
		p.updowns[name] = u
	}
	return u
}

// Histogram returns the histogram registered under name, creating it on
// first use.
func (p *MemoryProvider) Histogram(name string, _ ...InstrumentOption) Histogram {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.histograms[name]
	if !ok {
		h = &MemoryHistogram{}
		p.histograms[name] = h
	}
	return h
}

// CounterValue returns the current value of the named counter, or zero if it
// was never created.
func (p *MemoryProvider) CounterValue(name string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.counters[name]; ok {
		return c.Value()
	}
	return 0
}

// UpDownValue returns the current value of the named up/down counter, or
// zero if it was never created.
func (p *MemoryProvider) UpDownValue(name string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok := p.updowns[name]; ok {
		return u.Value()
	}
	return 0
}

// HistogramSnapshot returns a snapshot of the named histogram, or a zero
// snapshot if it was never created.
func (p *MemoryProvider) HistogramSnapshot(name string) HistSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.histograms[name]; ok {
		return h.Snapshot()
	}
	return HistSnapshot{}
}

// MemoryCounter is a thread-safe counter used for both monotonic and
// up/down instruments.
type MemoryCounter struct {
	val atomic.Int64
}

// Add adds n to the current value.
func (c *MemoryCounter) Add(n int64) { c.val.Add(n) }

// Value returns the current value.
func (c *MemoryCounter) Value() int64 { return c.val.Load() }

// MemoryHistogram tracks count, sum, min, and max of recorded measurements.
// It keeps no buckets.
type MemoryHistogram struct {
	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

// Record adds one measurement.
func (h *MemoryHistogram) Record(v float64) {
	h.mu.Lock()
	if h.count == 0 {
		h.min, h.max = v, v
	} else {
		if v < h.min {
			h.min = v
		}
		if v > h.max {
			h.max = v
		}
	}
	h.count++
	h.sum += v
	h.mu.Unlock()
}

// HistSnapshot is an immutable view of a MemoryHistogram.
type HistSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// Snapshot returns the histogram state at the time of the call.
func (h *MemoryHistogram) Snapshot() HistSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return HistSnapshot{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
}
