package metrics

import (
	"sync"
	"testing"
)

func TestMemoryProvider_CounterReusedByName(t *testing.T) {
	p := NewMemoryProvider()

	c1 := p.Counter("items")
	c2 := p.Counter("items")
	if c1 != c2 {
		t.Fatalf("Counter returned distinct instruments for the same name")
	}

	c1.Add(2)
	c2.Add(3)
	if got := p.CounterValue("items"); got != 5 {
		t.Fatalf("CounterValue = %d; want 5", got)
	}
}

func TestMemoryProvider_UpDown(t *testing.T) {
	p := NewMemoryProvider()

	u := p.UpDownCounter("busy")
	u.Add(3)
	u.Add(-2)
	if got := p.UpDownValue("busy"); got != 1 {
		t.Fatalf("UpDownValue = %d; want 1", got)
	}
}

func TestMemoryProvider_Histogram(t *testing.T) {
	p := NewMemoryProvider()

	h := p.Histogram("duration")
	for _, v := range []float64{0.5, 0.1, 0.9} {
		h.Record(v)
	}

	snap := p.HistogramSnapshot("duration")
	if snap.Count != 3 {
		t.Fatalf("Count = %d; want 3", snap.Count)
	}
	if snap.Min != 0.1 || snap.Max != 0.9 {
		t.Fatalf("Min/Max = %v/%v; want 0.1/0.9", snap.Min, snap.Max)
	}
	if snap.Sum != 1.5 {
		t.Fatalf("Sum = %v; want 1.5", snap.Sum)
	}
}

func TestMemoryProvider_UnknownNames(t *testing.T) {
	p := NewMemoryProvider()
	if got := p.CounterValue("missing"); got != 0 {
		t.Fatalf("CounterValue for unknown name = %d; want 0", got)
	}
	if snap := p.HistogramSnapshot("missing"); snap.Count != 0 {
		t.Fatalf("HistogramSnapshot for unknown name = %+v; want zero", snap)
	}
}

func TestMemoryProvider_ConcurrentUse(t *testing.T) {
	p := NewMemoryProvider()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.Counter("items").Add(1)
				p.Histogram("duration").Record(1)
			}
		}()
	}
	wg.Wait()

	if got := p.CounterValue("items"); got != 800 {
		t.Fatalf("CounterValue = %d; want 800", got)
	}
	if snap := p.HistogramSnapshot("duration"); snap.Count != 800 {
		t.Fatalf("histogram Count = %d; want 800", snap.Count)
	}
}
