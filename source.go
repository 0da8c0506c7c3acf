package parallel

import "context"

// Source yields the items of one run, one at a time, in order.
// Next returns ok == false when the sequence is exhausted. A non-nil error
// aborts iteration; items yielded before the failure are still processed.
// A Source is iterated exactly once, by a single goroutine.
type Source[T any] interface {
	Next(ctx context.Context) (item T, ok bool, err error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func(ctx context.Context) (T, bool, error)

func (f SourceFunc[T]) Next(ctx context.Context) (T, bool, error) { return f(ctx) }

// sliceSource iterates a slice; it can never fail.
type sliceSource[T any] struct {
	items []T
	next  int
}

func (s *sliceSource[T]) Next(context.Context) (T, bool, error) {
	if s.next >= len(s.items) {
		var zero T
		return zero, false, nil
	}
	it := s.items[s.next]
	s.next++
	return it, true, nil
}
