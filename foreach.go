package parallel

import (
	"context"
	"iter"
)

// Operation is the caller-supplied per-item callback. It is invoked exactly
// once per item; worker is the stable index of the pool worker running it,
// in [0, Workers). Returning a non-nil error records a failure for the item
// without stopping sibling workers (unless WithStopOnError is set).
type Operation[T any] func(ctx context.Context, item T, worker int) error

// ForEach applies op to every element of items using a fixed pool of
// concurrent workers (default 16, see WithWorkers).
//
// It returns after the producer and every worker have terminated: nil when
// all items were processed successfully, otherwise the join of all recorded
// failures in observation order. Items are distributed to workers
// pull-based; no processing order is guaranteed across workers, while a
// single worker handles its items strictly one at a time.
func ForEach[T any](ctx context.Context, items []T, op Operation[T], opts ...Option) error {
	return run(ctx, &sliceSource[T]{items: items}, op, opts...)
}

// ForEachSeq applies op to every element yielded by seq, with the same
// semantics as ForEach. The sequence is consumed exactly once, in order.
func ForEachSeq[T any](ctx context.Context, seq iter.Seq[T], op Operation[T], opts ...Option) error {
	next, stop := iter.Pull(seq)
	defer stop()
	src := SourceFunc[T](func(context.Context) (T, bool, error) {
		v, ok := next()
		return v, ok, nil
	})
	return run(ctx, src, op, opts...)
}

// ForEachSource applies op to every item yielded by src, with the same
// semantics as ForEach. If src fails mid-iteration, the failure is recorded
// with the index at which iteration stopped, items yielded before it are
// still processed, and the call still joins all workers before returning.
func ForEachSource[T any](ctx context.Context, src Source[T], op Operation[T], opts ...Option) error {
	return run(ctx, src, op, opts...)
}
