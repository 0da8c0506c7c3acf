package parallel

import (
	"context"
	"fmt"
	"time"

	"github.com/ygrebnov/parallel/metrics"
)

// worker is one consumer in the fixed pool. Its id is assigned at spawn and
// stays stable for the lifetime of the run; it is passed to every operation
// invocation the worker performs.
type worker[T any] struct {
	id   int
	feed *feed[T]
	op   Operation[T]
	rec  *recorder
	ins  instruments
}

// instruments holds the metric handles shared by all workers of one run.
type instruments struct {
	processed metrics.Counter
	failed    metrics.Counter
	busy      metrics.UpDownCounter
	duration  metrics.Histogram
}

func newInstruments(p metrics.Provider) instruments {
	return instruments{
		processed: p.Counter("parallel.items.processed",
			metrics.WithDescription("items processed successfully"), metrics.WithUnit("1")),
		failed: p.Counter("parallel.items.failed",
			metrics.WithDescription("items whose operation failed or panicked"), metrics.WithUnit("1")),
		busy: p.UpDownCounter("parallel.workers.busy",
			metrics.WithDescription("workers currently invoking the operation"), metrics.WithUnit("1")),
		duration: p.Histogram("parallel.operation.duration",
			metrics.WithDescription("operation duration"), metrics.WithUnit("seconds")),
	}
}

// run pulls entries until the feed reports closed-and-empty. Entries handled
// by one worker are processed strictly one at a time.
//
// After the run context is cancelled, remaining entries are drained without
// invoking the operation so the producer unblocks and the join completes.
func (w *worker[T]) run(ctx context.Context) {
	for {
		e, ok := w.feed.take()
		if !ok {
			return
		}
		if ctx.Err() != nil {
			continue
		}
		w.invoke(ctx, e)
	}
}

func (w *worker[T]) invoke(ctx context.Context, e entry[T]) {
	w.ins.busy.Add(1)
	start := time.Now()
	err := w.call(ctx, e.item)
	w.ins.duration.Record(time.Since(start).Seconds())
	w.ins.busy.Add(-1)

	if err != nil {
		w.ins.failed.Add(1)
		w.rec.record(newItemError(err, e.idx, w.id))
		return
	}
	w.ins.processed.Add(1)
}

// call invokes the operation with panic recovery. A panicking operation is
// reported as a failure wrapping ErrOperationPanicked; it never takes down
// the worker or the process.
func (w *worker[T]) call(ctx context.Context, item T) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrOperationPanicked, p)
		}
	}()
	return w.op(ctx, item, w.id)
}
