package parallel

import (
	"context"
	"fmt"
)

// producer iterates the source exactly once, in order, inserting each item
// into the feed. It runs as a single goroutine per call.
//
// The feed is closed on every termination path — normal exhaustion, source
// failure, cancellation, or the feed being closed underneath it — so workers
// are never left blocked on a feed that will not grow.
type producer[T any] struct {
	src  Source[T]
	feed *feed[T]
	rec  *recorder
}

func (p *producer[T]) run(ctx context.Context) {
	defer p.feed.close()

	for i := 0; ; i++ {
		item, ok, err := p.src.Next(ctx)
		if err != nil {
			p.rec.record(newItemError(fmt.Errorf("%w: %w", ErrSourceFailed, err), i, noWorker))
			return
		}
		if !ok {
			return
		}
		if err := p.feed.put(ctx, entry[T]{idx: i, item: item}); err != nil {
			// Feed closed or run cancelled; there is no one left to feed.
			return
		}
	}
}
