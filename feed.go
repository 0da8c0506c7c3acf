package parallel

import (
	"context"
	"sync"
)

// entry is one unit of work flowing from the producer to the workers.
// idx is the input index assigned by the producer in iteration order.
type entry[T any] struct {
	idx  int
	item T
}

// feed is the closable FIFO shared between the single producer and the
// worker pool. It is created fresh for every call and never reused.
//
// Invariants:
//   - close is idempotent and monotonic; put fails after close.
//   - entries buffered before close remain takeable after close.
//   - take returns ok == false only when the feed is closed and drained;
//     this is the sole termination signal for workers.
//   - no entry is observed by two takers.
//
// The items channel itself is never closed, so put can never panic; the
// done channel carries the closed state instead.
type feed[T any] struct {
	items chan entry[T]
	done  chan struct{}
	once  sync.Once
}

func newFeed[T any](buffer uint) *feed[T] {
	return &feed[T]{
		items: make(chan entry[T], buffer),
		done:  make(chan struct{}),
	}
}

// put inserts one entry, blocking while the buffer is full. It returns
// ErrFeedClosed if the feed is closed before the entry is accepted, or
// ctx.Err() if the context is cancelled first.
func (f *feed[T]) put(ctx context.Context, e entry[T]) error {
	select {
	case <-f.done:
		return ErrFeedClosed
	default:
	}

	select {
	case f.items <- e:
		return nil
	case <-f.done:
		return ErrFeedClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close marks that no further entries will arrive. Safe to call multiple
// times and concurrently with put/take.
func (f *feed[T]) close() {
	f.once.Do(func() { close(f.done) })
}

// take removes one entry, blocking until an entry is available or the feed
// is closed and drained. ok == false means closed-and-empty.
func (f *feed[T]) take() (entry[T], bool) {
	// Fast path: buffered entry available.
	select {
	case e := <-f.items:
		return e, true
	default:
	}

	select {
	case e := <-f.items:
		return e, true
	case <-f.done:
		// Closed; drain anything buffered before reporting exhaustion.
		select {
		case e := <-f.items:
			return e, true
		default:
			var zero entry[T]
			return zero, false
		}
	}
}
