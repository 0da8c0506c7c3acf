package parallel

import (
	"context"
	"errors"
	"sync"
)

// recorder collects failures from the producer and the workers.
// Failures are kept in the order they were recorded; the first element of
// the joined error is therefore the first failure observed.
//
// When cancel is non-nil (stop-on-error mode), the first recorded failure
// cancels the run context exactly once.
type recorder struct {
	mu     sync.Mutex
	errs   []error
	cancel context.CancelFunc
	once   sync.Once
}

func (r *recorder) record(err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
	if r.cancel != nil {
		r.once.Do(r.cancel)
	}
}

// err returns the aggregated outcome: nil on success, otherwise the join of
// all recorded failures in record order.
func (r *recorder) err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return errors.Join(r.errs...)
}
