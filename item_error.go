package parallel

import (
	"errors"
	"fmt"
)

// ItemMetaError exposes correlation metadata for a failed item.
type ItemMetaError interface {
	error
	Unwrap() error
	ItemIndex() (int, bool)
	WorkerIndex() (int, bool)
}

// noWorker marks failures not attributable to a worker (source failures).
const noWorker = -1

type itemError struct {
	err    error
	item   int
	worker int
}

func newItemError(err error, item, worker int) error {
	if err == nil {
		return nil
	}
	return &itemError{err: err, item: item, worker: worker}
}

func (e *itemError) Error() string { return e.err.Error() }
func (e *itemError) Unwrap() error { return e.err }

// ItemIndex returns the input index of the item whose processing failed.
func (e *itemError) ItemIndex() (int, bool) { return e.item, true }

// WorkerIndex returns the index of the worker that ran the failed operation.
// It reports false for failures raised outside the worker pool, such as
// source iteration failures.
func (e *itemError) WorkerIndex() (int, bool) {
	if e.worker == noWorker {
		return 0, false
	}
	return e.worker, true
}

func (e *itemError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "item(index=%d,worker=%d): %+v", e.item, e.worker, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractItemIndex returns the input index of the failed item from err if present.
func ExtractItemIndex(err error) (int, bool) {
	var ime ItemMetaError
	if errors.As(err, &ime) {
		return ime.ItemIndex()
	}
	return 0, false
}

// ExtractWorkerIndex returns the handling worker's index from err if present.
func ExtractWorkerIndex(err error) (int, bool) {
	var ime ItemMetaError
	if errors.As(err, &ime) {
		return ime.WorkerIndex()
	}
	return 0, false
}
