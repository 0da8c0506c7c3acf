// Package parallel provides bounded-parallel iteration: a fixed-size pool of
// concurrent workers pulls items from a shared ordered feed and applies a
// caller-supplied per-item operation, tagged with the index of the worker
// that handled it.
//
// Entry points
//   - ForEach: iterate a slice with bounded concurrency.
//   - ForEachSeq: iterate an iter.Seq.
//   - ForEachSource: iterate a Source, which may fail mid-iteration.
//   - Map: like ForEach, collecting per-item results in input order.
//
// Each call builds its own runtime (feed, producer, workers), runs it to
// completion, and returns only after the producer and every worker have
// terminated. There is no reusable controller object and no background
// goroutine outlives a call.
//
// Defaults
// Unless overridden via options:
//   - Workers: 16
//   - FeedBuffer: 0 (unbuffered hand-off between producer and workers)
//   - StopOnError: false (siblings keep running after a failure)
//   - Metrics: disabled
//
// Error reporting
// A nil return means every item was processed successfully. Otherwise the
// returned error joins all recorded failures in the order they were observed;
// each joined failure carries the input index of the item and, for operation
// failures, the index of the worker that ran it (see ExtractItemIndex and
// ExtractWorkerIndex). Panics in the operation are recovered and reported as
// failures wrapping ErrOperationPanicked.
package parallel
