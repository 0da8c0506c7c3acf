package parallel

import (
	"context"
	"sync"

	"github.com/ygrebnov/parallel/metrics"
)

// run is the coordinator behind every public entry point. It assembles the
// configuration, builds the per-call runtime (feed, producer, workers),
// starts everything, and blocks until the producer and all workers have
// terminated. Nothing it spawns survives the call.
func run[T any](ctx context.Context, src Source[T], op Operation[T], opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return err
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return err
	}

	rec := &recorder{}
	runCtx := ctx
	if cfg.StopOnError {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithCancel(ctx)
		defer cancel()
		rec.cancel = cancel
	}

	var provider metrics.Provider = metrics.NewNoopProvider()
	if cfg.Metrics != nil {
		provider = cfg.Metrics
	}
	ins := newInstruments(provider)

	f := newFeed[T](cfg.FeedBuffer)

	var wg sync.WaitGroup

	p := &producer[T]{src: src, feed: f, rec: rec}
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.run(runCtx)
	}()

	for i := 0; i < cfg.Workers; i++ {
		w := &worker[T]{id: i, feed: f, op: op, rec: rec, ins: ins}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(runCtx)
		}()
	}

	wg.Wait()
	if err := rec.err(); err != nil {
		return err
	}
	// A run cut short by caller cancellation must not look like success.
	return ctx.Err()
}
