package parallel

import "context"

// Map applies fn to every element of items with bounded concurrency and
// returns the results in input order.
//
// Results are written into an index-addressed slice, so input order is
// preserved without any reordering machinery. On error, Map returns a nil
// slice and the same aggregated error ForEach would return; with the
// default keep-going policy every item is still attempted.
func Map[T, R any](
	ctx context.Context,
	items []T,
	fn func(ctx context.Context, item T, worker int) (R, error),
	opts ...Option,
) ([]R, error) {
	results := make([]R, len(items))

	indices := make([]int, len(items))
	for i := range indices {
		indices[i] = i
	}

	err := ForEach(ctx, indices, func(ctx context.Context, i, worker int) error {
		r, err := fn(ctx, items[i], worker)
		if err != nil {
			return err
		}
		results[i] = r // each worker writes a distinct index
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return results, nil
}
