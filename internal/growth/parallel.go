package growth

import (
	"context"
	"sync"
)

// SweepResult holds the outcome for one k value of a sweep. Overflow is an
// expected outcome for large k, so it is reported per row rather than
// failing the whole sweep.
type SweepResult struct {
	K      int
	Series *Series
	Err    error
}

// Sweep simulates the same scenario for several values of k concurrently.
func Sweep(ctx context.Context, base Params, ks []int) ([]SweepResult, error) {
	results := make([]SweepResult, len(ks))

	var wg sync.WaitGroup
	for i, k := range ks {
		wg.Add(1)
		go func(idx, k int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = SweepResult{K: k, Err: ctx.Err()}
				return
			default:
			}

			p := base
			p.K = k
			s, err := Simulate(p)
			results[idx] = SweepResult{K: k, Series: s, Err: err}
		}(i, k)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
