package prim_kruskal

import (
	"math"
	"time"
)

// opCounter accumulates the abstract operation count reported in Result.Operations.
// The count is a benchmarking aid; correctness never depends on it.
type opCounter struct {
	n int64
}

func (c *opCounter) add(k int64) { c.n += k }

// sortCost is the fixed charge for sorting e edges: ceil(e·log2 e), 0 when e < 2.
func sortCost(e int) int64 {
	if e < 2 {
		return 0
	}
	f := float64(e)

	return int64(math.Ceil(f * math.Log2(f)))
}

// stopwatch measures one run with the configured clock.
type stopwatch struct {
	now   func() time.Time
	start time.Time
}

func startStopwatch(now func() time.Time) stopwatch {
	if now == nil {
		now = time.Now
	}

	return stopwatch{now: now, start: now()}
}

// elapsed never goes negative, even with a non-monotonic test clock.
func (s stopwatch) elapsed() time.Duration {
	d := s.now().Sub(s.start)
	if d < 0 {
		return 0
	}

	return d
}
