package spectral

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers returns the fork-join worker count to use for a region of the
// given size: GOMAXPROCS, capped so we never spawn more workers than there
// is work, and never fewer than one. The driver layer is the only thing
// that ever overrides GOMAXPROCS (spec.md §5: "the core itself does not
// read [the thread-count variable]; the driver configures parallelism and
// the core accepts it").
func Workers(n int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// forEachChunk splits [0, n) into at most Workers(n) static, contiguous chunks
// and runs work(lo, hi) for each chunk on its own goroutine, joining before
// returning. This is the teacher's worker.go goroutine+WaitGroup shape
// (internal/analysis/worker.go), adapted from a shared job channel to
// static index-range chunking so that every output slot in range [lo, hi)
// is written by exactly one goroutine, matching the
// schedule(static) OpenMP loops of tsfourier.c/window.c/pass.c.
func forEachChunk(n int, work func(lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := Workers(n)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			work(lo, hi)
			return nil
		})
	}
	// work() cannot fail: every call site below is a pure numerical loop
	// over caller-validated arrays, so the error return is always nil.
	_ = g.Wait()
}
