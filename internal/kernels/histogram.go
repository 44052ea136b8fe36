package kernels

import (
	"sync"
	"sync/atomic"
)

// LabelCap is the hard, compile-time bound on the label space: histograms
// are sized to fit in fast shared memory and argmax is a small unrolled
// loop, so no runtime label count may exceed it.
const LabelCap = 32

// DefaultLabelCap is the default label space size when the caller does not
// override it.
const DefaultLabelCap = 10

// argmax finds the plurality winner in counts, breaking ties toward the
// lowest label index: iteration starts from label 0 with a strict '>'
// comparison against a count initialised to -1, so an earlier label is
// never displaced by a later one with an equal count.
func argmax(counts []int32) int32 {
	best := int32(-1)
	bestCount := int32(-1)
	for label, c := range counts {
		if c > bestCount {
			bestCount = c
			best = int32(label)
		}
	}
	return best
}

// parallelFor splits [0,n) across up to numWorkers goroutines, each given
// its own private histogram buffer of size L that it reuses (after
// zeroing) across the items it is assigned — the work-item pool flavour:
// no intra-histogram atomics, since each worker's buffer is never touched
// by another goroutine.
func parallelFor(n, numWorkers, L int, body func(hist []int32, idx int)) {
	if n == 0 {
		return
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > n {
		numWorkers = n
	}

	chunk := (n + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			hist := make([]int32, L)
			for idx := start; idx < end; idx++ {
				body(hist, idx)
			}
		}(start, end)
	}
	wg.Wait()
}

// groupHistogram cooperatively builds a histogram of size L over n items
// via label(i), splitting the work across up to bandSize lanes (goroutines)
// that increment a shared, group-scoped atomic histogram. The WaitGroup
// barrier fences the increment loop so the caller — playing the role of
// the group leader — only reads the histogram once every lane has
// finished, matching the sub-group/workgroup kernel flavours' barrier
// discipline (zero-init is implicit: a fresh atomic.Int32 slice starts at
// zero, so there is nothing to fence before the increment loop).
func groupHistogram(n int, label func(i int) int32, L int, bandSize int) []int32 {
	hist := make([]atomic.Int32, L)

	lanes := bandSize
	if lanes > n {
		lanes = n
	}
	if lanes < 1 {
		lanes = 1
	}
	chunk := (n + lanes - 1) / lanes

	var wg sync.WaitGroup
	for lane := 0; lane < lanes; lane++ {
		start := lane * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				lbl := label(i)
				if lbl >= 0 && int(lbl) < L {
					hist[lbl].Add(1)
				}
			}
		}(start, end)
	}
	wg.Wait()

	out := make([]int32, L)
	for i := range hist {
		out[i] = hist[i].Load()
	}
	return out
}
