package engine

import "runtime"

// defaultNumWorkers sizes the work-item pool's worker split to the host's
// core count, matching the teacher's performance.num_workers default
// (runtime.NumCPU()) in graph-clustering-algorithm's Config.
func defaultNumWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}
