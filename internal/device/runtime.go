package device

import (
	"runtime"
	"sync"
)

// Runtime models the process-wide device/runtime state that a real
// accelerator backend would own (context, command queues, library init).
// It is brought up at first Create and torn down when the last resident
// set is destroyed, so repeated engine construction never double-
// initializes it and teardown never runs while an instance is still live.
// Grounded on the defaultDevice/defaultContext/sync.Once singleton in
// guda's CPU-simulated CUDA runtime.
type Runtime struct {
	NumCores int
}

var (
	globalRuntime *Runtime
	initOnce      sync.Once
	mu            sync.Mutex
	liveSets      int
)

func acquireRuntime() *Runtime {
	initOnce.Do(func() {
		globalRuntime = &Runtime{NumCores: runtime.NumCPU()}
	})
	mu.Lock()
	liveSets++
	mu.Unlock()
	return globalRuntime
}

func releaseRuntime() {
	mu.Lock()
	defer mu.Unlock()
	if liveSets > 0 {
		liveSets--
	}
	if liveSets == 0 {
		// Teardown is deferred until no resident set remains. On a real
		// backend this would release contexts/queues; on CPU there is
		// nothing to free, but we reset initOnce so a later Create
		// re-initializes cleanly rather than reusing a torn-down runtime.
		initOnce = sync.Once{}
		globalRuntime = nil
	}
}

// LiveResidentSets reports how many resident sets currently hold a
// reference to the runtime. Exposed for tests.
func LiveResidentSets() int {
	mu.Lock()
	defer mu.Unlock()
	return liveSets
}
