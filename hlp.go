// Package hlp is the public surface of the hypergraph label propagation
// engine: a single entry point, Run, over the internal CSR snapshot,
// device resident set, execution pool classifier, iteration kernels, and
// fixpoint driver described in SPEC_FULL.md §2-§5. Everything else in this
// module (generators, file loaders, the CLI) is a collaborator that
// produces the snapshot and initial labels Run consumes.
package hlp

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/hlp-engine/internal/engine"
	"github.com/gilchrisn/hlp-engine/internal/hypergraph"
)

// Options configures one run of the engine. Field-for-field with
// spec.md §6.1.
type Options = engine.Options

// DefaultOptions mirrors spec.md's stated defaults.
func DefaultOptions() Options { return engine.DefaultOptions() }

// Moment and PerformanceRecord mirror spec.md §6.1's output shape.
type Moment = engine.Moment
type PerformanceRecord = engine.PerformanceRecord

// Run executes hypergraph label propagation to a fixpoint (or until the
// iteration budget or an error stops it) starting from initialLabels over
// snap, and returns a performance record plus the final vertex label
// vector. It is the sole public entry point named in spec.md §6.1.
func Run(ctx context.Context, snap *hypergraph.Snapshot, initialLabels []int32, opts Options) (PerformanceRecord, []int32, error) {
	return RunWithLogger(ctx, snap, initialLabels, opts, zerolog.Nop())
}

// RunWithLogger is Run with an explicit logger, for callers (the CLI, the
// benchmark harness) that want the engine's per-iteration diagnostics
// wired into their own zerolog sink instead of discarded.
func RunWithLogger(ctx context.Context, snap *hypergraph.Snapshot, initialLabels []int32, opts Options, logger zerolog.Logger) (PerformanceRecord, []int32, error) {
	return engine.Run(ctx, snap, initialLabels, opts, logger)
}

// NewBuilder starts a mutable hypergraph accumulation, re-exported from
// internal/hypergraph for callers that don't need the file-format or
// generator collaborators.
func NewBuilder(numVertices int) (*hypergraph.Builder, error) {
	return hypergraph.NewBuilder(numVertices)
}
