// Package engine implements the fixpoint driver: the host-side loop that
// owns setup, the per-iteration two-phase kernel invocation, the
// convergence check, and result write-back, timing each phase the way the
// teacher's Louvain Run times each hierarchical level
// (pkg2/louvain/algorithm.go).
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/gilchrisn/hlp-engine/internal/device"
	"github.com/gilchrisn/hlp-engine/internal/hlperrors"
	"github.com/gilchrisn/hlp-engine/internal/hypergraph"
	"github.com/gilchrisn/hlp-engine/internal/kernels"
	"github.com/gilchrisn/hlp-engine/internal/pools"
)

// Run executes one complete fixpoint over snap starting from initialLabels,
// returning a performance record and the final vertex labels. It is the
// engine's sole entry point and is always single-threaded and synchronous
// at the host level; all parallelism happens inside the kernel phases.
func Run(ctx context.Context, snap *hypergraph.Snapshot, initialLabels []int32, opts Options, logger zerolog.Logger) (PerformanceRecord, []int32, error) {
	st := stateInitial
	var rec PerformanceRecord

	if opts.MaxLabels <= 0 || opts.MaxLabels > kernels.LabelCap {
		st = stateTerminal
		err := hlperrors.NewInvalidArgument("max_labels",
			fmt.Sprintf("must be in [1,%d], got %d", kernels.LabelCap, opts.MaxLabels))
		logTerminal(logger, ReasonError, err)
		return rec, nil, err
	}
	if opts.Tolerance < 0 || opts.Tolerance > 1 {
		st = stateTerminal
		err := hlperrors.NewInvalidArgument("tolerance", "must be in [0,1]")
		logTerminal(logger, ReasonError, err)
		return rec, nil, err
	}
	if opts.WorkgroupSize <= 0 {
		st = stateTerminal
		err := hlperrors.NewInvalidArgument("workgroup_size", "must be > 0")
		logTerminal(logger, ReasonError, err)
		return rec, nil, err
	}

	if snap.NumVertices() == 0 || snap.NumEdges() == 0 {
		st = stateTerminal
		logger.Info().Str("reason", string(ReasonEmpty)).Int("vertices", snap.NumVertices()).
			Int("edges", snap.NumEdges()).Msg("empty hypergraph, returning immediately")
		out := append([]int32(nil), initialLabels...)
		return PerformanceRecord{IterationsCompleted: 0}, out, nil
	}

	runStart := time.Now()

	setupStart := time.Now()
	rs, err := device.Create(snap, initialLabels)
	if err != nil {
		st = stateTerminal
		err := hlperrors.NewDeviceError("create_resident_set", err)
		logTerminal(logger, ReasonError, err)
		return rec, nil, err
	}
	defer rs.Destroy()
	st = stateIterating

	th := pools.Thresholds{
		WGEdge: opts.ThresholdWGEdge, SGEdge: opts.ThresholdSGEdge,
		WGVertex: opts.ThresholdWGVertex, SGVertex: opts.ThresholdSGVertex,
	}
	part := pools.Classify(snap, th)
	logPoolSummary(logger, snap, part)

	kcfg := kernels.Config{MaxLabels: opts.MaxLabels, WorkgroupSize: opts.WorkgroupSize, NumWorkers: defaultNumWorkers()}
	setupMS := sinceMS(setupStart)

	iterStart := time.Now()
	iterationsCompleted := 0
	changeFractions := make([]float64, 0, opts.MaxIterations)
	reason := ReasonBudget

	for iter := 0; iter < opts.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			st = stateTerminal
			logTerminal(logger, ReasonError, ctx.Err())
			return rec, nil, ctx.Err()
		default:
		}

		kernels.RunEdgePhase(snap, part, rs.VertexLabels, rs.EdgeLabels, kcfg)

		rs.Changes.Store(0)
		kernels.RunVertexPhase(snap, part, rs.EdgeLabels, rs.VertexLabels, kcfg, &rs.Changes)

		changes := rs.Changes.Load()
		iterationsCompleted++
		fraction := float64(changes) / float64(snap.NumVertices())
		changeFractions = append(changeFractions, fraction)

		logger.Debug().Int("iteration", iterationsCompleted).Int64("changes", changes).
			Float64("change_fraction", fraction).Msg("iteration complete")

		// changes == 0 always converges regardless of tolerance: per the
		// idempotence invariant, a zero-change iteration is a fixpoint and
		// every subsequent iteration would also report zero changes. This
		// also resolves tolerance=0 against the strict '<' comparison,
		// under which fraction < 0 could otherwise never hold.
		if changes == 0 || fraction < opts.Tolerance {
			st = stateTerminal
			reason = ReasonConverged
			break
		}
	}
	iterMS := sinceMS(iterStart)

	finalizeStart := time.Now()
	labels := make([]int32, snap.NumVertices())
	if err := rs.CopyLabelsBack(labels); err != nil {
		st = stateTerminal
		err := hlperrors.NewDeviceError("copy_labels_back", err)
		logTerminal(logger, ReasonError, err)
		return rec, nil, err
	}
	finalizeMS := sinceMS(finalizeStart)

	if st != stateTerminal {
		st = stateTerminal
		reason = ReasonBudget
	}

	if len(changeFractions) == 1 {
		mean := changeFractions[0]
		logger.Info().Str("reason", string(reason)).Int("iterations", iterationsCompleted).
			Float64("mean_change_fraction", mean).Msg("run complete")
	} else if len(changeFractions) > 1 {
		mean, variance := stat.MeanVariance(changeFractions, nil)
		logger.Info().Str("reason", string(reason)).Int("iterations", iterationsCompleted).
			Float64("mean_change_fraction", mean).Float64("variance_change_fraction", variance).
			Msg("run complete")
	}

	rec = PerformanceRecord{
		IterationsCompleted: iterationsCompleted,
		TotalTimeMS:         sinceMS(runStart),
		Moments: []Moment{
			{Label: "setup", DurationMS: setupMS},
			{Label: "iterations", DurationMS: iterMS},
			{Label: "finalize", DurationMS: finalizeMS},
		},
	}
	return rec, labels, nil
}

func sinceMS(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

// logTerminal logs the Iterating/Initial -> Terminal(error) transition of
// the state machine described in spec.md §4.4.
func logTerminal(logger zerolog.Logger, reason TerminalReason, err error) {
	logger.Error().Str("reason", string(reason)).Err(err).Msg("run terminated")
}

func logPoolSummary(logger zerolog.Logger, snap *hypergraph.Snapshot, part pools.Partition) {
	logger.Debug().
		Int("wg_edges", len(part.WGEdges)).Int("sg_edges", len(part.SGEdges)).Int("wi_edges", len(part.WIEdges)).
		Int("wg_vertices", len(part.WGVertices)).Int("sg_vertices", len(part.SGVertices)).Int("wi_vertices", len(part.WIVertices)).
		Msg("execution pools classified")
}
