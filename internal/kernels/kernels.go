// Package kernels implements the two-phase plurality-vote kernels shared by
// all three execution pools. Phase 1 (edge update) and Phase 2 (vertex
// update) compute the same primitive — a bounded histogram and an argmax
// with lowest-index tie-break — differing only in which CSR view they read
// and in the unit of parallelism (work-item, sub-group, workgroup) that
// processes one item.
package kernels

import (
	"sync/atomic"

	"github.com/gilchrisn/hlp-engine/internal/hypergraph"
	"github.com/gilchrisn/hlp-engine/internal/pools"
)

// subgroupSize is the default width of a sub-group band: a hardware-scheduled
// lane bundle. Unlike the workgroup band, which is sized by Options, a
// sub-group is not externally configurable.
const subgroupSize = 32

// Config bundles the per-run parameters the kernels need beyond the
// snapshot and label buffers.
type Config struct {
	MaxLabels     int
	WorkgroupSize int
	NumWorkers    int
}

// RunEdgePhase derives a label for every edge across all three pools from
// the current vertex labels. It never touches the change counter: phase 1
// only ever overwrites edgeLabels, one disjoint position per edge.
func RunEdgePhase(snap *hypergraph.Snapshot, part pools.Partition, vertexLabels, edgeLabels []int32, cfg Config) {
	runWorkItemEdges(part.WIEdges, snap, vertexLabels, edgeLabels, cfg.MaxLabels, cfg.NumWorkers)
	runGroupEdges(part.SGEdges, snap, vertexLabels, edgeLabels, cfg.MaxLabels, subgroupSize)
	runGroupEdges(part.WGEdges, snap, vertexLabels, edgeLabels, cfg.MaxLabels, cfg.WorkgroupSize)
}

// RunVertexPhase derives a label for every vertex across all three pools
// from the current edge labels, incrementing changes once per vertex whose
// label actually moves. Must not be called concurrently with RunEdgePhase
// for the same run: phase 2 reads the edgeLabels phase 1 just wrote.
func RunVertexPhase(snap *hypergraph.Snapshot, part pools.Partition, edgeLabels, vertexLabels []int32, cfg Config, changes *atomic.Int64) {
	runWorkItemVertices(part.WIVertices, snap, edgeLabels, vertexLabels, cfg.MaxLabels, cfg.NumWorkers, changes)
	runGroupVertices(part.SGVertices, snap, edgeLabels, vertexLabels, cfg.MaxLabels, subgroupSize, changes)
	runGroupVertices(part.WGVertices, snap, edgeLabels, vertexLabels, cfg.MaxLabels, cfg.WorkgroupSize, changes)
}

func runWorkItemEdges(pool []int32, snap *hypergraph.Snapshot, vertexLabels, edgeLabels []int32, maxLabels, numWorkers int) {
	parallelFor(len(pool), numWorkers, maxLabels, func(hist []int32, idx int) {
		e := pool[idx]
		for i := range hist {
			hist[i] = 0
		}
		for _, v := range snap.EdgeVertices(int(e)) {
			lbl := vertexLabels[v]
			if lbl >= 0 && int(lbl) < maxLabels {
				hist[lbl]++
			}
		}
		edgeLabels[e] = argmax(hist)
	})
}

func runGroupEdges(pool []int32, snap *hypergraph.Snapshot, vertexLabels, edgeLabels []int32, maxLabels, bandSize int) {
	for _, e := range pool {
		verts := snap.EdgeVertices(int(e))
		hist := groupHistogram(len(verts), func(i int) int32 { return vertexLabels[verts[i]] }, maxLabels, bandSize)
		edgeLabels[e] = argmax(hist)
	}
}

func runWorkItemVertices(pool []int32, snap *hypergraph.Snapshot, edgeLabels, vertexLabels []int32, maxLabels, numWorkers int, changes *atomic.Int64) {
	parallelFor(len(pool), numWorkers, maxLabels, func(hist []int32, idx int) {
		v := pool[idx]
		for i := range hist {
			hist[i] = 0
		}
		for _, f := range snap.VertexEdges(int(v)) {
			lbl := edgeLabels[f]
			if lbl >= 0 && int(lbl) < maxLabels {
				hist[lbl]++
			}
		}
		winner := argmax(hist)
		if winner != vertexLabels[v] {
			vertexLabels[v] = winner
			changes.Add(1)
		}
	})
}

func runGroupVertices(pool []int32, snap *hypergraph.Snapshot, edgeLabels, vertexLabels []int32, maxLabels, bandSize int, changes *atomic.Int64) {
	for _, v := range pool {
		edges := snap.VertexEdges(int(v))
		hist := groupHistogram(len(edges), func(i int) int32 { return edgeLabels[edges[i]] }, maxLabels, bandSize)
		winner := argmax(hist)
		if winner != vertexLabels[v] {
			vertexLabels[v] = winner
			changes.Add(1)
		}
	}
}
