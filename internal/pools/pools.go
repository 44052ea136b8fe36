// Package pools implements the execution pool classifier: a one-time,
// degree-only partition of edges and vertices into work-item (WI),
// sub-group (SG), and workgroup (WG) pools so the kernel layer can pick a
// launch configuration sized to each item's incident-set size instead of
// wasting parallelism on short loops or starving long ones.
package pools

import "github.com/gilchrisn/hlp-engine/internal/hypergraph"

// Thresholds configures the degree cutoffs used to classify edges and
// vertices. An edge lands in WG if its degree is > WGEdge, in SG if its
// degree is > SGEdge, otherwise in WI; vertices follow the analogous rule
// against WGVertex/SGVertex.
type Thresholds struct {
	WGEdge   int
	SGEdge   int
	WGVertex int
	SGVertex int
}

// DefaultThresholds mirrors the spec's defaults: edges WG>256, SG>32;
// vertices WG>1024, SG>256.
func DefaultThresholds() Thresholds {
	return Thresholds{WGEdge: 256, SGEdge: 32, WGVertex: 1024, SGVertex: 256}
}

// Partition holds the six disjoint index lists produced by Classify. The
// three edge lists partition [0,NumEdges) and the three vertex lists
// partition [0,NumVertices).
type Partition struct {
	WGEdges, SGEdges, WIEdges          []int32
	WGVertices, SGVertices, WIVertices []int32
}

// Classify builds the six pools from snap's CSR degrees. The assignment
// rule is deterministic and depends only on degree, so classification can
// be rerun for diagnostics without affecting correctness.
func Classify(snap *hypergraph.Snapshot, th Thresholds) Partition {
	var p Partition

	for e := 0; e < snap.NumEdges(); e++ {
		switch deg := snap.EdgeSize(e); {
		case deg > th.WGEdge:
			p.WGEdges = append(p.WGEdges, int32(e))
		case deg > th.SGEdge:
			p.SGEdges = append(p.SGEdges, int32(e))
		default:
			p.WIEdges = append(p.WIEdges, int32(e))
		}
	}

	for v := 0; v < snap.NumVertices(); v++ {
		switch deg := snap.VertexDegree(v); {
		case deg > th.WGVertex:
			p.WGVertices = append(p.WGVertices, int32(v))
		case deg > th.SGVertex:
			p.SGVertices = append(p.SGVertices, int32(v))
		default:
			p.WIVertices = append(p.WIVertices, int32(v))
		}
	}

	return p
}
