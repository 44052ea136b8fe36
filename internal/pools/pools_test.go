package pools

import (
	"testing"

	"github.com/gilchrisn/hlp-engine/internal/hypergraph"
)

func buildStarHypergraph(t *testing.T, numEdges int) *hypergraph.Snapshot {
	t.Helper()
	// V=numEdges+1: hub vertex 0 plus numEdges leaves, and numEdges edges each
	// of size 2 (the hub vertex plus a distinct leaf).
	b, err := hypergraph.NewBuilder(numEdges + 1)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	for i := 0; i < numEdges; i++ {
		if _, err := b.AddHyperedge([]int{0, i + 1}); err != nil {
			t.Fatalf("AddHyperedge: %v", err)
		}
	}
	snap, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	return snap
}

// Scenario D: a single vertex with 2000 incident edges lands in WG_V; all
// size-2 edges land in WI_E.
func TestScenarioD_DegreeBasedClassification(t *testing.T) {
	snap := buildStarHypergraph(t, 2000)
	p := Classify(snap, DefaultThresholds())

	if len(p.WGVertices) != 1 || p.WGVertices[0] != 0 {
		t.Fatalf("expected vertex 0 in WG_V, got WG_V=%v", p.WGVertices)
	}
	if len(p.SGVertices) != 0 || len(p.WIVertices) != 2000 {
		t.Fatalf("expected 2000 leaf vertices in WI_V and none in SG_V, got SG=%v WI_len=%d", p.SGVertices, len(p.WIVertices))
	}
	if len(p.WIEdges) != 2000 {
		t.Fatalf("expected all 2000 size-2 edges in WI_E, got %d", len(p.WIEdges))
	}
	if len(p.WGEdges) != 0 || len(p.SGEdges) != 0 {
		t.Fatalf("expected no edges in WG_E/SG_E, got WG=%d SG=%d", len(p.WGEdges), len(p.SGEdges))
	}
}

func TestPartitionInvariant(t *testing.T) {
	snap := buildStarHypergraph(t, 500)
	p := Classify(snap, DefaultThresholds())

	total := len(p.WGEdges) + len(p.SGEdges) + len(p.WIEdges)
	if total != snap.NumEdges() {
		t.Fatalf("edge pools do not partition [0,E): total=%d E=%d", total, snap.NumEdges())
	}
	total = len(p.WGVertices) + len(p.SGVertices) + len(p.WIVertices)
	if total != snap.NumVertices() {
		t.Fatalf("vertex pools do not partition [0,V): total=%d V=%d", total, snap.NumVertices())
	}

	seen := make(map[int32]bool)
	for _, lists := range [][]int32{p.WGEdges, p.SGEdges, p.WIEdges} {
		for _, e := range lists {
			if seen[e] {
				t.Fatalf("edge %d appears in more than one pool", e)
			}
			seen[e] = true
		}
	}

	th := DefaultThresholds()
	for _, e := range p.WGEdges {
		if snap.EdgeSize(int(e)) <= th.WGEdge {
			t.Fatalf("edge %d in WG_E has degree %d <= threshold %d", e, snap.EdgeSize(int(e)), th.WGEdge)
		}
	}
	for _, e := range p.SGEdges {
		deg := snap.EdgeSize(int(e))
		if deg <= th.SGEdge || deg > th.WGEdge {
			t.Fatalf("edge %d in SG_E has degree %d outside (%d,%d]", e, deg, th.SGEdge, th.WGEdge)
		}
	}
	for _, e := range p.WIEdges {
		if snap.EdgeSize(int(e)) > th.SGEdge {
			t.Fatalf("edge %d in WI_E has degree %d > threshold %d", e, snap.EdgeSize(int(e)), th.SGEdge)
		}
	}
}
