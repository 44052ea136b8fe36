package generate

import "testing"

func TestUniformProducesRequestedCounts(t *testing.T) {
	res, err := Uniform(Options{NumVertices: 50, NumEdges: 30, MinEdgeSize: 2, MaxEdgeSize: 5, Seed: 1})
	if err != nil {
		t.Fatalf("Uniform: %v", err)
	}
	if res.Builder.NumVertices() != 50 || res.Builder.NumEdges() != 30 {
		t.Fatalf("got V=%d E=%d, want V=50 E=30", res.Builder.NumVertices(), res.Builder.NumEdges())
	}
	snap, err := res.Builder.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	for e := 0; e < snap.NumEdges(); e++ {
		sz := snap.EdgeSize(e)
		if sz < 2 || sz > 5 {
			t.Fatalf("edge %d has size %d, want [2,5]", e, sz)
		}
	}
}

func TestFixedProducesUniformEdgeSize(t *testing.T) {
	res, err := Fixed(Options{NumVertices: 20, NumEdges: 10, EdgeSize: 4, Seed: 2})
	if err != nil {
		t.Fatalf("Fixed: %v", err)
	}
	snap, err := res.Builder.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	for e := 0; e < snap.NumEdges(); e++ {
		if snap.EdgeSize(e) != 4 {
			t.Fatalf("edge %d has size %d, want 4", e, snap.EdgeSize(e))
		}
	}
}

func TestPlantedAssignsEveryVertexACommunity(t *testing.T) {
	res, err := Planted(Options{
		NumVertices: 40, NumEdges: 60, EdgeSize: 3, Communities: 4,
		PIntra: 0.9, PInter: 0.1, Seed: 3,
	})
	if err != nil {
		t.Fatalf("Planted: %v", err)
	}
	if len(res.Communities) != 40 {
		t.Fatalf("got %d community assignments, want 40", len(res.Communities))
	}
	for v, c := range res.Communities {
		if c < 0 || c >= 4 {
			t.Fatalf("vertex %d has out-of-range community %d", v, c)
		}
	}
}

func TestHSBMAssignsEveryVertexACommunity(t *testing.T) {
	res, err := HSBM(Options{
		NumVertices: 40, NumEdges: 60, EdgeSize: 3, Communities: 4,
		PIntra: 0.8, PInter: 0.2, Seed: 4,
	})
	if err != nil {
		t.Fatalf("HSBM: %v", err)
	}
	if len(res.Communities) != 40 {
		t.Fatalf("got %d community assignments, want 40", len(res.Communities))
	}
}

func TestLabelsInRange(t *testing.T) {
	labels := Labels(100, 10, 5)
	if len(labels) != 100 {
		t.Fatalf("got %d labels, want 100", len(labels))
	}
	for i, l := range labels {
		if l < 0 || l >= 10 {
			t.Fatalf("label %d out of range: %d", i, l)
		}
	}
}
