package hgjson

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArraySchemaRoundTrip(t *testing.T) {
	doc := `{"num_vertices":4,"edges":[[0,1,2],[1,2,3]],"labels":[3,3,1,1]}`
	path := filepath.Join(t.TempDir(), "hg.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.NumVertices() != 4 || b.NumEdges() != 2 {
		t.Fatalf("got V=%d E=%d, want V=4 E=2", b.NumVertices(), b.NumEdges())
	}
	wantLabels := []int32{3, 3, 1, 1}
	for i, l := range b.Labels() {
		if l != wantLabels[i] {
			t.Fatalf("label %d: got %d, want %d", i, l, wantLabels[i])
		}
	}

	snap, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.json")
	if err := Save(out, snap, b.Labels()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	roundTripped, err := Load(out)
	if err != nil {
		t.Fatalf("Load (round trip): %v", err)
	}
	if roundTripped.NumVertices() != 4 || roundTripped.NumEdges() != 2 {
		t.Fatalf("round trip mismatch: V=%d E=%d", roundTripped.NumVertices(), roundTripped.NumEdges())
	}
}

func TestKeyedSchemaInternsVerticesInFirstSeenOrder(t *testing.T) {
	// node-data is deliberately non-alphabetical: document order is
	// c, a, b, so first-seen interning must assign c->0, a->1, b->2,
	// not the lexicographic a->0, b->1, c->2 a sort would produce.
	doc := `{
		"type": "hypergraph",
		"node-data": {"c": {}, "a": {}, "b": {}},
		"edge-dict": {"e0": ["c", "a"], "e1": ["a", "b"]}
	}`
	path := filepath.Join(t.TempDir(), "keyed.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.NumVertices() != 3 {
		t.Fatalf("got %d vertices, want 3", b.NumVertices())
	}
	if b.NumEdges() != 2 {
		t.Fatalf("got %d edges, want 2", b.NumEdges())
	}

	snap, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}

	wantEdges := [][]int32{{0, 1}, {1, 2}} // c->0, a->1, b->2
	for e, want := range wantEdges {
		got := snap.EdgeVertices(e)
		if len(got) != len(want) {
			t.Fatalf("edge %d size: got %d, want %d", e, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("edge %d vertex %d: got %d, want %d (first-seen order c=0,a=1,b=2)", e, i, got[i], want[i])
			}
		}
	}
}

func TestArraySchemaRejectsEmptyHyperedge(t *testing.T) {
	doc := `{"num_vertices":2,"edges":[[]]}`
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty hyperedge")
	}
}
