package hgfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gilchrisn/hlp-engine/internal/hypergraph"
)

// Scenario E: V=4, edges {0,1,2},{1,2,3}, labels [3,3,1,1]. File bytes
// begin with the magic + version header, and a save/load round trip
// reproduces the same hypergraph and labels.
func TestScenarioE_BinaryRoundTrip(t *testing.T) {
	b, err := hypergraph.NewBuilder(4)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	if _, err := b.AddHyperedge([]int{0, 1, 2}); err != nil {
		t.Fatalf("AddHyperedge: %v", err)
	}
	if _, err := b.AddHyperedge([]int{1, 2, 3}); err != nil {
		t.Fatalf("AddHyperedge: %v", err)
	}
	labels := []int32{3, 3, 1, 1}
	if err := b.SetLabels(labels); err != nil {
		t.Fatalf("SetLabels: %v", err)
	}
	snap, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}

	path := filepath.Join(t.TempDir(), "hg.bin")
	if err := Save(path, snap, labels); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	wantHeader := []byte{0x48, 0x47, 0x52, 0x31, 0x01, 0x00, 0x00, 0x00}
	if len(raw) < len(wantHeader) {
		t.Fatalf("file too short: %d bytes", len(raw))
	}
	for i, wb := range wantHeader {
		if raw[i] != wb {
			t.Fatalf("header byte %d: got %#x, want %#x", i, raw[i], wb)
		}
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	loadedSnap, err := loaded.Freeze()
	if err != nil {
		t.Fatalf("Freeze (loaded): %v", err)
	}

	if loadedSnap.NumVertices() != snap.NumVertices() {
		t.Fatalf("vertex count: got %d, want %d", loadedSnap.NumVertices(), snap.NumVertices())
	}
	if loadedSnap.NumEdges() != snap.NumEdges() {
		t.Fatalf("edge count: got %d, want %d", loadedSnap.NumEdges(), snap.NumEdges())
	}
	for e := 0; e < snap.NumEdges(); e++ {
		got, want := loadedSnap.EdgeVertices(e), snap.EdgeVertices(e)
		if len(got) != len(want) {
			t.Fatalf("edge %d size: got %d, want %d", e, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("edge %d vertex %d: got %d, want %d", e, i, got[i], want[i])
			}
		}
	}
	for i, l := range loaded.Labels() {
		if l != labels[i] {
			t.Fatalf("label %d: got %d, want %d", i, l, labels[i])
		}
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	if err := os.WriteFile(path, []byte{0, 0, 0, 0, 1, 0, 0, 0}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for bad magic")
	}
}

func TestLoadRejectsZeroVertices(t *testing.T) {
	b, _ := hypergraph.NewBuilder(0)
	snap, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	path := filepath.Join(t.TempDir(), "zero.bin")
	if err := Save(path, snap, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for zero num_vertices")
	}
}
