package hlp

import (
	"context"
	"testing"
)

// Scenario B: an isolated vertex with no incident edges converges to label
// 0 on the first iteration under the lowest-index tie-break rule, and
// stays there.
func TestScenarioB_IsolatedVertexTieBreak(t *testing.T) {
	b, err := NewBuilder(3)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	if _, err := b.AddHyperedge([]int{0, 1}); err != nil {
		t.Fatalf("AddHyperedge: %v", err)
	}
	snap, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}

	opts := DefaultOptions()
	opts.MaxIterations = 5
	opts.Tolerance = 1e-9
	opts.MaxLabels = 3

	_, labels, err := Run(context.Background(), snap, []int32{0, 1, 2}, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if labels[2] != 0 {
		t.Fatalf("expected isolated vertex 2 to converge to label 0, got %d", labels[2])
	}
}

func TestPublicRunRejectsInvalidTolerance(t *testing.T) {
	b, _ := NewBuilder(2)
	b.AddHyperedge([]int{0, 1})
	snap, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}

	opts := DefaultOptions()
	opts.Tolerance = 1.5

	if _, _, err := Run(context.Background(), snap, []int32{0, 0}, opts); err == nil {
		t.Fatalf("expected an error for tolerance outside [0,1]")
	}
}
