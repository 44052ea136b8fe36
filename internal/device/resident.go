// Package device owns the simulated accelerator: a process-wide runtime
// (see runtime.go) and the per-run ResidentSet that stands in for the
// device-side CSR arrays, label arrays, and change counter a real GPU
// backend would allocate with cudaMalloc/clCreateBuffer/Kokkos::View.
package device

import (
	"errors"
	"sync/atomic"

	"github.com/gilchrisn/hlp-engine/internal/hlperrors"
	"github.com/gilchrisn/hlp-engine/internal/hypergraph"
)

// ResidentSet owns the device-side lifetime of the CSR arrays, the two
// label arrays, and the change counter for one run. Create/Destroy form a
// scoped acquisition: every caller defers Destroy immediately after a
// successful Create, on every exit path including error.
type ResidentSet struct {
	snapshot *hypergraph.Snapshot

	VertexLabels []int32
	EdgeLabels   []int32
	Changes      atomic.Int64

	rt        *Runtime
	destroyed bool
}

// Create allocates the resident buffers for snap, copies initialVertexLabels
// into the vertex label buffer, and zeroes the edge label buffer and the
// change counter. initialVertexLabels must have length snap.NumVertices().
func Create(snap *hypergraph.Snapshot, initialVertexLabels []int32) (*ResidentSet, error) {
	if snap == nil {
		return nil, hlperrors.NewDeviceError("create", errors.New("nil snapshot"))
	}
	if len(initialVertexLabels) != snap.NumVertices() {
		return nil, hlperrors.NewDeviceError("create", errors.New("initial label vector length mismatch"))
	}

	rt := acquireRuntime()

	rs := &ResidentSet{
		snapshot:     snap,
		VertexLabels: append([]int32(nil), initialVertexLabels...),
		EdgeLabels:   make([]int32, snap.NumEdges()),
		rt:           rt,
	}
	return rs, nil
}

// CopyLabelsBack copies the current vertex labels device-to-host into dst,
// which must have length NumVertices().
func (rs *ResidentSet) CopyLabelsBack(dst []int32) error {
	if len(dst) != len(rs.VertexLabels) {
		return hlperrors.NewDeviceError("copy_labels_back", errors.New("destination length mismatch"))
	}
	copy(dst, rs.VertexLabels)
	return nil
}

// Destroy releases the resident buffers. Safe to call more than once; only
// the first call has any effect, so deferring it unconditionally is safe
// regardless of which exit path is taken.
func (rs *ResidentSet) Destroy() {
	if rs.destroyed {
		return
	}
	rs.destroyed = true
	rs.VertexLabels = nil
	rs.EdgeLabels = nil
	releaseRuntime()
}
