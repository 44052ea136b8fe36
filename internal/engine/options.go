package engine

import "github.com/gilchrisn/hlp-engine/internal/kernels"

// Options configures one run of the fixpoint driver.
type Options struct {
	MaxIterations int     // iteration budget; 0 means run zero iterations
	Tolerance     float64 // convergence tolerance in [0,1]
	WorkgroupSize int     // width of a workgroup band; must be > 0
	MaxLabels     int     // label space size L, in [1, kernels.LabelCap]

	ThresholdWGEdge   int
	ThresholdSGEdge   int
	ThresholdWGVertex int
	ThresholdSGVertex int
}

// DefaultOptions mirrors spec.md's defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations:     100,
		Tolerance:         1e-6,
		WorkgroupSize:     256,
		MaxLabels:         kernels.DefaultLabelCap,
		ThresholdWGEdge:   256,
		ThresholdSGEdge:   32,
		ThresholdWGVertex: 1024,
		ThresholdSGVertex: 256,
	}
}
