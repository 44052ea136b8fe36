// Package generate builds synthetic hypergraphs for benchmarking and
// testing the engine, the way the teacher's own experiment mains
// (graph-clustering-algorithm/pkg/cmd/component_experiment/*) build
// synthetic graphs in-process with math/rand rather than reach for an
// external generator library. Per spec.md §1/§6.5 these four generators
// (uniform, fixed, planted, hsbm) are genuinely peripheral to the core —
// they only ever produce a hypergraph.Builder for the CLI or tests to feed
// into the engine.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/gilchrisn/hlp-engine/internal/hypergraph"
)

// Options configures every generator. Not all fields apply to every
// generator; each generator documents which ones it reads.
type Options struct {
	NumVertices int
	NumEdges    int
	MinEdgeSize int // uniform: lower bound on |e|, inclusive
	MaxEdgeSize int // uniform: upper bound on |e|, inclusive
	EdgeSize    int // fixed: exact |e| for every edge; planted/hsbm: target |e| (3 if < 1)
	Communities int // planted/hsbm: number of ground-truth communities
	PIntra      float64
	PInter      float64
	Seed        int64
	LabelSeed   int64
	NumClasses  int // number of label classes for the initial label vector
}

// Result bundles a generated builder with the ground-truth community
// assignment a planted/hsbm generator produces, when applicable.
type Result struct {
	Builder     *hypergraph.Builder
	Communities []int // len == NumVertices; nil for uniform/fixed
}

// Uniform builds NumEdges hyperedges, each of a size drawn uniformly from
// [MinEdgeSize, MaxEdgeSize], over vertices chosen uniformly without
// repetition within an edge.
func Uniform(opts Options) (*Result, error) {
	if opts.MinEdgeSize < 1 || opts.MaxEdgeSize < opts.MinEdgeSize {
		return nil, fmt.Errorf("generate: invalid edge size range [%d,%d]", opts.MinEdgeSize, opts.MaxEdgeSize)
	}
	b, err := hypergraph.NewBuilder(opts.NumVertices)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	span := opts.MaxEdgeSize - opts.MinEdgeSize + 1
	for i := 0; i < opts.NumEdges; i++ {
		size := opts.MinEdgeSize + rng.Intn(span)
		if _, err := b.AddHyperedge(sampleDistinct(rng, opts.NumVertices, size)); err != nil {
			return nil, err
		}
	}
	return &Result{Builder: b}, nil
}

// Fixed builds NumEdges hyperedges, each with exactly EdgeSize vertices.
func Fixed(opts Options) (*Result, error) {
	if opts.EdgeSize < 1 {
		return nil, fmt.Errorf("generate: edge_size must be >= 1, got %d", opts.EdgeSize)
	}
	b, err := hypergraph.NewBuilder(opts.NumVertices)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	for i := 0; i < opts.NumEdges; i++ {
		if _, err := b.AddHyperedge(sampleDistinct(rng, opts.NumVertices, opts.EdgeSize)); err != nil {
			return nil, err
		}
	}
	return &Result{Builder: b}, nil
}

// Planted partitions the vertices into Communities ground-truth groups and
// biases hyperedge membership toward intra-community vertices: each vertex
// added to an edge comes from the edge's home community with probability
// PIntra and otherwise from the other communities. PInter is not read. This is a hypergraph analogue of the teacher's
// planted-partition style synthetic graphs used to validate community
// detection against a known ground truth.
func Planted(opts Options) (*Result, error) {
	if opts.Communities < 1 {
		return nil, fmt.Errorf("generate: communities must be >= 1, got %d", opts.Communities)
	}
	b, err := hypergraph.NewBuilder(opts.NumVertices)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	communities := assignCommunities(opts.NumVertices, opts.Communities, rng)
	byCommunity := make([][]int, opts.Communities)
	for v, c := range communities {
		byCommunity[c] = append(byCommunity[c], v)
	}

	size := opts.EdgeSize
	if size < 1 {
		size = 3
	}
	for i := 0; i < opts.NumEdges; i++ {
		home := rng.Intn(opts.Communities)
		verts := make(map[int]struct{}, size)
		for len(verts) < size && len(verts) < opts.NumVertices {
			var pool []int
			if rng.Float64() < opts.PIntra && len(byCommunity[home]) > 0 {
				pool = byCommunity[home]
			} else {
				pool = nil
				for c := 0; c < opts.Communities; c++ {
					if c != home {
						pool = append(pool, byCommunity[c]...)
					}
				}
				if len(pool) == 0 {
					pool = byCommunity[home]
				}
			}
			if len(pool) == 0 {
				break
			}
			verts[pool[rng.Intn(len(pool))]] = struct{}{}
		}
		vlist := make([]int, 0, len(verts))
		for v := range verts {
			vlist = append(vlist, v)
		}
		if len(vlist) == 0 {
			continue
		}
		if _, err := b.AddHyperedge(vlist); err != nil {
			return nil, err
		}
	}
	return &Result{Builder: b, Communities: communities}, nil
}

// HSBM generates a hypergraph stochastic block model: like Planted, but the
// intra/inter edge decision is made independently per vertex added to a
// growing edge, matching the hSBM generative process described in the
// CLI surface rather than Planted's single home-community-per-edge rule.
func HSBM(opts Options) (*Result, error) {
	if opts.Communities < 1 {
		return nil, fmt.Errorf("generate: communities must be >= 1, got %d", opts.Communities)
	}
	b, err := hypergraph.NewBuilder(opts.NumVertices)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	communities := assignCommunities(opts.NumVertices, opts.Communities, rng)
	byCommunity := make([][]int, opts.Communities)
	for v, c := range communities {
		byCommunity[c] = append(byCommunity[c], v)
	}

	size := opts.EdgeSize
	if size < 1 {
		size = 3
	}
	for i := 0; i < opts.NumEdges; i++ {
		verts := make(map[int]struct{}, size)
		attempts := 0
		for len(verts) < size && attempts < size*10 {
			attempts++
			c := rng.Intn(opts.Communities)
			if rng.Float64() >= opts.PIntra && rng.Float64() < opts.PInter {
				c = (c + 1 + rng.Intn(opts.Communities-1+boolToInt(opts.Communities == 1))) % opts.Communities
			}
			if len(byCommunity[c]) == 0 {
				continue
			}
			verts[byCommunity[c][rng.Intn(len(byCommunity[c]))]] = struct{}{}
		}
		if len(verts) == 0 {
			continue
		}
		vlist := make([]int, 0, len(verts))
		for v := range verts {
			vlist = append(vlist, v)
		}
		if _, err := b.AddHyperedge(vlist); err != nil {
			return nil, err
		}
	}
	return &Result{Builder: b, Communities: communities}, nil
}

// Labels draws an initial label vector uniformly from [0, numClasses),
// seeded independently from the structural generator so --seed and
// --label-seed can vary the hypergraph and the starting labels
// independently, matching the CLI surface in spec.md §6.5.
func Labels(numVertices, numClasses int, labelSeed int64) []int32 {
	rng := rand.New(rand.NewSource(labelSeed))
	labels := make([]int32, numVertices)
	for i := range labels {
		labels[i] = int32(rng.Intn(numClasses))
	}
	return labels
}

func assignCommunities(numVertices, communities int, rng *rand.Rand) []int {
	out := make([]int, numVertices)
	for v := range out {
		out[v] = rng.Intn(communities)
	}
	return out
}

func sampleDistinct(rng *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	perm := rng.Perm(n)
	return perm[:k]
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
