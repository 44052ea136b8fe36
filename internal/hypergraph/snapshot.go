package hypergraph

import "fmt"

// Snapshot is the immutable, flattened representation of a hypergraph: two
// compressed-sparse-row views of the incidence relation, one indexed by
// edge and one by vertex. It is produced once by Builder.Freeze and never
// mutated afterward; the iteration engine relies on that for pointer
// stability and for offsets[i+1]-offsets[i] == degree(i).
type Snapshot struct {
	edgeVertices  []int32 // flattened vertex ids, grouped by edge
	edgeOffsets   []int32 // length numEdges+1
	vertexEdges   []int32 // flattened edge ids, grouped by vertex
	vertexOffsets []int32 // length numVertices+1
	edgeSizes     []int32 // length numEdges

	numVertices int
	numEdges    int
}

// NumVertices returns the number of vertices in the snapshot.
func (s *Snapshot) NumVertices() int { return s.numVertices }

// NumEdges returns the number of hyperedges in the snapshot.
func (s *Snapshot) NumEdges() int { return s.numEdges }

// EdgeVertices returns the vertex ids incident to edge e, sharing the
// snapshot's backing array; callers must not mutate the returned slice.
func (s *Snapshot) EdgeVertices(e int) []int32 {
	return s.edgeVertices[s.edgeOffsets[e]:s.edgeOffsets[e+1]]
}

// VertexEdges returns the edge ids incident to vertex v, sharing the
// snapshot's backing array; callers must not mutate the returned slice.
func (s *Snapshot) VertexEdges(v int) []int32 {
	return s.vertexEdges[s.vertexOffsets[v]:s.vertexOffsets[v+1]]
}

// EdgeSize returns |vertices(e)|, the degree of hyperedge e.
func (s *Snapshot) EdgeSize(e int) int { return int(s.edgeSizes[e]) }

// VertexDegree returns |incident(v)|, the number of hyperedges touching v.
func (s *Snapshot) VertexDegree(v int) int {
	return int(s.vertexOffsets[v+1] - s.vertexOffsets[v])
}

// EdgeOffsets exposes the raw CSR offsets array for edges, length
// NumEdges()+1, for code that wants to walk edges without per-call
// slicing.
func (s *Snapshot) EdgeOffsets() []int32 { return s.edgeOffsets }

// VertexOffsets exposes the raw CSR offsets array for vertices, length
// NumVertices()+1.
func (s *Snapshot) VertexOffsets() []int32 { return s.vertexOffsets }

// flatten builds the two CSR views from a builder's accumulated edge list.
// It is the sole place that materializes the incidence relation; both the
// edge_vertices/edge_offsets view and its vertex_edges/vertex_offsets
// transpose are derived here so they stay consistent by construction.
func flatten(numVertices int, edges [][]int32) (*Snapshot, error) {
	numEdges := len(edges)

	edgeOffsets := make([]int32, numEdges+1)
	edgeSizes := make([]int32, numEdges)
	total := 0
	for e, vs := range edges {
		if len(vs) == 0 {
			return nil, fmt.Errorf("hypergraph: edge %d has no vertices", e)
		}
		edgeSizes[e] = int32(len(vs))
		edgeOffsets[e] = int32(total)
		total += len(vs)
	}
	edgeOffsets[numEdges] = int32(total)

	edgeVertices := make([]int32, 0, total)
	degree := make([]int32, numVertices)
	for _, vs := range edges {
		for _, v := range vs {
			if int(v) < 0 || int(v) >= numVertices {
				return nil, fmt.Errorf("hypergraph: vertex id %d out of range [0,%d)", v, numVertices)
			}
			degree[v]++
		}
		edgeVertices = append(edgeVertices, vs...)
	}

	vertexOffsets := make([]int32, numVertices+1)
	running := int32(0)
	for v := 0; v < numVertices; v++ {
		vertexOffsets[v] = running
		running += degree[v]
	}
	vertexOffsets[numVertices] = running

	vertexEdges := make([]int32, running)
	cursor := append([]int32(nil), vertexOffsets[:numVertices]...)
	for e, vs := range edges {
		for _, v := range vs {
			pos := cursor[v]
			vertexEdges[pos] = int32(e)
			cursor[v] = pos + 1
		}
	}

	return &Snapshot{
		edgeVertices:  edgeVertices,
		edgeOffsets:   edgeOffsets,
		vertexEdges:   vertexEdges,
		vertexOffsets: vertexOffsets,
		edgeSizes:     edgeSizes,
		numVertices:   numVertices,
		numEdges:      numEdges,
	}, nil
}
