// Package hgjson implements the two JSON hypergraph schemas from
// spec.md §6.4 over encoding/json, the library the teacher itself reaches
// for whenever it persists structured state (pkg2/utils/move_tracker.go,
// pkg/scar/output_writer.go) — grounded on that usage rather than on any
// third-party JSON library, since none appears anywhere in the retrieval
// pack.
package hgjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gilchrisn/hlp-engine/internal/hlperrors"
	"github.com/gilchrisn/hlp-engine/internal/hypergraph"
)

// arraySchema is the "flat" shape: num_vertices plus an edge list of
// integer vertex ids, and an optional flat label array.
type arraySchema struct {
	NumVertices int     `json:"num_vertices"`
	Edges       [][]int `json:"edges"`
	Hyperedges  [][]int `json:"hyperedges"`
	Labels      []int32 `json:"labels"`
}

// Load reads path and auto-detects its schema by probing for the keyed
// schema's discriminating "type" field, falling back to the array schema.
func Load(path string) (*hypergraph.Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, hlperrors.NewIOError(path, err)
	}
	b, err := decode(data)
	if err != nil {
		return nil, hlperrors.NewIOError(path, err)
	}
	return b, nil
}

func decode(data []byte) (*hypergraph.Builder, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("hgjson: %w", err)
	}
	if probe.Type == "hypergraph" {
		return decodeKeyed(data)
	}
	return decodeArray(data)
}

func decodeArray(data []byte) (*hypergraph.Builder, error) {
	var doc arraySchema
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("hgjson: %w", err)
	}
	if doc.NumVertices <= 0 {
		return nil, fmt.Errorf("hgjson: num_vertices must be > 0")
	}
	edges := doc.Edges
	if len(edges) == 0 {
		edges = doc.Hyperedges
	}

	b, err := hypergraph.NewBuilder(doc.NumVertices)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if len(e) == 0 {
			return nil, fmt.Errorf("hgjson: empty hyperedge in array schema")
		}
		if _, err := b.AddHyperedge(e); err != nil {
			return nil, err
		}
	}
	if doc.Labels != nil {
		if err := b.SetLabels(doc.Labels); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// decodeKeyed decodes the keyed schema, interning vertex ids to dense
// integer ids in first-seen document order per spec.md §6.4 and
// original_source/include/utils.hpp's ensure_id. encoding/json loses key
// order when decoding into a map, so node-data and edge-dict are walked
// with a streaming json.Decoder/Token() pass instead, and ids are interned
// in the order their keys are read off the wire.
func decodeKeyed(data []byte) (*hypergraph.Builder, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var order []string
	intern := func(id string) int {
		if idx, ok := index[id]; ok {
			return idx
		}
		idx := len(index)
		index[id] = idx
		order = append(order, id)
		return idx
	}

	var edges [][]int
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("hgjson: %w", err)
		}
		key, _ := keyTok.(string)

		switch key {
		case "node-data":
			if err := streamObjectKeys(dec, func(id string) error {
				intern(id)
				return nil
			}); err != nil {
				return nil, err
			}
		case "edge-dict":
			if err := streamEdgeDict(dec, intern, &edges); err != nil {
				return nil, err
			}
		default:
			var discard json.RawMessage
			if err := dec.Decode(&discard); err != nil {
				return nil, fmt.Errorf("hgjson: %w", err)
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	b, err := hypergraph.NewBuilder(len(order))
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if _, err := b.AddHyperedge(e); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// streamObjectKeys walks a JSON object and calls visit with each key in
// document order, discarding each value generically.
func streamObjectKeys(dec *json.Decoder, visit func(key string) error) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("hgjson: %w", err)
		}
		key, _ := keyTok.(string)
		var discard json.RawMessage
		if err := dec.Decode(&discard); err != nil {
			return fmt.Errorf("hgjson: %w", err)
		}
		if err := visit(key); err != nil {
			return err
		}
	}
	return expectDelim(dec, '}')
}

// streamEdgeDict walks the edge-dict object in document order, interning
// each referenced vertex id (in the order it is first seen, whether from
// node-data or here) and appending the resulting integer edge to edges.
func streamEdgeDict(dec *json.Decoder, intern func(string) int, edges *[][]int) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("hgjson: %w", err)
		}
		eid, _ := keyTok.(string)

		var verts []string
		if err := dec.Decode(&verts); err != nil {
			return fmt.Errorf("hgjson: %w", err)
		}
		if len(verts) == 0 {
			return fmt.Errorf("hgjson: empty hyperedge %q in keyed schema", eid)
		}
		vlist := make([]int, len(verts))
		for i, vid := range verts {
			vlist[i] = intern(vid)
		}
		*edges = append(*edges, vlist)
	}
	return expectDelim(dec, '}')
}

// expectDelim consumes the next token and verifies it is the given
// delimiter ('{', '}', '[', or ']').
func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("hgjson: %w", err)
	}
	got, ok := tok.(json.Delim)
	if !ok || got != want {
		return fmt.Errorf("hgjson: expected %q, got %v", want, tok)
	}
	return nil
}

// Save writes snap (and labels, if non-nil) in the array schema.
func Save(path string, snap *hypergraph.Snapshot, labels []int32) error {
	doc := arraySchema{NumVertices: snap.NumVertices(), Labels: labels}
	for e := 0; e < snap.NumEdges(); e++ {
		verts := snap.EdgeVertices(e)
		ints := make([]int, len(verts))
		for i, v := range verts {
			ints[i] = int(v)
		}
		doc.Edges = append(doc.Edges, ints)
	}

	f, err := os.Create(path)
	if err != nil {
		return hlperrors.NewIOError(path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return hlperrors.NewIOError(path, err)
	}
	return nil
}
