// Package hgfile implements the binary hypergraph file format from
// spec.md §6.3: a little-endian, byte-exact layout with a magic number,
// version, vertex/edge counts, ragged edge vertex lists, and an optional
// label vector. There is no binary-framing library anywhere in the
// retrieval pack to ground this on (the corpus's own file I/O is all
// encoding/json), so this package is built directly against the spec's
// byte layout using encoding/binary, the stdlib idiom the rest of the
// corpus reaches for whenever it does binary work at all — see DESIGN.md
// for the standard-library justification.
package hgfile

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/gilchrisn/hlp-engine/internal/hlperrors"
	"github.com/gilchrisn/hlp-engine/internal/hypergraph"
)

const (
	magic   uint32 = 0x31524748 // ASCII "HGR1" read little-endian.
	version uint32 = 1
)

// Load reads a binary hypergraph file from path into a fresh Builder.
func Load(path string) (*hypergraph.Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, hlperrors.NewIOError(path, err)
	}
	defer f.Close()

	b, err := decode(bufio.NewReader(f))
	if err != nil {
		return nil, hlperrors.NewIOError(path, err)
	}
	return b, nil
}

// Save writes snap and, if non-nil, labels to path in the binary format.
func Save(path string, snap *hypergraph.Snapshot, labels []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return hlperrors.NewIOError(path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := encode(w, snap, labels); err != nil {
		return hlperrors.NewIOError(path, err)
	}
	return w.Flush()
}

func encode(w io.Writer, snap *hypergraph.Snapshot, labels []int32) error {
	if err := binary.Write(w, binary.LittleEndian, magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, version); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(snap.NumVertices())); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(snap.NumEdges())); err != nil {
		return err
	}
	for e := 0; e < snap.NumEdges(); e++ {
		verts := snap.EdgeVertices(e)
		if err := binary.Write(w, binary.LittleEndian, uint64(len(verts))); err != nil {
			return err
		}
		for _, v := range verts {
			if err := binary.Write(w, binary.LittleEndian, uint64(v)); err != nil {
				return err
			}
		}
	}

	hasLabels := uint8(0)
	if labels != nil {
		hasLabels = 1
	}
	if err := binary.Write(w, binary.LittleEndian, hasLabels); err != nil {
		return err
	}
	if hasLabels == 1 {
		for _, l := range labels {
			if err := binary.Write(w, binary.LittleEndian, l); err != nil {
				return err
			}
		}
	}
	return nil
}

func decode(r io.Reader) (*hypergraph.Builder, error) {
	var gotMagic, gotVersion uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	if gotMagic != magic {
		return nil, &invalidFileError{reason: "bad magic"}
	}
	if err := binary.Read(r, binary.LittleEndian, &gotVersion); err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	if gotVersion != version {
		return nil, &invalidFileError{reason: "unsupported version"}
	}

	var numVertices, numEdges uint64
	if err := binary.Read(r, binary.LittleEndian, &numVertices); err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	if numVertices == 0 {
		return nil, &invalidFileError{reason: "num_vertices is zero"}
	}
	if err := binary.Read(r, binary.LittleEndian, &numEdges); err != nil {
		return nil, io.ErrUnexpectedEOF
	}

	b, err := hypergraph.NewBuilder(int(numVertices))
	if err != nil {
		return nil, err
	}

	for e := uint64(0); e < numEdges; e++ {
		var size uint64
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return nil, io.ErrUnexpectedEOF
		}
		if size == 0 {
			return nil, &invalidFileError{reason: "edge_size is zero"}
		}
		verts := make([]int, size)
		for i := range verts {
			var id uint64
			if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
				return nil, io.ErrUnexpectedEOF
			}
			verts[i] = int(id)
		}
		if _, err := b.AddHyperedge(verts); err != nil {
			return nil, err
		}
	}

	var hasLabels uint8
	if err := binary.Read(r, binary.LittleEndian, &hasLabels); err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	if hasLabels == 1 {
		labels := make([]int32, numVertices)
		for i := range labels {
			if err := binary.Read(r, binary.LittleEndian, &labels[i]); err != nil {
				return nil, io.ErrUnexpectedEOF
			}
		}
		if err := b.SetLabels(labels); err != nil {
			return nil, err
		}
	}

	return b, nil
}

type invalidFileError struct{ reason string }

func (e *invalidFileError) Error() string { return "invalid hypergraph file: " + e.reason }
