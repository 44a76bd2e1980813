// SPDX-License-Identifier: MIT

// Package matrixio reads and writes adjacency matrices as YAML documents.
// JSON is a subset of YAML, so the same decoder accepts .json files and the
// HTTP request bodies share the Document type.
//
// A document carries exactly one of three inputs:
//
//	real: [[0, 1], [1, 0]]         # dense grid, optional imag grid of the same shape
//	imag: [[0, 0], [0, 0]]
//
//	vertices: 4                    # undirected edge list, mirrored on load
//	edges: [[0, 1], [1, 2]]
//
//	graph: cycle                   # named generator (builder.Kinds)
//	vertices: 6
package matrixio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/qwalk/builder"
	"github.com/katalvlaran/qwalk/matrix"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDocument indicates a document with no matrix input at all.
	ErrEmptyDocument = errors.New("matrixio: document has no matrix")

	// ErrAmbiguous indicates more than one input form in a single document.
	ErrAmbiguous = errors.New("matrixio: document mixes real/edges/graph")

	// ErrBadEdge indicates an edge entry that is not a [u, v] pair.
	ErrBadEdge = errors.New("matrixio: edge must be a [u, v] pair")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("matrixio: weight must be finite")

	// ErrTooLarge indicates a matrix side above the caller's limit.
	ErrTooLarge = errors.New("matrixio: matrix too large")
)

// Document is the on-disk and on-the-wire form of an adjacency matrix.
type Document struct {
	Real     [][]float64 `yaml:"real,omitempty" json:"real,omitempty"`
	Imag     [][]float64 `yaml:"imag,omitempty" json:"imag,omitempty"`
	Vertices int         `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges    [][]int     `yaml:"edges,omitempty" json:"edges,omitempty"`
	Graph    string      `yaml:"graph,omitempty" json:"graph,omitempty"`
	Weight   float64     `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Size returns the side n the document describes, before building it.
func (d Document) Size() int {
	if len(d.Real) > 0 {
		return len(d.Real)
	}
	if d.Vertices > 0 {
		return d.Vertices
	}
	n := 0
	for _, e := range d.Edges {
		for _, v := range e {
			if v+1 > n {
				n = v + 1
			}
		}
	}

	return n
}

// Matrix builds the complex adjacency described by d. maxN bounds the side
// (0 disables the bound).
// Errors: ErrEmptyDocument, ErrAmbiguous, ErrBadEdge, ErrBadWeight, ErrTooLarge, plus the
// matrix and builder sentinels of the underlying constructor.
func (d Document) Matrix(maxN int) (*matrix.CDense, error) {
	forms := 0
	for _, present := range []bool{len(d.Real) > 0, len(d.Edges) > 0, d.Graph != ""} {
		if present {
			forms++
		}
	}
	switch {
	case forms == 0 && d.Vertices == 0:
		return nil, ErrEmptyDocument
	case forms > 1:
		return nil, ErrAmbiguous
	}
	if n := d.Size(); maxN > 0 && n > maxN {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, maxN)
	}

	if math.IsNaN(d.Weight) || math.IsInf(d.Weight, 0) {
		return nil, ErrBadWeight
	}
	var opts []builder.BuilderOption
	if d.Weight != 0 {
		opts = append(opts, builder.WithWeight(d.Weight))
	}

	switch {
	case len(d.Real) > 0:
		m, err := matrix.NewCDenseFrom(d.Real, d.Imag)
		if err != nil {
			return nil, fmt.Errorf("matrixio: real/imag grid: %w", err)
		}
		return m, nil
	case d.Graph != "":
		return builder.ByName(d.Graph, d.Vertices, opts...)
	default:
		edges := make([]builder.Edge, 0, len(d.Edges))
		for i, e := range d.Edges {
			if len(e) != 2 {
				return nil, fmt.Errorf("edge %d: %w", i, ErrBadEdge)
			}
			edges = append(edges, builder.Edge{U: e[0], V: e[1]})
		}
		return builder.FromEdgeList(edges, d.Vertices, opts...)
	}
}

// FromMatrix captures m as a dense real/imag document; imag is omitted for
// real matrices.
func FromMatrix(m matrix.CMatrix) (Document, error) {
	re, err := matrix.RealPart(m)
	if err != nil {
		return Document{}, fmt.Errorf("matrixio: %w", err)
	}
	doc := Document{Real: re.ToRows()}
	isReal, err := matrix.IsReal(m)
	if err != nil {
		return Document{}, fmt.Errorf("matrixio: %w", err)
	}
	if !isReal {
		im, err := matrix.ImagPart(m)
		if err != nil {
			return Document{}, fmt.Errorf("matrixio: %w", err)
		}
		doc.Imag = im.ToRows()
	}

	return doc, nil
}

// Decode parses one document from r. Unknown keys are rejected.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, ErrEmptyDocument
		}
		return Document{}, fmt.Errorf("matrixio: decode: %w", err)
	}

	return doc, nil
}

// ReadFile decodes the file at path and builds its matrix.
func ReadFile(path string, maxN int) (*matrix.CDense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: read %q: %w", path, err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc.Matrix(maxN)
}

// Encode writes m to w as a YAML document.
func Encode(w io.Writer, m matrix.CMatrix) error {
	doc, err := FromMatrix(m)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}

	return enc.Close()
}
