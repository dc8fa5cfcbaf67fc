// SPDX-License-Identifier: MIT

// Package matrix - generic dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Keep the container immutable after construction: no Set, no resizing;
//     every derived matrix owns a fresh buffer.
//
// Complexity quicksheet:
//   - FromFunc/FromValue: O(r*c); At: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxMustAt  = "MustAt"  // method tag used in panic messages
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxCol     = "Col"     // method tag used in error wrappers
	ctxAugment = "Augment" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps err with a method context and callsite indices,
// preserving the sentinel via %w so callers can match with errors.Is.
// Time O(1), Space O(1).
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil. Time O(1), Space O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a generic dense row-major m×n container.
//   - rows, cols hold the shape (both >= 0; zero-sized axes are legal).
//   - data is a flat buffer of length rows*cols in row-major order
//     (offset = i*cols + j), exclusively owned by this matrix.
//
// The zero dimensions invariant (len(data) == rows*cols) is established by
// the constructors and preserved by every operation: derived matrices are
// always rebuilt through FromFunc-style construction, never resized.
type Matrix[T any] struct {
	rows, cols int // row and column counts (>= 0)
	data       []T // contiguous row-major storage (len == rows*cols)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// newMatrix allocates a rows×cols matrix without validation.
// Internal factory for kernels that have already validated shapes;
// make() zero-fills the buffer deterministically.
// Time O(r*c), Space O(r*c).
func newMatrix[T any](rows, cols int) *Matrix[T] {
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// FromFunc builds a rows×cols matrix where element (i,j) equals gen(i,j).
//
// Implementation:
//   - Stage 1: validate rows >= 0 and cols >= 0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and invoke gen exactly once per cell,
//     rows outer, columns inner.
//
// Behavior highlights:
//   - Zero-sized axes are legal and produce an empty matrix along that axis.
//   - gen must be total over [0,rows)×[0,cols); a nil gen is a programmer
//     error and panics.
//
// Returns the new matrix, or ErrInvalidDimensions on a negative dimension.
// Complexity: Time O(r*c), Space O(r*c).
func FromFunc[T any](rows, cols int, gen func(i, j int) T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if gen == nil {
		panic("matrix: FromFunc: nil generator")
	}
	m := newMatrix[T](rows, cols)

	// Deterministic row-major fill; one generator call per cell.
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			m.data[base+j] = gen(i, j)
		}
	}

	return m, nil
}

// FromValue builds a rows×cols matrix with every cell set to v.
// Semantically FromFunc(rows, cols, func(_, _ int) T { return v }) without
// the per-cell closure calls.
//
// Returns ErrInvalidDimensions on a negative dimension.
// Complexity: Time O(r*c), Space O(r*c).
func FromValue[T any](rows, cols int, v T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	m := newMatrix[T](rows, cols)

	// Single flat loop; each cell receives its own copy of v.
	for idx := range m.data {
		m.data[idx] = v
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods wrap it with coordinates
// and the method tag. Time O(1), Space O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*cols + j.
	return row*m.cols + col, nil
}

// At returns a copy of the element at (row, col) or ErrOutOfRange.
//
// At is the sole read primitive: Row, Col, Transpose, and the numeric
// kernels are all expressed in terms of the same bounds contract.
// Never panics on out-of-range; returns the sentinel instead.
// Complexity: Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// MustAt is the indexing shorthand for At: same bounds contract, but an
// out-of-range coordinate panics instead of returning an error. Reserve it
// for call sites where the indices are known-valid by construction;
// out-of-range access here is a programmer error.
// Complexity: Time O(1), Space O(1).
func (m *Matrix[T]) MustAt(row, col int) T {
	off, err := m.indexOf(row, col)
	if err != nil {
		panic(fmt.Sprintf("matrix: %s(%d,%d): index out of range", ctxMustAt, row, col))
	}

	return m.data[off]
}

// Clone returns a deep copy with an independent buffer.
// Mutating nothing is possible anyway (the API is immutable), but Clone
// guarantees an independent lifetime for the returned matrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy elements

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: cp}
}

// String renders the matrix as one bracketed line per row for diagnostics.
// Elements are formatted with %v; not intended for hot paths.
// Complexity: Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ { // iterate cols
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
