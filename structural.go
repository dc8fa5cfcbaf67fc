// SPDX-License-Identifier: MIT

// Package matrix - structural operations: row/column extraction, horizontal
// augmentation, and transpose.
//
// Purpose:
//   - Every structural result is an independent copy, never a view: the
//     source and the result share no storage.
//   - Bounds and shape violations surface as sentinel errors (ErrOutOfRange,
//     ErrDimensionMismatch), wrapped with the method tag at the callsite.
//
// Complexity quicksheet:
//   - Row: O(c); Col: O(r); Augment: O(r*(c1+c2)); Transpose: O(r*c).

package matrix

import "fmt"

// Row returns row r of the source as a new 1×n matrix.
//
// Implementation:
//   - Stage 1: validate 0 <= r < rows; else ErrOutOfRange.
//   - Stage 2: copy the contiguous row slice into a fresh buffer.
//
// Complexity: Time O(c), Space O(c).
func (m *Matrix[T]) Row(r int) (*Matrix[T], error) {
	if r < 0 || r >= m.rows {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, r, ErrOutOfRange)
	}
	out := newMatrix[T](1, m.cols)

	// Row-major storage keeps a row contiguous; a single copy suffices.
	copy(out.data, m.data[r*m.cols:(r+1)*m.cols])

	return out, nil
}

// Col returns column c of the source as a new m×1 matrix.
//
// Implementation:
//   - Stage 1: validate 0 <= c < cols; else ErrOutOfRange.
//   - Stage 2: strided gather, one element per source row.
//
// Complexity: Time O(r), Space O(r).
func (m *Matrix[T]) Col(c int) (*Matrix[T], error) {
	if c < 0 || c >= m.cols {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxCol, c, ErrOutOfRange)
	}
	out := newMatrix[T](m.rows, 1)

	// Fixed i order; stride m.cols between consecutive column entries.
	for i := 0; i < m.rows; i++ {
		out.data[i] = m.data[i*m.cols+c]
	}

	return out, nil
}

// Augment horizontally concatenates m (r×n) with other (r×c) into an
// r×(n+c) matrix, m's columns first.
//
// Implementation:
//   - Stage 1: validate other non-nil and row counts equal
//     (ValidateAugmentCompatible); else ErrNilMatrix / ErrDimensionMismatch.
//   - Stage 2: per result row, copy m's row then other's row into place.
//
// Behavior highlights:
//   - No truncation, padding, or broadcasting: mismatched row counts fail.
//   - Result owns fresh storage; operands are never aliased.
//
// Complexity: Time O(r*(n+c)), Space O(r*(n+c)).
func (m *Matrix[T]) Augment(other *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateAugmentCompatible(m, other); err != nil {
		return nil, opErrorf(ctxAugment, err)
	}
	cols := m.cols + other.cols
	out := newMatrix[T](m.rows, cols)

	// Row-major layout lets both halves of each result row be block copies.
	var i, base int
	for i = 0; i < m.rows; i++ {
		base = i * cols
		copy(out.data[base:base+m.cols], m.data[i*m.cols:(i+1)*m.cols])
		copy(out.data[base+m.cols:base+cols], other.data[i*other.cols:(i+1)*other.cols])
	}

	return out, nil
}

// Transpose returns a new n×m matrix where cell (i,j) of the result equals
// cell (j,i) of the source. Valid for any shape, including non-square and
// zero-dimension matrices.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := newMatrix[T](m.cols, m.rows)

	// Fixed i→j order over the result; reads stride through the source.
	var i, j, base int
	for i = 0; i < out.rows; i++ {
		base = i * out.cols
		for j = 0; j < out.cols; j++ {
			out.data[base+j] = m.data[j*m.cols+i]
		}
	}

	return out
}

// T is the short alias for Transpose, mirroring the conventional mᵀ
// spelling. Identical result and cost.
func (m *Matrix[E]) T() *Matrix[E] { return m.Transpose() }
