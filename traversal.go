// SPDX-License-Identifier: MIT

// Package matrix - traversal primitives over the index space [0,rows)×[0,cols).
//
// Purpose:
//   - Do: read-only row-major visitor for side-effecting accumulation.
//   - Map: same-shape element transform producing a fresh matrix.
//
// Determinism & Performance:
//   - Fixed i→j loop order in both primitives; no map iteration anywhere.
//   - Do allocates nothing; Map allocates exactly the result buffer.

package matrix

// Do visits each element (i,j) in row-major order and calls f(i, j, v).
//
// Implementation:
//   - Stage 1: nested loops over rows then cols; compute base offset per row.
//   - Stage 2: call f on each element copy; stop when f returns false.
//
// Behavior highlights:
//   - Read-only with respect to the matrix; v is an owned copy of the cell.
//   - Early exit when f returns false; a visitor that always returns true
//     sees every coordinate exactly once.
//
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int // predeclare loop counters and base offset
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Map returns a new matrix of the same shape where each cell holds
// f(m.At(i,j)). The source is read-only; f receives an owned copy of each
// element, so it cannot observe or depend on traversal order beyond per-cell
// independence.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Map(f func(v T) T) *Matrix[T] {
	out := newMatrix[T](m.rows, m.cols)

	// Flat walk preserves row-major order on both buffers.
	for idx := range m.data {
		out.data[idx] = f(m.data[idx])
	}

	return out
}
