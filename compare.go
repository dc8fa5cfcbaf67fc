// SPDX-License-Identifier: MIT

// Package matrix - equality and tolerance comparison.
//
// Purpose:
//   - Equal: exact cell-by-cell equality for comparable element types.
//   - EqualApprox: absolute-tolerance comparison for floating-point matrices,
//     the right tool when results come from chains of arithmetic (e.g. the
//     associativity of matrix products holds only up to rounding).
//
// Determinism & Performance:
//   - Fixed flat loop with early exit on the first differing cell.
//   - Shape mismatch short-circuits to false without touching elements.

package matrix

// DefaultEpsilon is the non-negative absolute tolerance used by
// tolerance-based comparisons when callers have no tighter requirement.
const DefaultEpsilon = 1e-9

// Float is the constraint for element types accepted by EqualApprox.
type Float interface {
	~float32 | ~float64
}

// Equal reports whether a and b have identical shapes and every
// corresponding cell pair is equal under ==. Shape mismatch short-circuits
// to false without comparing elements. Two nil matrices are equal; nil vs
// non-nil is not.
//
// Complexity: Time O(r*c) worst case, Space O(1).
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false // shape mismatch, elements never inspected
	}

	// Flat walk with early exit on the first difference.
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether a and b have identical shapes and
// |a[i,j] - b[i,j]| <= eps for every cell. A negative eps is normalized to
// its absolute value. Nil handling matches Equal.
//
// Complexity: Time O(r*c) worst case, Space O(1).
func EqualApprox[T Float](a, b *Matrix[T], eps T) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	if eps < 0 {
		eps = -eps
	}

	var diff T
	for idx := range a.data {
		diff = a.data[idx] - b.data[idx]
		if diff < 0 {
			diff = -diff
		}
		if diff > eps {
			return false
		}
	}

	return true
}
