// SPDX-License-Identifier: MIT

// Package matrix - numeric kernels for algebraic element types.
//
// Purpose:
//   - Element-wise addition/subtraction/negation, scalar scaling, Hadamard
//     product, the standard matrix product, and the Sum reduction.
//   - All kernels perform strict fail-fast validation through the central
//     validators and return sentinel errors on dimension mismatches.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 or i→j); reductions accumulate in
//     row-major order, so float results are bit-exact reproducible.
//   - One allocation per kernel (the result); operands are never mutated.

package matrix

// Number is the constraint for the algebraic element types accepted by the
// numeric kernels: additive identity (the zero value), addition, subtraction,
// negation, and multiplication. Unsigned integers are excluded because
// negation is part of the contract.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opNeg      = "Neg"
	opMul      = "Mul"
	opScale    = "Scale"
	opHadamard = "Hadamard"
	opSum      = "Sum"
)

// addSub computes element-wise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and the flat
// loop. Inputs must have identical shapes; a fresh matrix is allocated and
// the operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over both row-major buffers.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
// Complexity: Time O(r*c), Space O(r*c).
func addSub[T Number](a, b *Matrix[T], sign T, opTag string) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}
	out := newMatrix[T](a.rows, a.cols)

	// Deterministic flat walk; keeping sign as a value avoids a branch
	// inside the hot loop.
	for idx := range out.data {
		out.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B, defined only when both
// operands have identical shape.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A - B, semantically
// A + (-B); it inherits Add's identical-shape contract.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, -1, opSub) }

// Neg returns the element-wise additive inverse -M, expressed through Map.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Neg[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opNeg, err)
	}

	return m.Map(func(v T) T { return -v }), nil
}

// Scale returns alpha*M, the scalar multiple of every element.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T Number](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	return m.Map(func(v T) T { return alpha * v }), nil
}

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j],
// with the same identical-shape contract as Add.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opHadamard, err)
	}
	out := newMatrix[T](a.rows, a.cols)

	for idx := range out.data {
		out.data[idx] = a.data[idx] * b.data[idx]
	}

	return out, nil
}

// dot pairs row 0 of row with column 0 of col element-wise and sums the
// products, starting from the zero value. It assumes (without checking) that
// it is invoked on genuine 1×k and k×1 operands produced by Row/Col; both
// are stored contiguously, so a single flat loop covers each.
// Complexity: Time O(k), Space O(1).
func dot[T Number](row, col *Matrix[T]) T {
	var acc T
	for k := 0; k < row.cols; k++ {
		acc += row.data[k] * col.data[k]
	}

	return acc
}

// Mul performs the standard matrix product C = A × B. Requires
// A.Cols == B.Rows; the result is A.Rows × B.Cols, where cell (i,j) is the
// dot product of A's row i and B's column j.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: naive i→j double loop; each cell extracts the operand row and
//     column once and reduces them via dot. No blocking, no tiling.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner dimensions disagree).
// Complexity: Time O(r*k*c), Space O(r*c) for the result plus O(k) per cell
// for the row/column copies.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	out := newMatrix[T](a.rows, b.cols)

	var i, j, base int
	for i = 0; i < out.rows; i++ {
		// Row/Col cannot fail after ValidateMulCompatible; errors are ignored
		// the same way bounds-safe writes are after shape validation.
		ri, _ := a.Row(i)
		base = i * out.cols
		for j = 0; j < out.cols; j++ {
			cj, _ := b.Col(j)
			out.data[base+j] = dot(ri, cj)
		}
	}

	return out, nil
}

// Sum returns the additive reduction of all r*c elements, starting from the
// zero value and accumulated in row-major order. The fixed reduction order
// makes float results bit-exact reproducible across runs.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func Sum[T Number](m *Matrix[T]) (T, error) {
	var acc T
	if err := ValidateNotNil(m); err != nil {
		return acc, opErrorf(opSum, err)
	}

	// Flat walk over the row-major buffer is exactly row-major order.
	for idx := range m.data {
		acc += m.data[idx]
	}

	return acc, nil
}
