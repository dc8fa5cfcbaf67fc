// SPDX-License-Identifier: MIT

// Package matrix provides a generic dense row-major 2D matrix container with
// element-wise, structural, and linear-algebra operations.
//
// The matrix package provides:
//
//   - Matrix[T], a generic m×n dense container over any element type, built by
//     a generating function (FromFunc) or a fill value (FromValue).
//   - Structural operations producing independent copies: Row, Col, Augment,
//     Transpose (with the short alias T).
//   - Traversal primitives: Do for row-major visiting and Map for same-shape
//     element transforms.
//   - Numeric kernels for algebraic element types: Add, Sub, Neg, Mul, Scale,
//     Hadamard, and the Sum reduction.
//   - Comparison: Equal for comparable element types and EqualApprox with an
//     absolute tolerance for floating-point matrices.
//   - Convenience constructors Zeros, Ones, and Identity for float64 matrices.
//
// Capability split by type constraint: construction, access, and structural
// reshaping require only `any`; arithmetic requires Number; exact equality
// requires comparable. A Matrix of a non-numeric T still supports everything
// but the numeric kernels.
//
// Matrices are immutable from the caller's perspective: there is no Set and
// no in-place mutation API. Every operation that produces a matrix allocates
// a fresh result; nothing aliases the operands' storage.
//
// All user-triggered failures are reported as sentinel errors (ErrOutOfRange,
// ErrDimensionMismatch, ErrInvalidDimensions, ErrNilMatrix) matched via
// errors.Is; no operation panics on bad input except MustAt, which documents
// out-of-range access as a programmer error.
//
// Traversal and reduction order is fixed row-major, so floating-point sums
// are bit-exact reproducible across runs.
package matrix
