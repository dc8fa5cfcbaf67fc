// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Returns nil or wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape[T any](a, b *Matrix[T]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Used by Add/Sub/Hadamard kernels.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Used by the matrix product kernel.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateAugmentCompatible ensures a.Rows == b.Rows, inputs non-nil.
// Used by horizontal augmentation.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateAugmentCompatible[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateAugmentCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateAugmentCompatible", err)
	}
	if a.rows != b.rows {
		return validatorErrorf("ValidateAugmentCompatible", ErrDimensionMismatch)
	}

	return nil
}
