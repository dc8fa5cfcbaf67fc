// SPDX-License-Identifier: MIT

// Package matrix - convenience constructors for common float64 matrices.
//
// Purpose:
//   - Thin, intention-revealing wrappers over the generic constructors.
//   - Each facade delegates to FromValue/FromFunc; no logic duplication.

package matrix

// Neutral element values for the convenience constructors.
const (
	zeroValue = 0.0
	oneValue  = 1.0
)

// Zeros returns a rows×cols float64 matrix with every cell set to 0.0.
// Thin alias of FromValue with an intention-revealing name.
//
// Errors: ErrInvalidDimensions on a negative dimension.
// Complexity: Time O(r*c), Space O(r*c).
func Zeros(rows, cols int) (*Matrix[float64], error) {
	return FromValue(rows, cols, zeroValue)
}

// Ones returns a rows×cols float64 matrix with every cell set to 1.0.
//
// Errors: ErrInvalidDimensions on a negative dimension.
// Complexity: Time O(r*c), Space O(r*c).
func Ones(rows, cols int) (*Matrix[float64], error) {
	return FromValue(rows, cols, oneValue)
}

// Identity returns the dim×dim float64 identity matrix I: ones on the
// diagonal, zeros elsewhere, built through the generating-function
// constructor (cell (i,j) = 1.0 iff i == j).
//
// Errors: ErrInvalidDimensions on a negative dimension.
// Complexity: Time O(dim²), Space O(dim²).
func Identity(dim int) (*Matrix[float64], error) {
	return FromFunc(dim, dim, func(i, j int) float64 {
		if i == j {
			return oneValue
		}

		return zeroValue
	})
}
