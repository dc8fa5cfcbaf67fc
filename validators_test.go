// Package matrix_test contains unit tests for the central validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers the nil and non-nil paths.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)

	m := mustFromFunc(t, 1, 1, func(i, j int) int { return 0 })
	require.NoError(t, matrix.ValidateNotNil(m))
}

// TestValidateSameShape distinguishes row and column disagreement.
func TestValidateSameShape(t *testing.T) {
	a := mustFromFunc(t, 2, 3, func(i, j int) int { return 0 })
	b := mustFromFunc(t, 2, 3, func(i, j int) int { return 1 })
	require.NoError(t, matrix.ValidateSameShape(a, b))

	c := mustFromFunc(t, 3, 3, func(i, j int) int { return 0 })
	require.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrDimensionMismatch)

	d := mustFromFunc(t, 2, 4, func(i, j int) int { return 0 })
	require.ErrorIs(t, matrix.ValidateSameShape(a, d), matrix.ErrDimensionMismatch)
}

// TestValidateBinarySameShape covers the composite sequence NotNil → Shape.
func TestValidateBinarySameShape(t *testing.T) {
	a := mustFromFunc(t, 2, 2, func(i, j int) int { return 0 })

	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateBinarySameShape(a, a.Clone()))
}

// TestValidateMulCompatible checks the inner-dimension contract.
func TestValidateMulCompatible(t *testing.T) {
	a := mustFromFunc(t, 2, 3, func(i, j int) int { return 0 })
	b := mustFromFunc(t, 3, 5, func(i, j int) int { return 0 })
	require.NoError(t, matrix.ValidateMulCompatible(a, b))

	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible[int](nil, a), matrix.ErrNilMatrix)
}

// TestValidateAugmentCompatible checks the row-count contract.
func TestValidateAugmentCompatible(t *testing.T) {
	a := mustFromFunc(t, 2, 3, func(i, j int) int { return 0 })
	b := mustFromFunc(t, 2, 1, func(i, j int) int { return 0 })
	require.NoError(t, matrix.ValidateAugmentCompatible(a, b))

	c := mustFromFunc(t, 3, 1, func(i, j int) int { return 0 })
	require.ErrorIs(t, matrix.ValidateAugmentCompatible(a, c), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateAugmentCompatible[int](a, nil), matrix.ErrNilMatrix)
}
