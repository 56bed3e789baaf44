// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Keep all data finite unless a test targets non-finite propagation.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagloss/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At/Set fallback path.
type hide struct{ matrix.Matrix }

// NewFilledDense builds an r×c *Dense from row-major values or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose asserts AllClose(got, want) with tight tolerances.
func requireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, tol, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}
