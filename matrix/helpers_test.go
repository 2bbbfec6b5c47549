// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// assertGrid fails the test unless m has exactly the shape and
// elements of want, compared with the scalar Equal contract.
func assertGrid[T scalar.Scalar[T]](t *testing.T, m *matrix.Dense[T], want [][]T) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	require.Equal(t, len(want[0]), m.Cols(), "column count")
	for r := range want {
		for c := range want[r] {
			assert.True(t, m.At(r, c).Equal(want[r][c]),
				"element (%d,%d): got %v, want %v", r, c, m.At(r, c), want[r][c])
		}
	}
}

// onesMatrix returns a rows×cols matrix with every element set to one.
func onesMatrix(rows, cols int) *matrix.Dense[scalar.Float] {
	m := matrix.New[scalar.Float](rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.Set(r, c, 1)
		}
	}

	return m
}
