// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// TestAdd verifies element-wise addition on same-shape operands.
func TestAdd(t *testing.T) {
	m1 := matrix.FromRows([][]scalar.Float{
		{1, 2, 3, 4},
		{1, 2, 3, 4},
		{1, 2, 3, 4},
	})
	m2 := matrix.FromRows([][]scalar.Float{
		{1, 2, 3, 4},
		{1, 2, 3, 4},
		{1, 2, 3, 4},
	})

	sum := m1.Add(m2)

	assertGrid(t, sum, [][]scalar.Float{
		{2, 4, 6, 8},
		{2, 4, 6, 8},
		{2, 4, 6, 8},
	})
	// Operands stay untouched.
	assert.True(t, m1.At(0, 0).Equal(1), "Add must not mutate the receiver")
}

// TestSub verifies element-wise subtraction.
func TestSub(t *testing.T) {
	m1 := matrix.FromRows([][]scalar.Float{
		{1, 2, 3, 4},
		{1, 2, 3, 4},
		{1, 2, 3, 4},
	})
	m2 := matrix.FromRows([][]scalar.Float{
		{1, 2, 3, 4},
		{1, 2, 3, 4},
		{1, 2, 3, 4},
	})

	diff := m1.Sub(m2)

	assertGrid(t, diff, [][]scalar.Float{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
}

// TestAddSub_ShapeMismatch ensures shape disagreement panics.
func TestAddSub_ShapeMismatch(t *testing.T) {
	m1 := onesMatrix(3, 4)
	m2 := onesMatrix(3, 5)

	assert.PanicsWithValue(t, matrix.ErrShapeMismatch, func() { m1.Add(m2) })
	assert.PanicsWithValue(t, matrix.ErrShapeMismatch, func() { m1.Sub(m2) })
}

// TestMul verifies the matrix product on a known pair.
func TestMul(t *testing.T) {
	m1 := matrix.FromRows([][]scalar.Float{
		{1, 2, 3},
		{4, 5, 6},
	})
	m2 := matrix.FromRows([][]scalar.Float{
		{7, 8},
		{9, 10},
		{11, 12},
	})

	product := m1.Mul(m2)

	assertGrid(t, product, [][]scalar.Float{
		{58, 64},
		{139, 154},
	})
}

// TestMul_ShapeMismatch ensures incompatible inner dimensions panic.
func TestMul_ShapeMismatch(t *testing.T) {
	m1 := matrix.FromRows([][]scalar.Float{
		{1, 2, 3},
		{4, 5, 6},
	})
	m2 := onesMatrix(4, 2)

	assert.PanicsWithValue(t, matrix.ErrShapeMismatch, func() { m1.Mul(m2) })
}

// TestMulVec verifies the matrix-vector product and its shape guard.
func TestMulVec(t *testing.T) {
	m := onesMatrix(3, 4)
	v := vector.From([]scalar.Float{1, 1, 1, 1})

	result := m.MulVec(v)

	require.Equal(t, 3, result.Len())
	for i := 0; i < result.Len(); i++ {
		assert.True(t, result.At(i).Equal(4), "element %d", i)
	}

	tooLong := vector.From([]scalar.Float{1, 1, 1, 1, 1})
	assert.PanicsWithValue(t, matrix.ErrShapeMismatch, func() { m.MulVec(tooLong) })
}

// TestVecMul verifies that the vector-first spelling produces exactly
// m.MulVec(v), with the same shape guard.
func TestVecMul(t *testing.T) {
	m := onesMatrix(3, 4)
	v := vector.From([]scalar.Float{1, 1, 1, 1})

	result := matrix.VecMul(v, m)

	require.Equal(t, 3, result.Len())
	for i := 0; i < result.Len(); i++ {
		assert.True(t, result.At(i).Equal(4), "element %d", i)
	}

	tooLong := vector.From([]scalar.Float{1, 1, 1, 1, 1})
	assert.PanicsWithValue(t, matrix.ErrShapeMismatch, func() { matrix.VecMul(tooLong, m) })
}

// TestChainMultiplication runs M·I, then the vector product, then a
// dot, and checks the collapsed scalar.
func TestChainMultiplication(t *testing.T) {
	m := onesMatrix(3, 4)
	id := matrix.Identity[scalar.Float](4)
	v1 := vector.From([]scalar.Float{1, 1, 1, 1})
	v2 := vector.From([]scalar.Float{1, 1, 1})

	result := m.Mul(id).MulVec(v1).Dot(v2)

	assert.True(t, result.Equal(12), "chain should collapse to 12, got %v", result)
}
