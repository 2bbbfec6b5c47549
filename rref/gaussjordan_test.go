package rref_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rational"
	"github.com/katalvlaran/linalg/result"
	"github.com/katalvlaran/linalg/rref"
	"github.com/katalvlaran/linalg/scalar"
)

// truncate2 truncates toward zero at two decimal places, which is how
// the reference solutions below were recorded.
func truncate2(x scalar.Float) float64 {
	return math.Trunc(float64(x)*100) / 100
}

// TestGaussJordan_UniqueSolution solves a well-determined 3-unknown
// system and reads the solution off the last column.
func TestGaussJordan_UniqueSolution(t *testing.T) {
	m := matrix.FromRows([][]scalar.Float{
		{11, 22, 17, 100},
		{0, 0, 22, 200},
		{19, 82, 67, 300},
	})

	err := rref.GaussJordan(m)

	require.NoError(t, err)
	solution := m.Col(m.Cols() - 1)
	assert.Equal(t, 4.80, truncate2(solution[0]))
	assert.Equal(t, -4.88, truncate2(solution[1]))
	assert.Equal(t, 9.09, truncate2(solution[2]))
}

// TestGaussJordan_NoSolutions classifies an inconsistent system: the
// reduction leaves a row reading 0 = b with b nonzero.
func TestGaussJordan_NoSolutions(t *testing.T) {
	m := matrix.FromRows([][]scalar.Float{
		{11, 22, 17, 100, 100},
		{11, 22, 99, 123, 145},
		{1, 2, 36, 45, 123},
		{2, 4, 63, 98, 1413},
	})

	err := rref.GaussJordan(m)

	require.Error(t, err)
	assert.ErrorIs(t, err, result.NoSolutions)
	assert.NotErrorIs(t, err, result.InfiniteSolutions)
}

// TestGaussJordan_InfiniteSolutions classifies a consistent but
// under-constrained system (a duplicated equation).
func TestGaussJordan_InfiniteSolutions(t *testing.T) {
	m := matrix.FromRows([][]scalar.Float{
		{11, 22, 17, 100, 100},
		{13, 22, 99, 123, 145},
		{11, 22, 17, 100, 100},
		{2, 4, 63, 98, 1413},
	})

	err := rref.GaussJordan(m)

	require.Error(t, err)
	assert.ErrorIs(t, err, result.InfiniteSolutions)
}

// TestGaussJordan_InfiniteSolutionsWithThreshold runs the duplicated
// system through the rounding path; the classification must survive
// float residue.
func TestGaussJordan_InfiniteSolutionsWithThreshold(t *testing.T) {
	m := matrix.FromRows([][]scalar.Float{
		{9, 22, 17, 100, 11},
		{13, 22, 99, 123, 145},
		{9, 22, 17, 100, 11},
		{2, 4, 63, 98, 1413},
	})

	err := rref.GaussJordan(m, rref.WithZeroThreshold(1e-10))

	require.Error(t, err)
	assert.ErrorIs(t, err, result.InfiniteSolutions)
}

// TestGaussJordan_Underdetermined rejects a system with fewer
// equations than unknowns before touching the matrix.
func TestGaussJordan_Underdetermined(t *testing.T) {
	m := matrix.FromRows([][]scalar.Float{
		{11, 22, 17, 100, 100},
		{11, 22, 99, 123, 145},
		{1, 2, 36, 45, 123},
	})

	err := rref.GaussJordan(m)

	require.Error(t, err)
	assert.ErrorIs(t, err, result.UnderdeterminedSystem)

	// No reduction ran: the first row is still the original equation.
	assert.True(t, m.At(0, 0).Equal(11), "matrix must be untouched on the pre-check")
	assert.True(t, m.At(0, 4).Equal(100), "matrix must be untouched on the pre-check")
}

// TestGaussJordan_RationalExact solves the reference system in exact
// arithmetic and compares against the true rational solution.
func TestGaussJordan_RationalExact(t *testing.T) {
	m := matrix.FromRows([][]rational.Rat{
		{rational.FromInt(11), rational.FromInt(22), rational.FromInt(17), rational.FromInt(100)},
		{rational.FromInt(0), rational.FromInt(0), rational.FromInt(22), rational.FromInt(200)},
		{rational.FromInt(19), rational.FromInt(82), rational.FromInt(67), rational.FromInt(300)},
	})

	err := rref.GaussJordan(m)

	require.NoError(t, err)
	solution := m.Col(m.Cols() - 1)
	assert.True(t, solution[0].Equal(rational.New(6400, 1331)), "x0: got %v", solution[0])
	assert.True(t, solution[1].Equal(rational.New(-6500, 1331)), "x1: got %v", solution[1])
	assert.True(t, solution[2].Equal(rational.New(100, 11)), "x2: got %v", solution[2])
}

// TestGaussJordan_ThresholdKeepsSolution confirms the rounding path
// does not disturb a well-determined system whose values sit far above
// the threshold.
func TestGaussJordan_ThresholdKeepsSolution(t *testing.T) {
	m := matrix.FromRows([][]scalar.Float{
		{11, 22, 17, 100},
		{0, 0, 22, 200},
		{19, 82, 67, 300},
	})

	err := rref.GaussJordan(m, rref.WithZeroThreshold(1e-12))

	require.NoError(t, err)
	solution := m.Col(m.Cols() - 1)
	assert.Equal(t, 4.80, truncate2(solution[0]))
	assert.Equal(t, -4.88, truncate2(solution[1]))
	assert.Equal(t, 9.09, truncate2(solution[2]))
}
