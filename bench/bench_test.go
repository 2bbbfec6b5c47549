package bench_test

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/bench"
)

// genFloats returns a deterministic pseudo-random slice of length n.
func genFloats(n int) []float64 {
	rng := rand.New(rand.NewSource(int64(n)))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*999 + 1
	}

	return out
}

// maxOf is a cheap subject whose cost grows linearly with input size.
func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs {
		if x > m {
			m = x
		}
	}

	return m
}

// TestNew_Validates pins the programmer-error channel on construction.
func TestNew_Validates(t *testing.T) {
	cases := []bench.Case{{Size: 10, Iterations: 5}}

	assert.PanicsWithValue(t, bench.ErrNilGenerate, func() {
		bench.New[[]float64, float64](nil, maxOf, cases)
	})
	assert.PanicsWithValue(t, bench.ErrNilSubject, func() {
		bench.New[[]float64, float64](genFloats, nil, cases)
	})
	assert.PanicsWithValue(t, bench.ErrNoCases, func() {
		bench.New(genFloats, maxOf, nil)
	})
	assert.PanicsWithValue(t, bench.ErrBadCase, func() {
		bench.New(genFloats, maxOf, []bench.Case{{Size: 0, Iterations: 5}})
	})
	assert.PanicsWithValue(t, bench.ErrBadCase, func() {
		bench.New(genFloats, maxOf, []bench.Case{{Size: 10, Iterations: 0}})
	})
}

// TestNew_CopiesCases verifies the benchmark owns its case list.
func TestNew_CopiesCases(t *testing.T) {
	cases := []bench.Case{{Size: 10, Iterations: 4}}
	b := bench.New(genFloats, maxOf, cases)

	cases[0].Size = 99
	b.Run()

	_, ok := b.Runs()[10]
	assert.True(t, ok, "the size captured at construction must be the one that ran")
	_, ok = b.Runs()[99]
	assert.False(t, ok)
}

// TestRun_RecordsEveryCase runs a max-of-slice subject over four sizes
// and checks the results table carries every case with its iteration
// count and a positive average.
func TestRun_RecordsEveryCase(t *testing.T) {
	cases := []bench.Case{
		{Size: 100, Iterations: 1000},
		{Size: 200, Iterations: 1000},
		{Size: 300, Iterations: 1000},
		{Size: 400, Iterations: 2000},
	}

	b := bench.New(genFloats, maxOf, cases)
	b.Run()

	runs := b.Runs()
	require.Len(t, runs, len(cases))

	for _, c := range cases {
		info, ok := runs[c.Size]
		require.True(t, ok, "size %d missing from the results", c.Size)
		assert.Equal(t, c.Size, info.InputSize)
		assert.Equal(t, c.Iterations, info.Iterations)
		assert.Greater(t, info.Average, time.Duration(0))
	}
}

// TestRun_GeneratesTwoInputsPerCase counts generator calls: the
// cache-defeat scheme needs exactly two inputs per case, no more.
func TestRun_GeneratesTwoInputsPerCase(t *testing.T) {
	var calls atomic.Int64
	gen := func(n int) []float64 {
		calls.Add(1)

		return genFloats(n)
	}

	b := bench.New(gen, maxOf, []bench.Case{
		{Size: 10, Iterations: 3},
		{Size: 20, Iterations: 3},
		{Size: 30, Iterations: 3},
	})
	b.Run()

	assert.Equal(t, int64(6), calls.Load())
}

// TestRun_AlternatesInputs verifies successive iterations see the two
// pre-generated inputs in turn rather than one warm input throughout.
func TestRun_AlternatesInputs(t *testing.T) {
	var ids atomic.Int64
	gen := func(int) int64 { return ids.Add(1) }

	var seen []int64
	subject := func(id int64) int64 {
		seen = append(seen, id)

		return id
	}

	b := bench.New(gen, subject, []bench.Case{{Size: 1, Iterations: 4}})
	b.Run()

	require.Len(t, seen, 4)
	assert.Equal(t, seen[0], seen[2])
	assert.Equal(t, seen[1], seen[3])
	assert.NotEqual(t, seen[0], seen[1], "iterations must alternate between the two inputs")
}

// TestRuns_ReturnsCopy verifies callers cannot corrupt the results
// table through the returned map.
func TestRuns_ReturnsCopy(t *testing.T) {
	b := bench.New(genFloats, maxOf, []bench.Case{{Size: 10, Iterations: 2}})
	b.Run()

	got := b.Runs()
	got[10] = bench.RunInfo{}
	delete(got, 10)

	info, ok := b.Runs()[10]
	require.True(t, ok)
	assert.Equal(t, 10, info.InputSize)
}

// TestSizes_Sorted verifies Sizes reports ascending order whatever the
// case order was.
func TestSizes_Sorted(t *testing.T) {
	b := bench.New(genFloats, maxOf, []bench.Case{
		{Size: 300, Iterations: 2},
		{Size: 100, Iterations: 2},
		{Size: 200, Iterations: 2},
	})

	assert.Empty(t, b.Sizes(), "no sizes before Run")

	b.Run()
	assert.Equal(t, []int{100, 200, 300}, b.Sizes())
}

// TestID_Identity verifies each benchmark instance gets a stable,
// distinct identity.
func TestID_Identity(t *testing.T) {
	cases := []bench.Case{{Size: 10, Iterations: 2}}
	b1 := bench.New(genFloats, maxOf, cases)
	b2 := bench.New(genFloats, maxOf, cases)

	assert.Equal(t, b1.ID(), b1.ID())
	assert.NotEqual(t, b1.ID(), b2.ID())
}
