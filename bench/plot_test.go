package bench_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/bench"
)

// TestSavePlot_BeforeRun verifies plotting an empty results table is
// refused.
func TestSavePlot_BeforeRun(t *testing.T) {
	b := bench.New(genFloats, maxOf, []bench.Case{{Size: 10, Iterations: 2}})

	err := b.SavePlot(filepath.Join(t.TempDir(), "out.png"), "empty")
	assert.ErrorIs(t, err, bench.ErrNoRuns)
}

// TestSavePlot_WritesImage runs a tiny suite and checks a non-empty
// PNG lands on disk.
func TestSavePlot_WritesImage(t *testing.T) {
	b := bench.New(genFloats, maxOf, []bench.Case{
		{Size: 10, Iterations: 4},
		{Size: 20, Iterations: 4},
		{Size: 40, Iterations: 4},
	})
	b.Run()

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, b.SavePlot(path, "max-of-slice scaling"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
