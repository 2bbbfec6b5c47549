// Package bench measures how a function's run time scales with input
// size.
//
// 🚀 What lives here?
//
//	Benchmark     the harness: an input generator, a subject function
//	              and a list of (size, iterations) cases
//	Case          one benchmark case, YAML-taggable
//	RunInfo       per-size outcome with the average call duration
//	LinearCases   size ranges with a constant step
//	GeometricCases  size ranges with a constant factor
//	LoadConfig    read a suite description from a YAML file
//	SavePlot      render size vs. average duration with gonum/plot
//
// ✨ Contract:
//   - Small inputs finish too fast to time one call, so every case
//     carries its own iteration count and the harness reports the
//     per-call average over the whole loop.
//   - Two inputs are generated per case and alternated between
//     iterations, so a subject cannot win by folding a single warm
//     input into cache. Input generation fans out across cases on a
//     goroutine pool; the timed loops themselves run strictly one at
//     a time.
//   - Misusing the API (nil functions, nonsense cases) panics with the
//     package sentinels; failures around config files and plot output
//     are returned as errors, since files are not under the
//     programmer's control.
//
// ⚙️ Usage:
//
//	b := bench.New(genMatrix, solve, bench.LinearCases(100, 400, 100, 1000))
//	b.Run()
//	for _, size := range b.Sizes() {
//		fmt.Println(size, b.Runs()[size].Average)
//	}
package bench
