package bench

import (
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
)

// Case is one benchmark case: call the subject Iterations times on
// inputs of Size and average. Tune the iteration count per case: tiny
// inputs need many iterations for a stable average, huge inputs would
// make the same count take forever.
type Case struct {
	Size       int `yaml:"size"`
	Iterations int `yaml:"iterations"`
}

// RunInfo is the outcome of one case: the average wall-clock duration
// of a single subject call at that input size.
type RunInfo struct {
	InputSize  int
	Iterations int
	Average    time.Duration
}

// Benchmark times a subject function across input sizes. Build one
// with New, populate the results with Run, then read them back through
// Runs and Sizes.
type Benchmark[I, O any] struct {
	generate func(int) I
	subject  func(I) O
	cases    []Case

	id   uuid.UUID
	runs map[int]RunInfo
}

// New builds a benchmark of subject over the given cases; generate is
// called with each case size to produce inputs. Panics with
// ErrNilGenerate, ErrNilSubject, ErrNoCases or ErrBadCase on misuse.
func New[I, O any](generate func(int) I, subject func(I) O, cases []Case) *Benchmark[I, O] {
	if generate == nil {
		panic(ErrNilGenerate)
	}
	if subject == nil {
		panic(ErrNilSubject)
	}
	if len(cases) == 0 {
		panic(ErrNoCases)
	}
	for _, c := range cases {
		if c.Size < 1 || c.Iterations < 1 {
			panic(ErrBadCase)
		}
	}

	own := make([]Case, len(cases))
	copy(own, cases)

	return &Benchmark[I, O]{
		generate: generate,
		subject:  subject,
		cases:    own,
		id:       uuid.New(),
		runs:     make(map[int]RunInfo, len(cases)),
	}
}

// Run executes every case and records the averages. Inputs are
// generated up front, two per case, fanned out on a goroutine pool;
// the timed loops then run serially so cases never compete for cores.
// Within a case the two inputs alternate between iterations, keeping a
// single warm input from flattering the subject. Cases sharing a size
// overwrite each other; the last one wins.
func (b *Benchmark[I, O]) Run() {
	type pair struct{ even, odd I }

	inputs := make([]pair, len(b.cases))
	p := pool.New().WithMaxGoroutines(runtime.NumCPU())
	for i, c := range b.cases {
		p.Go(func() {
			inputs[i] = pair{even: b.generate(c.Size), odd: b.generate(c.Size)}
		})
	}
	p.Wait()

	for i, c := range b.cases {
		in := inputs[i]

		start := time.Now()
		for n := 0; n < c.Iterations; n++ {
			if n%2 == 0 {
				b.subject(in.even)
			} else {
				b.subject(in.odd)
			}
		}
		elapsed := time.Since(start)

		b.runs[c.Size] = RunInfo{
			InputSize:  c.Size,
			Iterations: c.Iterations,
			Average:    elapsed / time.Duration(c.Iterations),
		}
	}
}

// Runs returns a copy of the results table, keyed by input size. Empty
// until Run has been called.
func (b *Benchmark[I, O]) Runs() map[int]RunInfo {
	out := make(map[int]RunInfo, len(b.runs))
	for size, info := range b.runs {
		out[size] = info
	}

	return out
}

// Sizes returns the recorded input sizes in ascending order.
func (b *Benchmark[I, O]) Sizes() []int {
	out := make([]int, 0, len(b.runs))
	for size := range b.runs {
		out = append(out, size)
	}
	sort.Ints(out)

	return out
}

// ID returns the identity of this benchmark instance, for callers
// that archive results from repeated suites.
func (b *Benchmark[I, O]) ID() uuid.UUID { return b.id }
