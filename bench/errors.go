package bench

import "errors"

var (
	// ErrNilGenerate is raised (as a panic) by New when the input
	// generator is nil.
	ErrNilGenerate = errors.New("bench: generate function must not be nil")

	// ErrNilSubject is raised (as a panic) by New when the subject
	// function is nil.
	ErrNilSubject = errors.New("bench: subject function must not be nil")

	// ErrNoCases is raised (as a panic) by New on an empty case list,
	// and returned by LoadConfig when the file declares none.
	ErrNoCases = errors.New("bench: at least one case is required")

	// ErrBadCase is raised (as a panic) by New, and returned by
	// LoadConfig, for cases with a non-positive size or iteration count.
	ErrBadCase = errors.New("bench: case sizes and iteration counts must be positive")

	// ErrBadRange is raised (as a panic) by the case builders on
	// parameters that cannot produce a single valid case.
	ErrBadRange = errors.New("bench: range parameters must describe at least one positive-size case")

	// ErrNoRuns is returned by SavePlot when Run has not happened yet.
	ErrNoRuns = errors.New("bench: no runs to plot")
)
