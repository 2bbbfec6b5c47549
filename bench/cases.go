package bench

// LinearCases builds cases with sizes start, start+step, ... up to and
// including stop, each running the given iteration count. Panics with
// ErrBadRange when start or step or iterations is not positive, or
// when stop < start.
func LinearCases(start, stop, step, iterations int) []Case {
	if start < 1 || step < 1 || iterations < 1 || stop < start {
		panic(ErrBadRange)
	}

	var cases []Case
	for size := start; size <= stop; size += step {
		cases = append(cases, Case{Size: size, Iterations: iterations})
	}

	return cases
}

// GeometricCases builds count cases with sizes start, start·factor,
// start·factor², ..., each running the given iteration count. Panics
// with ErrBadRange when start, count or iterations is not positive or
// factor < 2.
func GeometricCases(start, factor, count, iterations int) []Case {
	if start < 1 || factor < 2 || count < 1 || iterations < 1 {
		panic(ErrBadRange)
	}

	cases := make([]Case, 0, count)
	size := start
	for i := 0; i < count; i++ {
		cases = append(cases, Case{Size: size, Iterations: iterations})
		size *= factor
	}

	return cases
}
