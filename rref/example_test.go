package rref_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rref"
	"github.com/katalvlaran/linalg/scalar"
)

// ExampleGaussJordan solves
//
//	x + y = 5
//	x − y = 1
//
// in place and reads the solution off the last column. The elimination
// factors are powers of two, so the printed values are exact.
func ExampleGaussJordan() {
	m := matrix.FromRows([][]scalar.Float{
		{1, 1, 5},
		{1, -1, 1},
	})

	if err := rref.GaussJordan(m); err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, x := range m.Col(m.Cols() - 1) {
		fmt.Println(x)
	}
	// Output:
	// 3
	// 2
}

// ExampleReduce_freeColumns reduces a rank-deficient matrix; the
// second row is twice the first, so pivot position 1 cannot be filled.
func ExampleReduce_freeColumns() {
	m := matrix.FromRows([][]scalar.Float{
		{1, 2, 3},
		{2, 4, 6},
	})

	err := rref.Reduce(m)
	fmt.Println(err)
	// Output:
	// linalg: free columns in rref: no pivot available at positions [1]
}

// ExampleGaussJordan_classification shows how callers branch on the
// solver's domain codes without string matching.
func ExampleGaussJordan_classification() {
	m := matrix.FromRows([][]scalar.Float{
		{11, 22, 17, 100, 100},
		{13, 22, 99, 123, 145},
		{11, 22, 17, 100, 100},
		{2, 4, 63, 98, 1413},
	})

	err := rref.GaussJordan(m)
	fmt.Println(err)
	// Output:
	// linalg: infinite solutions: the system of equations has infinitely many solutions
}
