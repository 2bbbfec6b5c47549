package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/linalg/bench"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/rref"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vecspace"
	"github.com/katalvlaran/linalg/vector"
)

func main() {
	app := &cli.App{
		Name:     "linalg",
		HelpName: "linalg",
		Usage:    "row reduction, linear solving and vector-space demos",
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "solve an augmented linear system with Gauss-Jordan",
				UsageText: "linalg solve --matrix \"1,1,5;1,-1,1\" [--threshold 1e-10]",
				Action:    solveAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "matrix",
						Usage:    "augmented matrix, rows split by ';', entries by ','",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Value: 0,
						Usage: "round |x| below this to zero while reducing",
					},
				},
			},
			{
				Name:      "rref",
				Usage:     "reduce a matrix to reduced row echelon form",
				UsageText: "linalg rref --matrix \"2,4,6;1,3,5\" [--verbose] [--parallel 4]",
				Action:    rrefAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "matrix",
						Usage:    "matrix, rows split by ';', entries by ','",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Value: 0,
						Usage: "round |x| below this to zero while reducing",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "print each pivot step",
					},
					&cli.IntFlag{
						Name:  "parallel",
						Value: 0,
						Usage: "eliminate rows on this many goroutines (0 = serial)",
					},
				},
			},
			{
				Name:      "indep",
				Usage:     "test a set of vectors for linear independence",
				UsageText: "linalg indep --vectors \"1,2,3;1,3,5;3,-1,3\"",
				Action:    indepAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "vectors",
						Usage:    "vectors, split by ';', entries by ','",
						Required: true,
					},
				},
			},
			{
				Name:      "bench",
				Usage:     "benchmark Gauss-Jordan over growing system sizes",
				UsageText: "linalg bench [--config suite.yaml | --sizes 16,32,64 --iters 10] [--plot out.png]",
				Action:    benchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML suite file; overrides --sizes/--iters",
					},
					&cli.StringFlag{
						Name:  "sizes",
						Value: "16,32,64",
						Usage: "system sizes, split by ','",
					},
					&cli.IntFlag{
						Name:  "iters",
						Value: 10,
						Usage: "iterations per size",
					},
					&cli.StringFlag{
						Name:  "plot",
						Usage: "write a size vs. average chart to this image file",
					},
					&cli.StringFlag{
						Name:  "title",
						Value: "Gauss-Jordan scaling",
						Usage: "plot title",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func solveAction(c *cli.Context) error {
	m, err := parseMatrix(c.String("matrix"))
	if err != nil {
		return err
	}

	var opts []rref.Option
	if th := c.Float64("threshold"); th > 0 {
		opts = append(opts, rref.WithZeroThreshold(th))
	}

	if err := rref.GaussJordan(m, opts...); err != nil {
		fmt.Println(err)

		return nil
	}

	for i, x := range m.Col(m.Cols() - 1) {
		fmt.Printf("x%d = %v\n", i, x)
	}

	return nil
}

func rrefAction(c *cli.Context) error {
	m, err := parseMatrix(c.String("matrix"))
	if err != nil {
		return err
	}

	var opts []rref.Option
	if th := c.Float64("threshold"); th > 0 {
		opts = append(opts, rref.WithZeroThreshold(th))
	}
	if c.Bool("verbose") {
		opts = append(opts, rref.WithVerbose())
	}
	if n := c.Int("parallel"); n > 0 {
		opts = append(opts, rref.WithParallelEliminate(n))
	}

	reduceErr := rref.Reduce(m, opts...)
	fmt.Print(m)
	if reduceErr != nil {
		fmt.Println(reduceErr)
	}

	return nil
}

func indepAction(c *cli.Context) error {
	vs, err := parseVectors(c.String("vectors"))
	if err != nil {
		return err
	}

	ok, err := vecspace.LinearlyIndependent(vs)
	if err != nil {
		fmt.Println(err)

		return nil
	}
	fmt.Printf("independent: %v\n", ok)

	return nil
}

func benchAction(c *cli.Context) error {
	var (
		cases     []bench.Case
		plotPath  = c.String("plot")
		plotTitle = c.String("title")
	)

	if path := c.String("config"); path != "" {
		cfg, err := bench.LoadConfig(path)
		if err != nil {
			return err
		}
		cases = cfg.Cases
		if plotPath == "" {
			plotPath = cfg.Plot.Path
		}
		if cfg.Plot.Title != "" {
			plotTitle = cfg.Plot.Title
		}
	} else {
		sizes, err := parseSizes(c.String("sizes"))
		if err != nil {
			return err
		}
		iters := c.Int("iters")
		if iters < 1 {
			return fmt.Errorf("--iters must be positive, got %d", iters)
		}
		for _, size := range sizes {
			cases = append(cases, bench.Case{Size: size, Iterations: iters})
		}
	}

	b := bench.New(genSystem, solveSystem, cases)
	b.Run()

	fmt.Printf("%10s %12s %16s\n", "size", "iterations", "avg per call")
	for _, size := range b.Sizes() {
		info := b.Runs()[size]
		fmt.Printf("%10d %12d %16s\n", info.InputSize, info.Iterations, info.Average)
	}

	if plotPath != "" {
		if err := b.SavePlot(plotPath, plotTitle); err != nil {
			return err
		}
		fmt.Println("plot written to", plotPath)
	}

	return nil
}

// genSystem produces a random n-equation augmented grid. Seeding by
// size keeps repeated runs comparable.
func genSystem(n int) [][]scalar.Float {
	rng := rand.New(rand.NewSource(int64(n)))
	grid := make([][]scalar.Float, n)
	for r := range grid {
		row := make([]scalar.Float, n+1)
		for col := range row {
			row[col] = scalar.Float(rng.Float64()*200 - 100)
		}
		grid[r] = row
	}

	return grid
}

// solveSystem is the benchmark subject. Gauss-Jordan reduces in place,
// so each call copies the grid into a fresh matrix; the copy is part
// of the measured work, the pristine grid is what the harness reuses.
func solveSystem(grid [][]scalar.Float) error {
	return rref.GaussJordan(matrix.FromRows(grid))
}

// parseGrid turns "a,b,c;d,e,f" into float rows. Rows may differ in
// length here; rectangularity is the caller's business.
func parseGrid(s string) ([][]scalar.Float, error) {
	var grid [][]scalar.Float
	for r, rowSpec := range strings.Split(s, ";") {
		rowSpec = strings.TrimSpace(rowSpec)
		if rowSpec == "" {
			return nil, fmt.Errorf("row %d is empty", r)
		}

		var row []scalar.Float
		for _, cell := range strings.Split(rowSpec, ",") {
			x, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad entry %q", r, strings.TrimSpace(cell))
			}
			row = append(row, scalar.Float(x))
		}
		grid = append(grid, row)
	}

	return grid, nil
}

func parseMatrix(s string) (*matrix.Dense[scalar.Float], error) {
	grid, err := parseGrid(s)
	if err != nil {
		return nil, err
	}
	for r := 1; r < len(grid); r++ {
		if len(grid[r]) != len(grid[0]) {
			return nil, fmt.Errorf("row %d has %d entries, row 0 has %d: matrix rows must match",
				r, len(grid[r]), len(grid[0]))
		}
	}

	return matrix.FromRows(grid), nil
}

func parseVectors(s string) ([]*vector.Vector[scalar.Float], error) {
	grid, err := parseGrid(s)
	if err != nil {
		return nil, err
	}

	vs := make([]*vector.Vector[scalar.Float], len(grid))
	for i, row := range grid {
		vs[i] = vector.From(row)
	}

	return vs, nil
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad size %q: sizes must be positive integers", strings.TrimSpace(part))
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}
