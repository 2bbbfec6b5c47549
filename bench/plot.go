package bench

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePlot renders the recorded runs as a size vs. average-milliseconds
// line-and-points chart. The image format follows the file extension
// (.png, .svg, .pdf, ...). Returns ErrNoRuns before Run has populated
// anything.
func (b *Benchmark[I, O]) SavePlot(path, title string) error {
	if len(b.runs) == 0 {
		return ErrNoRuns
	}

	pts := make(plotter.XYs, 0, len(b.runs))
	for _, size := range b.Sizes() {
		info := b.runs[size]
		pts = append(pts, plotter.XY{
			X: float64(size),
			Y: float64(info.Average) / float64(time.Millisecond),
		})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "input size"
	p.Y.Label.Text = "average per call, ms"

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("bench: build plot: %w", err)
	}
	p.Add(plotter.NewGrid(), line, points)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("bench: save plot: %w", err)
	}

	return nil
}
