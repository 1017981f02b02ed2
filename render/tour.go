// Package render draws solver output for humans: the best tour as a PNG and
// the convergence of a run as an interactive HTML chart.
//
// The package only reads tsp values; it never calls the solver.
package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/ilstsp/tsp"
)

// MaxLabeledCities is the largest instance whose nodes get index labels.
const MaxLabeledCities = 60

// Default figure size.
var (
	FigureWidth  = 8 * vg.Inch
	FigureHeight = 8 * vg.Inch
)

var (
	edgeColor  = color.RGBA{R: 0, G: 128, B: 255, A: 255}
	nodeColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	startColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)

// TourPlot builds a plot of cities with the closed tour drawn through them.
// The first city of the tour is highlighted so the direction can be read from
// the order of the edges.
func TourPlot(cities []tsp.City, tour tsp.Tour, title string) (*plot.Plot, error) {
	if err := tsp.ValidateTour(tour, len(cities)); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if len(tour) == 0 {
		return p, nil
	}

	path := make(plotter.XYs, len(tour)+1)
	for i, c := range tour {
		path[i].X = cities[c].X
		path[i].Y = cities[c].Y
	}
	path[len(tour)] = path[0]

	line, err := plotter.NewLine(path)
	if err != nil {
		return nil, fmt.Errorf("creating tour line: %w", err)
	}
	line.Color = edgeColor
	line.Width = vg.Points(1.5)

	nodes, err := plotter.NewScatter(path[:len(tour)])
	if err != nil {
		return nil, fmt.Errorf("creating city scatter: %w", err)
	}
	nodes.GlyphStyle.Color = nodeColor
	nodes.GlyphStyle.Shape = draw.CircleGlyph{}
	nodes.GlyphStyle.Radius = vg.Points(2.5)

	start, err := plotter.NewScatter(path[:1])
	if err != nil {
		return nil, fmt.Errorf("creating start marker: %w", err)
	}
	start.GlyphStyle.Color = startColor
	start.GlyphStyle.Shape = draw.CircleGlyph{}
	start.GlyphStyle.Radius = vg.Points(4)

	p.Add(line, nodes, start)
	p.Legend.Add("tour", line)
	p.Legend.Add("start", start)

	if len(tour) <= MaxLabeledCities {
		labels, err := plotter.NewLabels(cityLabels(cities))
		if err != nil {
			return nil, fmt.Errorf("creating city labels: %w", err)
		}
		labels.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}
		p.Add(labels)
	}

	return p, nil
}

func cityLabels(cities []tsp.City) plotter.XYLabels {
	out := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(cities)),
		Labels: make([]string, len(cities)),
	}
	for i, c := range cities {
		out.XYs[i] = plotter.XY{X: c.X, Y: c.Y}
		out.Labels[i] = strconv.Itoa(c.Index)
	}

	return out
}

// WriteTourPNG renders the tour plot as PNG into w.
func WriteTourPNG(w io.Writer, cities []tsp.City, tour tsp.Tour, title string) error {
	p, err := TourPlot(cities, tour, title)
	if err != nil {
		return err
	}

	canvas := vgimg.New(FigureWidth, FigureHeight)
	dc := draw.New(canvas)
	p.Draw(dc)
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("writing tour PNG: %w", err)
	}

	return nil
}

// SaveTour writes the tour plot to path; the format follows the extension
// (.png, .svg, .pdf, ...).
func SaveTour(path string, cities []tsp.City, tour tsp.Tour, title string) error {
	p, err := TourPlot(cities, tour, title)
	if err != nil {
		return err
	}
	if err := p.Save(FigureWidth, FigureHeight, path); err != nil {
		return fmt.Errorf("saving tour figure: %w", err)
	}

	return nil
}

// Title is the default figure caption for a run.
func Title(rec tsp.RunRecord) string {
	return fmt.Sprintf("%s: %s (iteration %d of %d)",
		rec.Label, tsp.FormatDistance(rec.BestDistance), rec.BestIteration, rec.Iterations)
}
