package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/ilstsp/tsp"
)

// ConvergenceChart builds a line chart with the best distance after every
// round and the local optimum each round produced.
func ConvergenceChart(res *tsp.Result) *charts.Line {
	rounds := make([]int, len(res.Trace))
	best := make([]opts.LineData, len(res.Trace))
	for i, d := range res.Trace {
		rounds[i] = i + 1
		best[i] = opts.LineData{Value: d}
	}
	local := make([]opts.LineData, len(res.History))
	for i, s := range res.History {
		local[i] = opts.LineData{Value: s.Distance}
	}

	rec := res.Record
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "ILS convergence", Width: "1100px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s convergence", rec.Label),
			Subtitle: fmt.Sprintf("best=%s at iteration %d, idle limit %d", tsp.FormatDistance(rec.BestDistance), rec.BestIteration, rec.IdleLimit),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "distance", Min: "dataMin"}),
	)
	line.SetXAxis(rounds).
		AddSeries("best", best).
		AddSeries("local optimum", local)

	return line
}

// WriteConvergenceHTML renders the chart page into w.
func WriteConvergenceHTML(w io.Writer, res *tsp.Result) error {
	if err := ConvergenceChart(res).Render(w); err != nil {
		return fmt.Errorf("rendering convergence chart: %w", err)
	}

	return nil
}
