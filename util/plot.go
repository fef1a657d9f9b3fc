package util

import (
	"fmt"

	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/multiobjective/framework"
)

// PlotSelection creates a scatter plot of a survival-selection outcome for
// the given Problem: the true Pareto front, the individuals that survived
// and the candidates that were eliminated.
func PlotSelection(survivors, eliminated []framework.ObjectiveSpacePoint, problem framework.Problem, selectorName string) error {
	if len(survivors) == 0 {
		return fmt.Errorf("no survivors to plot for %s Benchmark", problem.Name())
	}

	if len(survivors[0]) != 2 {
		return fmt.Errorf("can only plot 2D for %s Benchmark", problem.Name())
	}

	// Create scatter chart
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Selection for %s Benchmark", selectorName, problem.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	trueParetoFront := problem.TrueParetoFront(100)
	trueX := make([]opts.ScatterData, len(trueParetoFront))
	for i, p := range trueParetoFront {
		trueX[i] = opts.ScatterData{
			Value:      p,
			Symbol:     "circle",
			SymbolSize: 10,
		}
	}

	survivedX := make([]opts.ScatterData, len(survivors))
	for i, p := range survivors {
		survivedX[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     "triangle",
			SymbolSize: 10,
		}
	}

	eliminatedX := make([]opts.ScatterData, len(eliminated))
	for i, p := range eliminated {
		eliminatedX[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     "diamond",
			SymbolSize: 6,
		}
	}

	// Add data series
	scatter.AddSeries("True Pareto Front", trueX).
		AddSeries("Survivors", survivedX).
		AddSeries("Eliminated", eliminatedX).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	// Create HTML file
	f, err := os.Create(fmt.Sprintf("%s_%s_selection.html", problem.Name(), selectorName))
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}
