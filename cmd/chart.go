package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/Harshitvit/codealpha-tasks"
	"github.com/google/subcommands"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "plot cost basis against market value per position" }
func (*chartCmd) Usage() string {
	return `pst chart [-o <file>]

  Renders a bar chart comparing each position's cost basis with its current
  market value, and writes it as an image file.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "portfolio.png", "Output image file (format from extension: png, svg, pdf)")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, p, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := tracker.Valuate(ctx, p, quoter())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(report.Positions) == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to chart, the portfolio holds no stocks.")
		return subcommands.ExitFailure
	}

	chart, err := positionsChart(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := chart.Save(8*vg.Inch, 4*vg.Inch, c.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote chart of %d positions to %s\n", len(report.Positions), c.output)
	return subcommands.ExitSuccess
}

// positionsChart builds a grouped bar chart with one cost bar and one value
// bar per position.
func positionsChart(report *tracker.Report) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Cost Basis vs Market Value"
	p.Y.Label.Text = "USD"

	symbols := make([]string, len(report.Positions))
	costs := make(plotter.Values, len(report.Positions))
	values := make(plotter.Values, len(report.Positions))
	for i, pos := range report.Positions {
		symbols[i] = pos.Symbol
		costs[i] = pos.CostBasis.AsFloat()
		values[i] = pos.Value.AsFloat()
	}

	w := vg.Points(20)
	costBars, err := plotter.NewBarChart(costs, w)
	if err != nil {
		return nil, err
	}
	costBars.Offset = -w / 2
	costBars.Color = plotutil.Color(0)

	valueBars, err := plotter.NewBarChart(values, w)
	if err != nil {
		return nil, err
	}
	valueBars.Offset = w / 2
	valueBars.Color = plotutil.Color(1)

	p.Add(costBars, valueBars)
	p.Legend.Add("Cost Basis", costBars)
	p.Legend.Add("Market Value", valueBars)
	p.Legend.Top = true
	p.NominalX(symbols...)
	return p, nil
}
