package ui

import (
	"churnlens/pkg/charts"
	"churnlens/pkg/dataset"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
)

// ChartRenderers opens the three churn charts. Every call draws a fresh
// dataset and opens a new window; nothing is shared between calls.
type ChartRenderers struct {
	app       fyne.App
	gen       *dataset.Generator
	decorator WindowDecorator
	title     string
	iconPath  string
	log       zerolog.Logger
}

func NewChartRenderers(a fyne.App, gen *dataset.Generator, decorator WindowDecorator, title, iconPath string, log zerolog.Logger) *ChartRenderers {
	if decorator == nil {
		decorator = noopDecorator{}
	}
	return &ChartRenderers{
		app:       a,
		gen:       gen,
		decorator: decorator,
		title:     title,
		iconPath:  iconPath,
		log:       log,
	}
}

// ContractChurn shows churn counts per contract type.
func (r *ChartRenderers) ContractChurn() *ChartWindow {
	c := charts.ContractChurn(r.gen.Generate())
	return r.open(NewBarChart(c), chartLayout{
		title:       c.Title,
		xLabel:      c.XLabel,
		yLabel:      c.YLabel,
		legendTitle: c.LegendTitle,
		hues:        c.Hues,
	})
}

// PaymentChurn shows churn counts per payment method with slanted labels.
func (r *ChartRenderers) PaymentChurn() *ChartWindow {
	c := charts.PaymentChurn(r.gen.Generate())
	return r.open(NewBarChart(c), chartLayout{
		title:       c.Title,
		xLabel:      c.XLabel,
		yLabel:      c.YLabel,
		legendTitle: c.LegendTitle,
		hues:        c.Hues,
	})
}

// MonthlySpend shows the monthly charge distribution per churn status.
func (r *ChartRenderers) MonthlySpend() *ChartWindow {
	c := charts.MonthlySpend(r.gen.Generate())
	return r.open(NewBoxPlot(c), chartLayout{
		title:  c.Title,
		xLabel: c.XLabel,
		yLabel: c.YLabel,
	})
}

func (r *ChartRenderers) open(chart fyne.CanvasObject, cl chartLayout) *ChartWindow {
	cw := newChartWindow(r.app, r.title, chart, cl)
	r.decorator.Maximize(cw.Window)
	if err := r.decorator.Decorate(cw.Window, r.title, r.iconPath); err != nil {
		r.log.Warn().Err(err).Str("chart", cl.title).Msg("chart window decoration failed")
	}
	cw.Show()
	return cw
}
