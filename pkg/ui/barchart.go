package ui

import (
	"strconv"

	"churnlens/pkg/charts"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	groupFill   = 0.8
	barHeadroom = 1.1
)

// BarChart draws a grouped count chart: one group per category, one colored
// bar per hue, the count printed above every bar.
type BarChart struct {
	widget.BaseWidget
	chart charts.CountChart
}

var _ fyne.Widget = (*BarChart)(nil)

func NewBarChart(c charts.CountChart) *BarChart {
	bc := &BarChart{chart: c}
	bc.ExtendBaseWidget(bc)
	return bc
}

func (bc *BarChart) Chart() charts.CountChart { return bc.chart }

func (bc *BarChart) CreateRenderer() fyne.WidgetRenderer {
	c := bc.chart
	r := &barChartRenderer{
		bc:   bc,
		bg:   canvas.NewRectangle(chartBackground),
		axis: newYAxis(newAxisScale(0, float64(c.MaxCount())*barHeadroom)),
	}

	for ci := range c.Categories {
		for hi, hue := range c.Hues {
			r.bars = append(r.bars, canvas.NewRectangle(charts.HueColor(hue)))
			v := canvas.NewText(strconv.Itoa(c.Counts[ci][hi]), textColor)
			v.TextSize = 11
			r.values = append(r.values, v)
		}
	}
	for _, cat := range c.Categories {
		obj, size := categoryLabel(cat, c.RotateLabels)
		r.labels = append(r.labels, obj)
		r.labelSizes = append(r.labelSizes, size)
	}

	r.objects = append(r.objects, r.bg)
	r.objects = append(r.objects, r.axis.objects()...)
	for _, b := range r.bars {
		r.objects = append(r.objects, b)
	}
	for _, v := range r.values {
		r.objects = append(r.objects, v)
	}
	r.objects = append(r.objects, r.labels...)
	return r
}

type barChartRenderer struct {
	bc         *BarChart
	bg         *canvas.Rectangle
	axis       *yAxis
	bars       []*canvas.Rectangle
	values     []*canvas.Text
	labels     []fyne.CanvasObject
	labelSizes []fyne.Size
	objects    []fyne.CanvasObject
}

func (r *barChartRenderer) Destroy() {}

func (r *barChartRenderer) labelBand() float32 {
	var h float32
	for _, s := range r.labelSizes {
		if s.Height > h {
			h = s.Height
		}
	}
	return h + 2*axisGap
}

func (r *barChartRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	c := r.bc.chart
	plotW := size.Width - plotLeft - plotRight
	plotH := size.Height - plotTop - r.labelBand()
	if plotW <= 0 || plotH <= 0 || len(c.Categories) == 0 || len(c.Hues) == 0 {
		return
	}
	r.axis.layout(plotLeft, plotTop, plotW, plotH)

	groupW := plotW / float32(len(c.Categories))
	barW := groupW * groupFill / float32(len(c.Hues))
	baseline := plotTop + plotH

	for ci := range c.Categories {
		groupX := plotLeft + float32(ci)*groupW + groupW*(1-groupFill)/2
		for hi := range c.Hues {
			idx := ci*len(c.Hues) + hi
			top := r.axis.y(float64(c.Counts[ci][hi]), plotTop, plotH)
			x := groupX + float32(hi)*barW

			bar := r.bars[idx]
			bar.Move(fyne.NewPos(x, top))
			bar.Resize(fyne.NewSize(barW, baseline-top))

			v := r.values[idx]
			vs := v.MinSize()
			v.Resize(vs)
			v.Move(fyne.NewPos(x+(barW-vs.Width)/2, top-vs.Height-3))
		}

		center := plotLeft + float32(ci)*groupW + groupW/2
		ls := r.labelSizes[ci]
		label := r.labels[ci]
		label.Resize(ls)
		if c.RotateLabels {
			// the label's upper right end sits under the group center
			label.Move(fyne.NewPos(center-ls.Width, baseline+axisGap))
		} else {
			label.Move(fyne.NewPos(center-ls.Width/2, baseline+axisGap))
		}
	}
}

func (r *barChartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240+r.labelBand())
}

func (r *barChartRenderer) Refresh() {
	r.Layout(r.bc.Size())
	canvas.Refresh(r.bc)
}

func (r *barChartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}
