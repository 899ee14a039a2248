package ui

import (
	"image/color"

	"churnlens/pkg/charts"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	boxFill       = 0.6
	capFill       = 0.3
	outlierRadius = 3
	// annotationLift is how far above the mean, in data units, the mean label
	// is anchored.
	annotationLift = 2
	boxPadding     = 0.08
)

var medianColor = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}

// BoxPlot draws one box per group with whiskers, outliers and a bold mean
// annotation above each box.
type BoxPlot struct {
	widget.BaseWidget
	chart charts.BoxChart
}

var _ fyne.Widget = (*BoxPlot)(nil)

func NewBoxPlot(c charts.BoxChart) *BoxPlot {
	bp := &BoxPlot{chart: c}
	bp.ExtendBaseWidget(bp)
	return bp
}

func (bp *BoxPlot) Chart() charts.BoxChart { return bp.chart }

type boxShapes struct {
	box        *canvas.Rectangle
	median     *canvas.Line
	lowWhisker *canvas.Line
	highWhisk  *canvas.Line
	lowCap     *canvas.Line
	highCap    *canvas.Line
	outliers   []*canvas.Circle
	annotation *canvas.Text
	label      *canvas.Text
}

func (bp *BoxPlot) CreateRenderer() fyne.WidgetRenderer {
	lo, hi := bp.chart.Range()
	pad := (hi - lo) * boxPadding
	r := &boxPlotRenderer{
		bp:   bp,
		bg:   canvas.NewRectangle(chartBackground),
		axis: newYAxis(newAxisScale(lo-pad, hi+annotationLift+pad)),
	}
	r.objects = append(r.objects, r.bg)
	r.objects = append(r.objects, r.axis.objects()...)

	for _, box := range bp.chart.Boxes {
		fill := charts.HueColor(box.Group)
		s := &boxShapes{
			box:        canvas.NewRectangle(fill),
			median:     canvas.NewLine(medianColor),
			lowWhisker: canvas.NewLine(medianColor),
			highWhisk:  canvas.NewLine(medianColor),
			lowCap:     canvas.NewLine(medianColor),
			highCap:    canvas.NewLine(medianColor),
			annotation: canvas.NewText(box.Annotation, textColor),
			label:      canvas.NewText(box.Group, textColor),
		}
		s.box.StrokeColor = medianColor
		s.box.StrokeWidth = 1
		s.median.StrokeWidth = 2
		s.annotation.TextSize = 12
		s.annotation.TextStyle = fyne.TextStyle{Bold: true}
		s.label.TextSize = 12
		for range box.Outliers {
			c := canvas.NewCircle(color.Transparent)
			c.StrokeColor = medianColor
			c.StrokeWidth = 1
			s.outliers = append(s.outliers, c)
		}

		r.shapes = append(r.shapes, s)
		r.objects = append(r.objects, s.lowWhisker, s.highWhisk, s.lowCap, s.highCap, s.box, s.median)
		for _, o := range s.outliers {
			r.objects = append(r.objects, o)
		}
		r.objects = append(r.objects, s.annotation, s.label)
	}
	return r
}

type boxPlotRenderer struct {
	bp      *BoxPlot
	bg      *canvas.Rectangle
	axis    *yAxis
	shapes  []*boxShapes
	objects []fyne.CanvasObject
}

func (r *boxPlotRenderer) Destroy() {}

func (r *boxPlotRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	boxes := r.bp.chart.Boxes
	labelH := float32(0)
	for _, s := range r.shapes {
		if h := s.label.MinSize().Height; h > labelH {
			labelH = h
		}
	}
	plotW := size.Width - plotLeft - plotRight
	plotH := size.Height - plotTop - labelH - 2*axisGap
	if plotW <= 0 || plotH <= 0 || len(boxes) == 0 {
		return
	}
	r.axis.layout(plotLeft, plotTop, plotW, plotH)
	y := func(v float64) float32 { return r.axis.y(v, plotTop, plotH) }

	slotW := plotW / float32(len(boxes))
	for i, box := range boxes {
		s := r.shapes[i]
		center := plotLeft + float32(i)*slotW + slotW/2

		ls := s.label.MinSize()
		s.label.Resize(ls)
		s.label.Move(fyne.NewPos(center-ls.Width/2, plotTop+plotH+axisGap))

		if box.N == 0 {
			continue
		}

		boxW := slotW * boxFill
		capW := slotW * capFill
		left := center - boxW/2

		s.box.Move(fyne.NewPos(left, y(box.Q3)))
		s.box.Resize(fyne.NewSize(boxW, y(box.Q1)-y(box.Q3)))

		s.median.Position1 = fyne.NewPos(left, y(box.Median))
		s.median.Position2 = fyne.NewPos(left+boxW, y(box.Median))

		s.lowWhisker.Position1 = fyne.NewPos(center, y(box.Q1))
		s.lowWhisker.Position2 = fyne.NewPos(center, y(box.WhiskerLow))
		s.highWhisk.Position1 = fyne.NewPos(center, y(box.Q3))
		s.highWhisk.Position2 = fyne.NewPos(center, y(box.WhiskerHigh))
		s.lowCap.Position1 = fyne.NewPos(center-capW/2, y(box.WhiskerLow))
		s.lowCap.Position2 = fyne.NewPos(center+capW/2, y(box.WhiskerLow))
		s.highCap.Position1 = fyne.NewPos(center-capW/2, y(box.WhiskerHigh))
		s.highCap.Position2 = fyne.NewPos(center+capW/2, y(box.WhiskerHigh))

		for j, v := range box.Outliers {
			o := s.outliers[j]
			o.Resize(fyne.NewSize(2*outlierRadius, 2*outlierRadius))
			o.Move(fyne.NewPos(center-outlierRadius, y(v)-outlierRadius))
		}

		as := s.annotation.MinSize()
		s.annotation.Resize(as)
		s.annotation.Move(fyne.NewPos(center-as.Width/2, y(box.Mean+annotationLift)-as.Height))
	}
}

func (r *boxPlotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 280)
}

func (r *boxPlotRenderer) Refresh() {
	r.Layout(r.bp.Size())
	canvas.Refresh(r.bp)
}

func (r *boxPlotRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}
