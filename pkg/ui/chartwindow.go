package ui

import (
	"sync"

	"churnlens/pkg/charts"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// ChartWindow is a standalone window showing one chart with its title, axis
// titles and an optional legend.
type ChartWindow struct {
	Window fyne.Window
	Chart  fyne.CanvasObject

	closeOnce sync.Once
	closed    chan struct{}
}

type chartLayout struct {
	title       string
	xLabel      string
	yLabel      string
	legendTitle string
	hues        []string
}

func newChartWindow(a fyne.App, windowTitle string, chart fyne.CanvasObject, cl chartLayout) *ChartWindow {
	w := a.NewWindow(windowTitle)

	title := canvas.NewText(cl.title, textColor)
	title.TextSize = 16
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	xLabel := canvas.NewText(cl.xLabel, textColor)
	xLabel.Alignment = fyne.TextAlignCenter

	// the y title stacks one rune per line since canvas text cannot rotate
	yLabel := widget.NewLabel(verticalText(cl.yLabel))
	yLabel.Alignment = fyne.TextAlignCenter

	var top fyne.CanvasObject = title
	if len(cl.hues) > 0 {
		top = container.NewVBox(title, container.NewHBox(layout.NewSpacer(), newLegend(cl.legendTitle, cl.hues)))
	}

	bg := canvas.NewRectangle(chartBackground)
	content := container.NewStack(bg, container.NewBorder(top, xLabel, container.NewCenter(yLabel), nil, chart))
	w.SetContent(content)

	cw := &ChartWindow{
		Window: w,
		Chart:  chart,
		closed: make(chan struct{}),
	}
	w.SetOnClosed(cw.markClosed)
	return cw
}

func (cw *ChartWindow) markClosed() {
	cw.closeOnce.Do(func() { close(cw.closed) })
}

// Show displays the window. The returned channel is closed when the user
// closes it.
func (cw *ChartWindow) Show() <-chan struct{} {
	cw.Window.Show()
	return cw.closed
}

// Closed is closed once the window has been closed.
func (cw *ChartWindow) Closed() <-chan struct{} { return cw.closed }

func newLegend(title string, hues []string) fyne.CanvasObject {
	heading := canvas.NewText(title, textColor)
	heading.TextStyle = fyne.TextStyle{Bold: true}
	items := []fyne.CanvasObject{heading}
	for _, hue := range hues {
		swatch := canvas.NewRectangle(charts.HueColor(hue))
		swatch.SetMinSize(fyne.NewSize(14, 14))
		items = append(items, container.NewHBox(container.NewCenter(swatch), canvas.NewText(hue, textColor)))
	}
	return container.NewVBox(items...)
}

func verticalText(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes)*2)
	for i, r := range runes {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, r)
	}
	return string(out)
}
