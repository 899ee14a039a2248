package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"churnlens/assets/icons"
	"churnlens/pkg/charts"
	"churnlens/pkg/dataset"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorate(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("before")
	defer w.Close()

	require.NoError(t, decorate(w, "Gráfico", ""))
	assert.Equal(t, "Gráfico", w.Title())

	err := decorate(w, "Outro", filepath.Join(t.TempDir(), "missing.ico"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.ico")
	assert.Equal(t, "Outro", w.Title(), "title is applied even when the icon fails")

	iconPath := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(iconPath, icons.AppIconPNG(), 0o644))
	require.NoError(t, decorate(w, "Com ícone", iconPath))
	assert.Equal(t, "Com ícone", w.Title())
}

func TestNewWindowDecorator(t *testing.T) {
	assert.IsType(t, noopDecorator{}, NewWindowDecorator(nil, fyne.NewSize(10, 10)))

	a := test.NewTempApp(t)
	d := NewWindowDecorator(a, fyne.NewSize(640, 480))
	require.NotNil(t, d)

	w := a.NewWindow("x")
	defer w.Close()
	d.Maximize(w)
	assert.NoError(t, d.Decorate(w, "y", ""))
	assert.Equal(t, "y", w.Title())
}

// recordingDecorator fails Decorate to prove the chart still opens.
type recordingDecorator struct {
	maximized int
	decorated []string
}

func (d *recordingDecorator) Maximize(fyne.Window) { d.maximized++ }

func (d *recordingDecorator) Decorate(w fyne.Window, title, _ string) error {
	d.decorated = append(d.decorated, title)
	return os.ErrNotExist
}

func waitClosed(t *testing.T, cw *ChartWindow) {
	t.Helper()
	select {
	case <-cw.Closed():
	case <-time.After(2 * time.Second):
		t.Fatal("chart window never reported closed")
	}
}

func TestChartRenderers_OpenEachChart(t *testing.T) {
	a := test.NewTempApp(t)
	r := NewChartRenderers(a, dataset.NewGenerator(), nil, "Gráfico - Cancelamento de Clientes", "", zerolog.Nop())

	contract := r.ContractChurn()
	bc, ok := contract.Chart.(*BarChart)
	require.True(t, ok)
	assert.Equal(t, "Tipo de Contratos", bc.Chart().XLabel)
	assert.False(t, bc.Chart().RotateLabels)
	assert.Equal(t, "Gráfico - Cancelamento de Clientes", contract.Window.Title())

	payment := r.PaymentChurn()
	pc, ok := payment.Chart.(*BarChart)
	require.True(t, ok)
	assert.True(t, pc.Chart().RotateLabels)

	spend := r.MonthlySpend()
	bp, ok := spend.Chart.(*BoxPlot)
	require.True(t, ok)
	require.Len(t, bp.Chart().Boxes, 2)

	for _, cw := range []*ChartWindow{contract, payment, spend} {
		select {
		case <-cw.Closed():
			t.Fatal("window reported closed while open")
		default:
		}
		cw.Window.Close()
		waitClosed(t, cw)
	}
}

func TestChartRenderers_DecorationFailureIsNotFatal(t *testing.T) {
	a := test.NewTempApp(t)
	d := &recordingDecorator{}
	r := NewChartRenderers(a, dataset.NewGenerator(), d, "Gráfico", "logo.ico", zerolog.Nop())

	cw := r.MonthlySpend()
	require.NotNil(t, cw)
	assert.Equal(t, 1, d.maximized)
	assert.Equal(t, []string{"Gráfico"}, d.decorated)

	cw.Window.Close()
	waitClosed(t, cw)
}

func TestChartWindow_ShowReturnsClosedChannel(t *testing.T) {
	a := test.NewTempApp(t)
	cw := newChartWindow(a, "t", NewBarChart(sampleChart()), chartLayout{title: "c", hues: []string{"Ativo"}})

	done := cw.Show()
	cw.Window.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Show channel never closed")
	}
	// closing twice must not panic
	cw.markClosed()
}

func TestVerticalText(t *testing.T) {
	assert.Equal(t, "Q\nt\nd", verticalText("Qtd"))
	assert.Equal(t, "", verticalText(""))
	assert.Equal(t, "é\nx", verticalText("éx"))
}

func sampleChart() charts.CountChart {
	return charts.CountChart{
		Title:      "c",
		Categories: []string{"Mensal", "Anual"},
		Hues:       []string{"Ativo", "Cancelado"},
		Counts:     [][]int{{10, 5}, {7, 1}},
	}
}
