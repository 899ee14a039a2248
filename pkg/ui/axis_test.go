package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNiceNum(t *testing.T) {
	cases := []struct {
		x     float64
		round bool
		want  float64
	}{
		{x: 550, want: 1000},
		{x: 180, want: 200},
		{x: 1, want: 1},
		{x: 42, round: true, want: 50},
		{x: 200, round: true, want: 200},
		{x: 14, round: true, want: 10},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, niceNum(tc.x, tc.round), 1e-9, "niceNum(%v, %v)", tc.x, tc.round)
	}
}

func TestAxisScale_CoversRange(t *testing.T) {
	s := newAxisScale(0, 550)
	assert.Equal(t, 0.0, s.min)
	assert.Equal(t, 600.0, s.max)
	assert.Equal(t, 200.0, s.step)
	assert.Equal(t, []float64{0, 200, 400, 600}, s.ticks())
	assert.Equal(t, "400", s.label(400))
	assert.InDelta(t, 0, s.frac(s.min), 1e-9)
	assert.InDelta(t, 1, s.frac(s.max), 1e-9)
}

func TestAxisScale_DegenerateRange(t *testing.T) {
	s := newAxisScale(5, 5)
	assert.LessOrEqual(t, s.min, 5.0)
	assert.GreaterOrEqual(t, s.max, 6.0-1e-9)
	assert.Less(t, s.step, 1.0)
	assert.Equal(t, "5.0", s.label(5))
}

func TestRotatedLabel_FitsDiagonal(t *testing.T) {
	img := rotatedLabel("Transferência Bancária", color.Black)
	b := img.Bounds()
	require.Greater(t, b.Dx(), 1)
	// at 45 degrees both extents come out the same up to rounding
	assert.InDelta(t, b.Dx(), b.Dy(), 1)

	painted := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				painted++
			}
		}
	}
	assert.Positive(t, painted)
}

func TestRotatedLabel_Empty(t *testing.T) {
	img := rotatedLabel("", color.Black)
	assert.Equal(t, 1, img.Bounds().Dx())
}

func TestCategoryLabel(t *testing.T) {
	obj, size := categoryLabel("Mensal", false)
	text, ok := obj.(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "Mensal", text.Text)
	assert.Positive(t, size.Width)

	obj, size = categoryLabel("Mensal", true)
	_, ok = obj.(*canvas.Image)
	require.True(t, ok)
	assert.InDelta(t, size.Width, size.Height, 1)
}
