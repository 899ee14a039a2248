package charts

import (
	"image/color"

	"churnlens/pkg/dataset"
)

var (
	ActiveColor    = color.NRGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff}
	CancelledColor = color.NRGBA{R: 0xa5, G: 0x1c, B: 0x0b, A: 0xff}
	fallbackColor  = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

var palette = map[string]color.NRGBA{
	dataset.Active.Label():    ActiveColor,
	dataset.Cancelled.Label(): CancelledColor,
}

// HueColor returns the fixed color of a churn label, grey for anything else.
func HueColor(label string) color.NRGBA {
	if c, ok := palette[label]; ok {
		return c
	}
	return fallbackColor
}

// CountChart is a grouped bar count: one group per category, one bar per hue.
type CountChart struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string

	Categories []string
	Hues       []string
	// Counts is indexed [category][hue].
	Counts [][]int

	RotateLabels bool
}

func (c CountChart) Count(category, hue string) int {
	ci := indexOf(c.Categories, category)
	hi := indexOf(c.Hues, hue)
	if ci < 0 || hi < 0 {
		return 0
	}
	return c.Counts[ci][hi]
}

func (c CountChart) Total() int {
	total := 0
	for _, row := range c.Counts {
		for _, v := range row {
			total += v
		}
	}
	return total
}

func (c CountChart) MaxCount() int {
	m := 0
	for _, row := range c.Counts {
		for _, v := range row {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// BoxStats summarises one group of a box plot.
type BoxStats struct {
	Group string
	N     int

	Q1     float64
	Median float64
	Q3     float64
	// WhiskerLow and WhiskerHigh are the most extreme observations within
	// 1.5 IQR of the box.
	WhiskerLow  float64
	WhiskerHigh float64
	Outliers    []float64

	Mean       float64
	Annotation string
}

type BoxChart struct {
	Title  string
	XLabel string
	YLabel string
	Boxes  []BoxStats
}

// Range returns the smallest and largest value drawn by the chart.
func (b BoxChart) Range() (lo, hi float64) {
	first := true
	for _, box := range b.Boxes {
		if box.N == 0 {
			continue
		}
		vals := append([]float64{box.WhiskerLow, box.WhiskerHigh, box.Mean}, box.Outliers...)
		for _, v := range vals {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
