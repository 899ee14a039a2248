package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

const (
	plotLeft   float32 = 56
	plotRight  float32 = 16
	plotTop    float32 = 24
	axisGap    float32 = 6
	maxTicks           = 6
	labelAngle         = math.Pi / 4
)

var (
	chartBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gridColor       = color.NRGBA{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff}
	axisColor       = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	textColor       = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// axisScale maps data values onto a "nice" tick range.
type axisScale struct {
	min, max, step float64
}

func newAxisScale(lo, hi float64) axisScale {
	if hi <= lo {
		hi = lo + 1
	}
	span := niceNum(hi-lo, false)
	step := niceNum(span/float64(maxTicks-1), true)
	return axisScale{
		min:  math.Floor(lo/step) * step,
		max:  math.Ceil(hi/step) * step,
		step: step,
	}
}

func (s axisScale) ticks() []float64 {
	var out []float64
	for v := s.min; v <= s.max+s.step/2; v += s.step {
		out = append(out, v)
	}
	return out
}

// frac returns v's position on the axis in [0,1].
func (s axisScale) frac(v float64) float64 {
	return (v - s.min) / (s.max - s.min)
}

func (s axisScale) label(v float64) string {
	if s.step >= 1 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// niceNum rounds x to 1, 2, 5 or 10 times a power of ten.
func niceNum(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)
	var nf float64
	switch {
	case round && f < 1.5:
		nf = 1
	case round && f < 3:
		nf = 2
	case round && f < 7:
		nf = 5
	case round:
		nf = 10
	case f <= 1:
		nf = 1
	case f <= 2:
		nf = 2
	case f <= 5:
		nf = 5
	default:
		nf = 10
	}
	return nf * math.Pow(10, exp)
}

// yAxis holds the grid lines and tick labels shared by both chart widgets.
type yAxis struct {
	scale axisScale
	grid  []*canvas.Line
	ticks []*canvas.Text
	line  *canvas.Line
}

func newYAxis(scale axisScale) *yAxis {
	a := &yAxis{scale: scale, line: canvas.NewLine(axisColor)}
	for _, v := range scale.ticks() {
		a.grid = append(a.grid, canvas.NewLine(gridColor))
		t := canvas.NewText(scale.label(v), textColor)
		t.TextSize = 11
		a.ticks = append(a.ticks, t)
	}
	return a
}

func (a *yAxis) objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(a.grid)*2+1)
	for _, g := range a.grid {
		objs = append(objs, g)
	}
	for _, t := range a.ticks {
		objs = append(objs, t)
	}
	return append(objs, a.line)
}

// layout positions the axis inside the plot rectangle.
func (a *yAxis) layout(left, top, width, height float32) {
	for i, v := range a.scale.ticks() {
		y := top + height*float32(1-a.scale.frac(v))
		a.grid[i].Position1 = fyne.NewPos(left, y)
		a.grid[i].Position2 = fyne.NewPos(left+width, y)

		ts := a.ticks[i].MinSize()
		a.ticks[i].Resize(ts)
		a.ticks[i].Move(fyne.NewPos(left-ts.Width-axisGap, y-ts.Height/2))
	}
	a.line.Position1 = fyne.NewPos(left, top+height)
	a.line.Position2 = fyne.NewPos(left+width, top+height)
}

func (a *yAxis) y(v float64, top, height float32) float32 {
	return top + height*float32(1-a.scale.frac(v))
}

var (
	labelFaceOnce sync.Once
	labelFace     font.Face
)

func axisLabelFace() font.Face {
	labelFaceOnce.Do(func() {
		labelFace = basicfont.Face7x13
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 12, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return
		}
		labelFace = face
	})
	return labelFace
}

// rotatedLabel rasterises text rotated 45 degrees counter-clockwise. Fyne
// cannot rotate canvas.Text, so slanted category labels are drawn as images.
func rotatedLabel(text string, c color.Color) image.Image {
	face := axisLabelFace()
	d := font.Drawer{Face: face}
	w := d.MeasureString(text).Ceil()
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	if w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = src
	d.Src = image.NewUniform(c)
	d.Dot = fixed.P(0, m.Ascent.Ceil())
	d.DrawString(text)

	cos, sin := math.Cos(labelAngle), math.Sin(labelAngle)
	fw, fh := float64(w), float64(h)
	bw := int(math.Ceil(fw*cos + fh*sin))
	bh := int(math.Ceil(fw*sin + fh*cos))
	dst := image.NewRGBA(image.Rect(0, 0, bw, bh))

	// (x, y) -> (x cos + y sin, -x sin + y cos + w sin): the baseline rises
	// to the right and the whole label stays inside dst.
	aff := f64.Aff3{cos, sin, 0, -sin, cos, fw * sin}
	draw.BiLinear.Transform(dst, aff, src, src.Bounds(), draw.Over, nil)
	return dst
}

// categoryLabel returns a category axis label and its size.
func categoryLabel(text string, rotate bool) (fyne.CanvasObject, fyne.Size) {
	if !rotate {
		t := canvas.NewText(text, textColor)
		t.TextSize = 12
		return t, t.MinSize()
	}
	img := rotatedLabel(text, textColor)
	b := img.Bounds()
	size := fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.ScaleMode = canvas.ImageScaleSmooth
	ci.SetMinSize(size)
	return ci, size
}
