package ui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"churnlens/pkg/charts"
)

const logoSize = 512

// GenerateLogo draws the application logo: a blue gradient, three bars in
// the chart palette and a ring around a downward trend needle.
func GenerateLogo(filename string) error {
	img := image.NewRGBA(image.Rect(0, 0, logoSize, logoSize))

	top := color.RGBA{34, 139, 34, 255}  // #228b22
	bottom := color.RGBA{26, 92, 138, 255} // #1a5c8a

	for y := 0; y < logoSize; y++ {
		ratio := float64(y) / logoSize
		c := color.RGBA{
			R: uint8(float64(top.R)*(1-ratio) + float64(bottom.R)*ratio),
			G: uint8(float64(top.G)*(1-ratio) + float64(bottom.G)*ratio),
			B: uint8(float64(top.B)*(1-ratio) + float64(bottom.B)*ratio),
			A: 255,
		}
		for x := 0; x < logoSize; x++ {
			img.Set(x, y, c)
		}
	}

	white := color.RGBA{255, 255, 255, 255}
	cancelled := color.RGBA(charts.CancelledColor)
	barWidth := 80
	spacing := 30
	startX := 111

	// Active, active, cancelled
	heights := []int{260, 200, 120}
	fills := []color.RGBA{white, white, cancelled}
	for i, h := range heights {
		x := startX + i*(barWidth+spacing)
		rect := image.Rect(x, logoSize-80-h, x+barWidth, logoSize-80)
		draw.Draw(img, rect, &image.Uniform{fills[i]}, image.Point{}, draw.Src)
	}

	centerX, centerY := 256, 130
	drawCircle(img, centerX, centerY, 70, white, 8)
	drawLine(img, centerX, centerY, centerX+45, centerY+45, white, 6)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create logo: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode logo: %w", err)
	}
	return nil
}

func drawCircle(img *image.RGBA, cx, cy, r int, c color.RGBA, thickness int) {
	b := img.Bounds()
	for angle := 0.0; angle < 360.0; angle += 0.5 {
		rad := angle * math.Pi / 180.0
		for t := -thickness / 2; t < thickness/2; t++ {
			x := cx + int(float64(r+t)*math.Cos(rad))
			y := cy + int(float64(r+t)*math.Sin(rad))
			if image.Pt(x, y).In(b) {
				img.Set(x, y, c)
			}
		}
	}
}

func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA, thickness int) {
	b := img.Bounds()
	dx := x2 - x1
	dy := y2 - y1
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x1 + int(float64(dx)*t)
		y := y1 + int(float64(dy)*t)
		for tx := -thickness / 2; tx < thickness/2; tx++ {
			for ty := -thickness / 2; ty < thickness/2; ty++ {
				if p := image.Pt(x+tx, y+ty); p.In(b) {
					img.Set(p.X, p.Y, c)
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
