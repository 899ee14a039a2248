package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// IconButton is a text button that may later gain an icon. It keeps the
// decoded image for as long as the button lives.
type IconButton struct {
	*widget.Button

	image image.Image
}

func NewIconButton(label string, tapped func()) *IconButton {
	b := widget.NewButton(label, tapped)
	b.Alignment = widget.ButtonAlignLeading
	return &IconButton{Button: b}
}

// SetImage shows img as the button icon.
func (b *IconButton) SetImage(name string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode button icon: %w", err)
	}
	b.image = img
	b.Button.SetIcon(fyne.NewStaticResource(name+".png", buf.Bytes()))
	return nil
}

// Image returns the image currently shown, nil while text-only.
func (b *IconButton) Image() image.Image { return b.image }
