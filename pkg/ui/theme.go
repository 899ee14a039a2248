package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	panelBackground = color.NRGBA{R: 0xf0, G: 0xf4, B: 0xf7, A: 0xff}
	titleColor      = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	footerColor     = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	buttonHover     = color.NRGBA{R: 0xd9, G: 0xe8, B: 0xf5, A: 0xff}
)

// churnTheme is a light theme on the panel background. When font is set it
// replaces the regular text face.
type churnTheme struct {
	font fyne.Resource
}

var _ fyne.Theme = (*churnTheme)(nil)

func newChurnTheme(font fyne.Resource) fyne.Theme { return &churnTheme{font: font} }

func (t *churnTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNameBackground:
		return panelBackground
	case theme.ColorNameForeground:
		return titleColor
	case theme.ColorNameHover:
		return buttonHover
	case theme.ColorNameButton:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return theme.DefaultTheme().Color(n, theme.VariantLight)
}

func (t *churnTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && !style.Bold && !style.Italic && !style.Monospace && !style.Symbol {
		return t.font
	}
	return theme.DefaultTheme().Font(style)
}

func (t *churnTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t *churnTheme) Size(n fyne.ThemeSizeName) float32 {
	base := theme.DefaultTheme().Size(n)
	switch n {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameInnerPadding:
		return base + 4
	}
	return base
}
