package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// WindowDecorator applies cosmetic window settings. Implementations never
// abort chart rendering; callers log returned errors and carry on.
type WindowDecorator interface {
	// Maximize makes the window as large as the platform allows.
	Maximize(w fyne.Window)
	// Decorate sets the title and the icon loaded from iconPath.
	Decorate(w fyne.Window, title, iconPath string) error
}

// NewWindowDecorator picks the best decorator for the running driver.
func NewWindowDecorator(a fyne.App, fallback fyne.Size) WindowDecorator {
	if a == nil {
		return noopDecorator{}
	}
	if _, ok := a.Driver().(desktop.Driver); ok {
		return desktopDecorator{fallback: fallback}
	}
	return sizedDecorator{fallback: fallback}
}

// desktopDecorator goes full screen; Escape leaves full screen.
type desktopDecorator struct {
	fallback fyne.Size
}

func (d desktopDecorator) Maximize(w fyne.Window) {
	w.Resize(d.fallback)
	w.SetFullScreen(true)
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape && w.FullScreen() {
			w.SetFullScreen(false)
		}
	})
}

func (d desktopDecorator) Decorate(w fyne.Window, title, iconPath string) error {
	return decorate(w, title, iconPath)
}

// sizedDecorator only resizes; used where full screen is not available.
type sizedDecorator struct {
	fallback fyne.Size
}

func (d sizedDecorator) Maximize(w fyne.Window) {
	w.Resize(d.fallback)
}

func (d sizedDecorator) Decorate(w fyne.Window, title, iconPath string) error {
	return decorate(w, title, iconPath)
}

type noopDecorator struct{}

func (noopDecorator) Maximize(fyne.Window) {}

func (noopDecorator) Decorate(fyne.Window, string, string) error { return nil }

func decorate(w fyne.Window, title, iconPath string) error {
	w.SetTitle(title)
	if iconPath == "" {
		return nil
	}
	res, err := fyne.LoadResourceFromPath(iconPath)
	if err != nil {
		return fmt.Errorf("load window icon %q: %w", iconPath, err)
	}
	w.SetIcon(res)
	return nil
}
