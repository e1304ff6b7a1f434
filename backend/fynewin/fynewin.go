// Package fynewin opens the window with Fyne. Fyne has no absolute window
// positioning, so the window is sized from the computed geometry and
// centered by the toolkit.
package fynewin

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"centerwin/backend"
	"centerwin/backend/glfwwin"
	"centerwin/geometry"
)

// AppID is the Fyne application identifier
const AppID = "io.centerwin"

func init() {
	backend.MustRegister(New(func() fyne.App { return app.NewWithID(AppID) }, glfwwin.PrimaryScreen))
}

// Backend implements backend.Backend on top of Fyne
type Backend struct {
	newApp func() fyne.App
	screen func() (geometry.Size, error)
}

// New creates a Fyne backend. newApp is called once per Show; screen
// supplies display metrics.
func New(newApp func() fyne.App, screen func() (geometry.Size, error)) *Backend {
	return &Backend{
		newApp: newApp,
		screen: screen,
	}
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "fyne"
}

// Description returns a human-readable description
func (b *Backend) Description() string {
	return "Fyne window centered by the toolkit"
}

// ScreenSize returns the primary screen size
func (b *Backend) ScreenSize() (geometry.Size, error) {
	return b.screen()
}

// Show opens a white window of the geometry's size and runs the app
// until the window is closed
func (b *Backend) Show(title string, g geometry.Geometry) error {
	a := b.newApp()
	w := a.NewWindow(title)

	w.SetContent(canvas.NewRectangle(color.White))
	w.Resize(fyne.NewSize(float32(g.Width), float32(g.Height)))
	w.CenterOnScreen()

	w.Show()
	a.Run()
	return nil
}
