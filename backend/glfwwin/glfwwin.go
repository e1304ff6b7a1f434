// Package glfwwin opens the window directly through GLFW, which lets the
// computed offset be applied exactly.
package glfwwin

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"centerwin/backend"
	"centerwin/geometry"
)

func init() {
	backend.MustRegister(&Backend{})
}

// GLFW entry points, replaced in tests
var (
	glfwInit      = glfw.Init
	glfwTerminate = glfw.Terminate
	monitorSize   = primaryMonitorSize
)

// Backend implements backend.Backend on top of GLFW.
// All methods must be called from the main OS thread.
type Backend struct{}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "glfw"
}

// Description returns a human-readable description
func (b *Backend) Description() string {
	return "GLFW window with exact placement"
}

// ScreenSize returns the video mode size of the primary monitor.
// GLFW is terminated again before it returns.
func (b *Backend) ScreenSize() (geometry.Size, error) {
	return PrimaryScreen()
}

// Show creates the window at the given geometry and waits for events
// until it is closed. GLFW is terminated on return.
func (b *Backend) Show(title string, g geometry.Geometry) error {
	if err := glfwInit(); err != nil {
		return fmt.Errorf("%w: %v", backend.ErrNoDisplay, err)
	}
	defer glfwTerminate()

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	win, err := glfw.CreateWindow(g.Width, g.Height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	win.SetPos(g.X, g.Y)
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init opengl: %w", err)
	}

	win.SetRefreshCallback(paint)
	win.Show()
	paint(win)

	for !win.ShouldClose() {
		glfw.WaitEvents()
	}
	return nil
}

// PrimaryScreen initializes GLFW just long enough to read the primary
// monitor size. Used by backends whose toolkit hides display metrics.
func PrimaryScreen() (geometry.Size, error) {
	if err := glfwInit(); err != nil {
		return geometry.Size{}, fmt.Errorf("%w: %v", backend.ErrNoDisplay, err)
	}
	defer glfwTerminate()
	return monitorSize()
}

func primaryMonitorSize() (geometry.Size, error) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return geometry.Size{}, fmt.Errorf("%w: no primary monitor", backend.ErrNoDisplay)
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return geometry.Size{}, fmt.Errorf("%w: primary monitor has no video mode", backend.ErrNoDisplay)
	}
	return geometry.Size{Width: mode.Width, Height: mode.Height}, nil
}

// paint fills the window with white
func paint(w *glfw.Window) {
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	w.SwapBuffers()
}
