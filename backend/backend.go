package backend

import (
	"errors"

	"centerwin/geometry"
)

// ErrNoDisplay is returned when the GUI runtime cannot reach a display
var ErrNoDisplay = errors.New("no display available")

// Backend is a GUI runtime able to report screen metrics and to open a
// single top-level window.
type Backend interface {
	// Name returns the registry identifier (e.g., "glfw", "fyne")
	Name() string

	// Description returns a human-readable description
	Description() string

	// ScreenSize returns the primary screen dimensions in pixels
	ScreenSize() (geometry.Size, error)

	// Show creates a window with the given title and geometry, then blocks
	// in the runtime's event loop until the window is closed
	Show(title string, g geometry.Geometry) error
}
