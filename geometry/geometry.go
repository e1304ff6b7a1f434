package geometry

import "fmt"

// Size is a width and height in pixels
type Size struct {
	Width  int
	Height int
}

// Geometry describes a window's size and its offset from the top-left
// corner of the screen
type Geometry struct {
	Width  int
	Height int
	X      int
	Y      int
}

// Center places a window of the given size in the middle of the screen.
// Offsets use floor division so an odd negative difference rounds down.
// A window larger than the screen gets a negative offset.
func Center(screen, window Size) Geometry {
	return Geometry{
		Width:  window.Width,
		Height: window.Height,
		X:      floorDiv(screen.Width-window.Width, 2),
		Y:      floorDiv(screen.Height-window.Height, 2),
	}
}

// Size returns the window extent
func (g Geometry) Size() Size {
	return Size{Width: g.Width, Height: g.Height}
}

// String renders the geometry as "<width>x<height>+<x>+<y>"
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
