package window

import (
	"fmt"
	"log/slog"

	"centerwin/backend"
	"centerwin/geometry"
)

// Options configures the window to open
type Options struct {
	Title  string
	Width  int
	Height int
}

// Controller centers a single window on the screen reported by a backend.
// It does not own the backend.
type Controller struct {
	backend backend.Backend
	opts    Options
	logger  *slog.Logger
}

// NewController creates a controller for the given backend
func NewController(b backend.Backend, opts Options, logger *slog.Logger) *Controller {
	return &Controller{
		backend: b,
		opts:    opts,
		logger:  logger,
	}
}

// Geometry queries the screen size and returns the centered geometry
func (c *Controller) Geometry() (geometry.Geometry, error) {
	screen, err := c.backend.ScreenSize()
	if err != nil {
		return geometry.Geometry{}, fmt.Errorf("query screen size: %w", err)
	}

	g := geometry.Center(screen, geometry.Size{Width: c.opts.Width, Height: c.opts.Height})

	c.logger.Info("Computed window geometry",
		"screen_width", screen.Width,
		"screen_height", screen.Height,
		"geometry", g.String(),
	)
	return g, nil
}

// Run computes the geometry, opens the window and blocks until it is closed
func (c *Controller) Run() error {
	g, err := c.Geometry()
	if err != nil {
		return err
	}

	c.logger.Debug("Opening window", "backend", c.backend.Name(), "title", c.opts.Title)

	if err := c.backend.Show(c.opts.Title, g); err != nil {
		return fmt.Errorf("show window: %w", err)
	}

	c.logger.Info("Window closed")
	return nil
}
