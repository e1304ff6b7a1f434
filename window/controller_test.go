package window

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centerwin/backend"
	"centerwin/geometry"
)

type fakeBackend struct {
	screen    geometry.Size
	screenErr error
	showErr   error

	shown    int
	title    string
	geometry geometry.Geometry
}

func (f *fakeBackend) Name() string        { return "fake" }
func (f *fakeBackend) Description() string { return "fake backend" }

func (f *fakeBackend) ScreenSize() (geometry.Size, error) {
	return f.screen, f.screenErr
}

func (f *fakeBackend) Show(title string, g geometry.Geometry) error {
	f.shown++
	f.title = title
	f.geometry = g
	return f.showErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultOptions() Options {
	return Options{Title: "Usability Test", Width: 640, Height: 480}
}

func TestRun_CentersOnScreen(t *testing.T) {
	fb := &fakeBackend{screen: geometry.Size{Width: 1920, Height: 1080}}
	c := NewController(fb, defaultOptions(), discardLogger())

	require.NoError(t, c.Run())

	assert.Equal(t, 1, fb.shown)
	assert.Equal(t, "Usability Test", fb.title)
	assert.Equal(t, geometry.Geometry{Width: 640, Height: 480, X: 640, Y: 300}, fb.geometry)
	assert.Equal(t, "640x480+640+300", fb.geometry.String())
}

func TestRun_SmallScreen(t *testing.T) {
	fb := &fakeBackend{screen: geometry.Size{Width: 800, Height: 600}}
	c := NewController(fb, defaultOptions(), discardLogger())

	require.NoError(t, c.Run())
	assert.Equal(t, geometry.Geometry{Width: 640, Height: 480, X: 80, Y: 60}, fb.geometry)
}

func TestRun_OversizedWindowIsNotRejected(t *testing.T) {
	fb := &fakeBackend{screen: geometry.Size{Width: 600, Height: 400}}
	c := NewController(fb, defaultOptions(), discardLogger())

	require.NoError(t, c.Run())
	assert.Equal(t, -20, fb.geometry.X)
	assert.Equal(t, -40, fb.geometry.Y)
}

func TestRun_NoDisplay(t *testing.T) {
	fb := &fakeBackend{screenErr: backend.ErrNoDisplay}
	c := NewController(fb, defaultOptions(), discardLogger())

	err := c.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, backend.ErrNoDisplay))
	assert.Equal(t, 0, fb.shown, "window must not be opened without screen metrics")
}

func TestRun_ShowFailure(t *testing.T) {
	showErr := errors.New("window rejected")
	fb := &fakeBackend{screen: geometry.Size{Width: 1920, Height: 1080}, showErr: showErr}
	c := NewController(fb, defaultOptions(), discardLogger())

	err := c.Run()
	assert.ErrorIs(t, err, showErr)
	assert.ErrorContains(t, err, "show window")
}

func TestGeometry_Idempotent(t *testing.T) {
	fb := &fakeBackend{screen: geometry.Size{Width: 1366, Height: 768}}
	c := NewController(fb, defaultOptions(), discardLogger())

	first, err := c.Geometry()
	require.NoError(t, err)
	second, err := c.Geometry()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 0, fb.shown)
}
