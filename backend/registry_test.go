package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centerwin/geometry"
)

type stubBackend struct {
	name string
}

func (s *stubBackend) Name() string { return s.name }
func (s *stubBackend) Description() string { return "stub " + s.name }
func (s *stubBackend) ScreenSize() (geometry.Size, error) { return geometry.Size{}, nil }
func (s *stubBackend) Show(string, geometry.Geometry) error { return nil }

func resetRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := backends
	backends = make(map[string]Backend)
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		backends = saved
		mu.Unlock()
	})
}

func TestRegisterAndGet(t *testing.T) {
	resetRegistry(t)

	require.NoError(t, Register(&stubBackend{name: "Alpha"}))

	b, err := Get("ALPHA")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", b.Name())
	assert.Equal(t, []string{"alpha"}, List())
}

func TestRegister_Duplicate(t *testing.T) {
	resetRegistry(t)

	require.NoError(t, Register(&stubBackend{name: "alpha"}))
	err := Register(&stubBackend{name: "ALPHA"})
	assert.ErrorContains(t, err, `backend "alpha" already registered by *backend.stubBackend`)
	assert.Panics(t, func() { MustRegister(&stubBackend{name: "alpha"}) })
}

func TestGet_UnknownListsAvailable(t *testing.T) {
	resetRegistry(t)
	MustRegister(&stubBackend{name: "zeta"})
	MustRegister(&stubBackend{name: "alpha"})

	_, err := Get("tk")
	assert.EqualError(t, err, `unknown backend "tk" (available: alpha, zeta)`)
}

func TestForEach_SortedAndUnlocked(t *testing.T) {
	resetRegistry(t)
	MustRegister(&stubBackend{name: "zeta"})
	MustRegister(&stubBackend{name: "alpha"})

	var seen []string
	ForEach(func(name string, b Backend) {
		// Lookups from the callback must not deadlock
		got, err := Get(name)
		require.NoError(t, err)
		assert.Same(t, b, got)

		seen = append(seen, name+":"+b.Description())
	})
	assert.Equal(t, []string{"alpha:stub alpha", "zeta:stub zeta"}, seen)
}
