package sdlcontext

import (
	"os"
	"runtime"
	"testing"

	"github.com/richinsley/glwindow/graphics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func keyEvent(typ uint32, sym sdl.Keycode) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: typ, Keysym: sdl.Keysym{Sym: sym}}
}

func TestStickyKeyFromEvents(t *testing.T) {
	w := &Window{sticky: true}
	w.handleEvent(keyEvent(sdl.KEYDOWN, sdl.K_ESCAPE))
	w.handleEvent(keyEvent(sdl.KEYUP, sdl.K_ESCAPE))

	p := New()
	assert.True(t, p.KeyPressed(w, graphics.KeyEscape))
	assert.False(t, p.KeyPressed(w, graphics.KeyEscape))
}

func TestNonStickyKeyFromEvents(t *testing.T) {
	w := &Window{}
	w.handleEvent(keyEvent(sdl.KEYDOWN, sdl.K_q))
	w.handleEvent(keyEvent(sdl.KEYUP, sdl.K_q))

	assert.False(t, New().KeyPressed(w, graphics.KeyQ))
}

func TestHeldKey(t *testing.T) {
	w := &Window{sticky: true}
	w.handleEvent(keyEvent(sdl.KEYDOWN, sdl.K_SPACE))

	p := New()
	assert.True(t, p.KeyPressed(w, graphics.KeySpace))
	assert.True(t, p.KeyPressed(w, graphics.KeySpace))
}

func TestRepeatAndUnknownKeysIgnored(t *testing.T) {
	w := &Window{sticky: true}
	ev := keyEvent(sdl.KEYDOWN, sdl.K_w)
	ev.Repeat = 1
	w.handleEvent(ev)
	w.handleEvent(keyEvent(sdl.KEYDOWN, sdl.K_z))

	p := New()
	assert.False(t, p.KeyPressed(w, graphics.KeyW))
	assert.False(t, p.KeyPressed(w, graphics.KeyUnknown))
}

func TestCloseEvents(t *testing.T) {
	w := &Window{windowID: 2}
	w.handleEvent(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: 3, Event: sdl.WINDOWEVENT_CLOSE})
	assert.False(t, w.closing)
	w.handleEvent(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: 2, Event: sdl.WINDOWEVENT_CLOSE})
	assert.True(t, w.closing)

	w = &Window{}
	w.handleEvent(&sdl.QuitEvent{Type: sdl.QUIT})
	assert.True(t, New().ShouldClose(w))
}

func TestKeyMapping(t *testing.T) {
	assert.Equal(t, graphics.KeyEscape, fromSDL(sdl.K_ESCAPE))
	assert.Equal(t, graphics.KeyUnknown, fromSDL(sdl.K_z))
	seen := make(map[graphics.Key]bool)
	for _, k := range fromSDLKeys {
		assert.False(t, seen[k], k.String())
		seen[k] = true
	}
}

func TestWindowLifecycle(t *testing.T) {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display available")
	}

	cfg := graphics.DefaultDisplayConfiguration()
	cfg.Title = "Test"
	cfg.Major, cfg.Minor = 3, 3
	cfg.Samples = 0

	m := NewManager()
	h, err := m.Initialize(cfg)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		m.Present(h)
	}
	assert.True(t, m.PollAndCheckContinue(h, true))
	m.Destroy(h)
	m.Destroy(h)
	assert.Equal(t, graphics.StateUninitialized, m.State())
}
