package glfwcontext

import (
	"os"
	"runtime"
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glwindow/graphics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireDisplay(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "darwin" {
		t.Skip("GLFW must run on the main thread on macOS")
	}
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display available")
	}
}

func testConfig() graphics.DisplayConfiguration {
	cfg := graphics.DefaultDisplayConfiguration()
	cfg.Title = "Test"
	cfg.Major, cfg.Minor = 3, 3
	cfg.Samples = 0
	return cfg
}

func TestKeyMappingRoundTrip(t *testing.T) {
	for k, gk := range toGLFW {
		assert.Equal(t, k, fromGLFW(gk), k.String())
	}
	assert.Equal(t, graphics.KeyUnknown, fromGLFW(-1))
}

func TestKeyPressedUnmappedKey(t *testing.T) {
	p := New()
	assert.False(t, p.KeyPressed(&Window{}, graphics.KeyUnknown))
}

func TestCheckContextConfig(t *testing.T) {
	tests := []struct {
		name         string
		major, minor int
		profile      graphics.Profile
		wantErr      bool
	}{
		{"default version", 0, 0, graphics.ProfileCore, false},
		{"2.1 any", 2, 1, graphics.ProfileAny, false},
		{"3.2 core", 3, 2, graphics.ProfileCore, false},
		{"3.3 compat", 3, 3, graphics.ProfileCompat, false},
		{"4.4 core", 4, 4, graphics.ProfileCore, false},
		{"9.9 core", 9, 9, graphics.ProfileCore, false},
		{"2.1 core", 2, 1, graphics.ProfileCore, true},
		{"3.1 compat", 3, 1, graphics.ProfileCompat, true},
		{"1.6 any", 1, 6, graphics.ProfileAny, true},
		{"2.5 any", 2, 5, graphics.ProfileAny, true},
		{"3.4 core", 3, 4, graphics.ProfileCore, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Major, cfg.Minor, cfg.Profile = tt.major, tt.minor, tt.profile
			err := checkContextConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateWindowRejectsInvalidVersionWithoutGLFW(t *testing.T) {
	cfg := testConfig()
	cfg.Major, cfg.Minor = 2, 1
	h, err := New().CreateWindow(cfg)
	assert.Nil(t, h)
	assert.ErrorContains(t, err, "3.2")
}

func TestKeyCallbackDispatch(t *testing.T) {
	w := &Window{keyCallbacks: make(map[graphics.Key]func())}
	var presses int
	w.RegisterKeyCallback(graphics.KeyF1, func() { presses++ })

	w.glfwKeyCallback(nil, glfw.KeyF1, 0, glfw.Press, 0)
	w.glfwKeyCallback(nil, glfw.KeyF1, 0, glfw.Release, 0)
	w.glfwKeyCallback(nil, glfw.KeyF1, 0, glfw.Repeat, 0)
	w.glfwKeyCallback(nil, glfw.KeyF2, 0, glfw.Press, 0)
	assert.Equal(t, 1, presses)
}

func TestDestroyedWindowInput(t *testing.T) {
	w := &Window{}
	assert.Equal(t, [4]float32{}, w.GetMouseInput())
	width, height := w.GetFramebufferSize()
	assert.Zero(t, width)
	assert.Zero(t, height)
}

func TestForeignHandlePanics(t *testing.T) {
	assert.Panics(t, func() { asWindow(nil) })
}

func TestWindowLifecycle(t *testing.T) {
	requireDisplay(t)

	m := NewManager()
	h, err := m.Initialize(testConfig())
	require.NoError(t, err)

	w, ok := h.(*Window)
	require.True(t, ok)
	width, height := w.GetFramebufferSize()
	assert.Positive(t, width)
	assert.Positive(t, height)

	mouse := w.GetMouseInput()
	assert.LessOrEqual(t, mouse[2], float32(0), "button is up")
	start := w.Time()
	assert.GreaterOrEqual(t, start, 0.0)

	for i := 0; i < 10; i++ {
		m.Present(h)
	}
	assert.GreaterOrEqual(t, w.Time(), start)
	assert.True(t, m.PollAndCheckContinue(h, true))
	assert.False(t, m.PollAndCheckContinue(h, false))

	m.Destroy(h)
	assert.Equal(t, graphics.StateUninitialized, m.State())
	m.Destroy(h)

	// the subsystem can be brought up again
	h, err = m.Initialize(testConfig())
	require.NoError(t, err)
	m.Destroy(h)
}

func TestCloseRequestStopsLoop(t *testing.T) {
	requireDisplay(t)

	m := NewManager()
	h, err := m.Initialize(testConfig())
	require.NoError(t, err)
	defer m.Destroy(h)

	h.(*Window).window.SetShouldClose(true)
	assert.False(t, m.PollAndCheckContinue(h, true))
}

func TestDefaultVersionWindow(t *testing.T) {
	requireDisplay(t)

	m := NewManager()
	h, err := m.Initialize(graphics.DisplayConfiguration{Width: 320, Height: 240, Title: "Test"})
	require.NoError(t, err)
	m.Destroy(h)
}

func TestInvalidVersionIsAnError(t *testing.T) {
	requireDisplay(t)

	cfg := testConfig()
	cfg.Major, cfg.Minor = 3, 4
	m := NewManager()
	assert.NotPanics(t, func() {
		_, err := m.Initialize(cfg)
		assert.ErrorIs(t, err, graphics.ErrWindowCreationFailed)
	})
	assert.Equal(t, graphics.StateUninitialized, m.State())
}

func TestUnsupportedVersion(t *testing.T) {
	requireDisplay(t)

	cfg := testConfig()
	cfg.Major, cfg.Minor = 9, 9
	m := NewManager()
	_, err := m.Initialize(cfg)
	assert.ErrorIs(t, err, graphics.ErrWindowCreationFailed)
	assert.Equal(t, graphics.StateUninitialized, m.State())
}
