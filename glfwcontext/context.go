package glfwcontext

import (
	"fmt"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glwindow/glinit"
	"github.com/richinsley/glwindow/graphics"
)

const backendName = "glfw"

// Platform implements graphics.Platform with GLFW.
type Platform struct{}

var _ graphics.Platform = (*Platform)(nil)

func New() *Platform {
	return &Platform{}
}

// NewManager returns a window manager backed by GLFW.
func NewManager() *graphics.Manager {
	return graphics.NewManager(New())
}

// Window is the GLFW handle handed out by Initialize. It also tracks mouse
// state for GetMouseInput.
type Window struct {
	window          *glfw.Window
	lastMouseClickX float64
	lastMouseClickY float64
	mouseWasDown    bool
	// A map to store functions to be called on key presses.
	keyCallbacks map[graphics.Key]func()
}

var _ graphics.Surface = (*Window)(nil)

func (w *Window) Backend() string { return backendName }

func asWindow(h graphics.Handle) *Window {
	w, ok := h.(*Window)
	if !ok {
		panic(fmt.Sprintf("glfwcontext: foreign handle %T", h))
	}
	return w
}

func (p *Platform) Name() string { return backendName }

// Init initializes GLFW. Must be called from the main thread on macOS.
func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	graphics.Logger().Printf("GLFW Initialized (%s)", glfw.GetVersionString())
	return nil
}

func (p *Platform) Terminate() {
	glfw.Terminate()
	graphics.Logger().Printf("GLFW Terminated")
}

func (p *Platform) ApplyHints(cfg graphics.DisplayConfiguration) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	if cfg.HasVersion() {
		glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	}
	switch cfg.EffectiveProfile() {
	case graphics.ProfileCore:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		// macOS only hands out core contexts that are forward compatible.
		if runtime.GOOS == "darwin" {
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
	case graphics.ProfileCompat:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	default:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
}

// checkContextConfig rejects the version and profile combinations GLFW
// reports as invalid values. glfw.CreateWindow panics on those instead of
// returning an error.
func checkContextConfig(cfg graphics.DisplayConfiguration) error {
	if !cfg.HasVersion() {
		return nil
	}
	major, minor := cfg.Major, cfg.Minor
	if major < 1 || minor < 0 ||
		(major == 1 && minor > 5) ||
		(major == 2 && minor > 1) ||
		(major == 3 && minor > 3) {
		return fmt.Errorf("invalid OpenGL version %s", cfg.Version())
	}
	if cfg.Profile != graphics.ProfileAny && (major < 3 || (major == 3 && minor < 2)) {
		return fmt.Errorf("OpenGL %s profile requires version 3.2 or later, got %s", cfg.Profile, cfg.Version())
	}
	return nil
}

func (p *Platform) CreateWindow(cfg graphics.DisplayConfiguration) (h graphics.Handle, err error) {
	if err := checkContextConfig(cfg); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			gerr, ok := r.(*glfw.Error)
			if !ok {
				panic(r)
			}
			h, err = nil, gerr
		}
	}()

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		return nil, err
	}

	w := &Window{
		window:       win,
		keyCallbacks: make(map[graphics.Key]func()),
	}
	win.SetKeyCallback(w.glfwKeyCallback)
	return w, nil
}

func (p *Platform) MakeCurrent(h graphics.Handle) {
	asWindow(h).window.MakeContextCurrent()
}

func (p *Platform) EnableStickyKeys(h graphics.Handle) {
	asWindow(h).window.SetInputMode(glfw.StickyKeysMode, glfw.True)
}

func (p *Platform) LoadExtensions() error {
	return glinit.Load(backendName)
}

func (p *Platform) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (p *Platform) SwapBuffers(h graphics.Handle) {
	asWindow(h).window.SwapBuffers()
}

func (p *Platform) KeyPressed(h graphics.Handle, key graphics.Key) bool {
	k, ok := toGLFW[key]
	if !ok {
		return false
	}
	return asWindow(h).window.GetKey(k) == glfw.Press
}

func (p *Platform) ShouldClose(h graphics.Handle) bool {
	return asWindow(h).window.ShouldClose()
}

// PollEvents may only be called from the main thread.
func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

func (p *Platform) DestroyWindow(h graphics.Handle) {
	w := asWindow(h)
	glfw.DetachCurrentContext()
	w.window.Destroy()
	w.window = nil
}

// RegisterKeyCallback allows the application to register a function to be
// called when a specific key is pressed. Callbacks run from PollEvents.
func (w *Window) RegisterKeyCallback(key graphics.Key, f func()) {
	w.keyCallbacks[key] = f
}

func (w *Window) glfwKeyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if callback, ok := w.keyCallbacks[fromGLFW(key)]; ok {
		callback()
	}
}

// GetMouseInput returns x, y, clickX, clickY in framebuffer pixels with the
// origin at the bottom left. The click coordinates are negated while the left
// button is up.
func (w *Window) GetMouseInput() [4]float32 {
	var mouseData [4]float32
	if w.window == nil {
		return mouseData
	}

	fbWidth, fbHeight := w.GetFramebufferSize()
	winWidth, winHeight := w.window.GetSize()
	var scaleX, scaleY float64 = 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
		scaleY = float64(fbHeight) / float64(winHeight)
	}

	cursorX, cursorY := w.window.GetCursorPos()
	pixelX := cursorX * scaleX
	pixelY := cursorY * scaleY

	isMouseDown := w.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	if isMouseDown && !w.mouseWasDown {
		w.lastMouseClickX = pixelX
		w.lastMouseClickY = pixelY
	}
	w.mouseWasDown = isMouseDown

	clickX := float32(w.lastMouseClickX)
	clickY := float32(fbHeight) - float32(w.lastMouseClickY)
	if !isMouseDown {
		clickX = -clickX
		clickY = -clickY
	}

	return [4]float32{float32(pixelX), float32(fbHeight) - float32(pixelY), clickX, clickY}
}

func (w *Window) GetFramebufferSize() (int, int) {
	if w.window == nil {
		return 0, 0
	}
	return w.window.GetFramebufferSize()
}

// Time returns seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}
