package sdlcontext

import (
	"fmt"

	"github.com/richinsley/glwindow/glinit"
	"github.com/richinsley/glwindow/graphics"
	"github.com/veandco/go-sdl2/sdl"
)

const backendName = "sdl2"

// Platform implements graphics.Platform with SDL2. SDL has no sticky key
// mode, so key state is latched from the event queue.
type Platform struct {
	current *Window
}

var _ graphics.Platform = (*Platform)(nil)

func New() *Platform {
	return &Platform{}
}

// NewManager returns a window manager backed by SDL2.
func NewManager() *graphics.Manager {
	return graphics.NewManager(New())
}

type Window struct {
	handle   *sdl.Window
	context  sdl.GLContext
	windowID uint32
	keys     graphics.KeyLatch
	sticky   bool
	closing  bool
}

func (w *Window) Backend() string { return backendName }

func asWindow(h graphics.Handle) *Window {
	w, ok := h.(*Window)
	if !ok {
		panic(fmt.Sprintf("sdlcontext: foreign handle %T", h))
	}
	return w
}

func (p *Platform) Name() string { return backendName }

func (p *Platform) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	driver, _ := sdl.GetCurrentVideoDriver()
	graphics.Logger().Printf("SDL2 Initialized, video driver: %s", driver)
	return nil
}

func (p *Platform) Terminate() {
	p.current = nil
	sdl.Quit()
	graphics.Logger().Printf("SDL2 Terminated")
}

func (p *Platform) ApplyHints(cfg graphics.DisplayConfiguration) {
	setAttribute(sdl.GL_DOUBLEBUFFER, 1)
	setAttribute(sdl.GL_DEPTH_SIZE, 24)
	if cfg.Samples > 0 {
		setAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		setAttribute(sdl.GL_MULTISAMPLESAMPLES, cfg.Samples)
	} else {
		setAttribute(sdl.GL_MULTISAMPLEBUFFERS, 0)
		setAttribute(sdl.GL_MULTISAMPLESAMPLES, 0)
	}
	// Init resets the attributes, so leaving them unset keeps SDL's default
	// context version.
	if !cfg.HasVersion() {
		return
	}
	setAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, cfg.Major)
	setAttribute(sdl.GL_CONTEXT_MINOR_VERSION, cfg.Minor)
	switch cfg.Profile {
	case graphics.ProfileCore:
		setAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	case graphics.ProfileCompat:
		setAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_COMPATIBILITY)
	}
}

func setAttribute(attr sdl.GLattr, value int) {
	if err := sdl.GLSetAttribute(attr, value); err != nil {
		graphics.Logger().Printf("SDL2: GL attribute %d=%d rejected: %v", attr, value, err)
	}
}

// CreateWindow also creates the GL context, since that is where SDL reports
// an unsupported version.
func (p *Platform) CreateWindow(cfg graphics.DisplayConfiguration) (graphics.Handle, error) {
	var flags uint32 = sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	handle, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height),
		flags,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SDL window: %w", err)
	}

	glContext, err := handle.GLCreateContext()
	if err != nil {
		handle.Destroy()
		return nil, fmt.Errorf("failed to create OpenGL context: %w", err)
	}

	w := &Window{handle: handle, context: glContext}
	w.windowID, _ = handle.GetID()
	p.current = w
	return w, nil
}

func (p *Platform) MakeCurrent(h graphics.Handle) {
	w := asWindow(h)
	if err := w.handle.GLMakeCurrent(w.context); err != nil {
		graphics.Logger().Printf("SDL2: failed to make context current: %v", err)
	}
}

func (p *Platform) EnableStickyKeys(h graphics.Handle) {
	asWindow(h).sticky = true
}

func (p *Platform) LoadExtensions() error {
	return glinit.Load(backendName)
}

func (p *Platform) SetSwapInterval(interval int) {
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		graphics.Logger().Printf("SDL2: swap interval %d rejected: %v", interval, err)
	}
}

func (p *Platform) SwapBuffers(h graphics.Handle) {
	asWindow(h).handle.GLSwap()
}

func (p *Platform) KeyPressed(h graphics.Handle, key graphics.Key) bool {
	return asWindow(h).keys.Pressed(key)
}

func (p *Platform) ShouldClose(h graphics.Handle) bool {
	return asWindow(h).closing
}

func (p *Platform) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if p.current != nil {
			p.current.handleEvent(event)
		}
	}
}

func (p *Platform) DestroyWindow(h graphics.Handle) {
	w := asWindow(h)
	sdl.GLDeleteContext(w.context)
	if err := w.handle.Destroy(); err != nil {
		graphics.Logger().Printf("SDL2: failed to destroy window: %v", err)
	}
	w.keys.Reset()
	if p.current == w {
		p.current = nil
	}
}

func (w *Window) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return
		}
		key := fromSDL(e.Keysym.Sym)
		if key == graphics.KeyUnknown {
			return
		}
		switch e.Type {
		case sdl.KEYDOWN:
			w.keys.Press(key)
			if !w.sticky {
				// without sticky keys only the held state is visible
				w.keys.Pressed(key)
			}
		case sdl.KEYUP:
			w.keys.Release(key)
		}
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_CLOSE && (w.windowID == 0 || e.WindowID == w.windowID) {
			w.closing = true
		}
	case *sdl.QuitEvent:
		w.closing = true
	}
}
