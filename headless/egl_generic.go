//go:build !linux || !cgo

package headless

import (
	"errors"

	"github.com/richinsley/glwindow/graphics"
)

const eglSupported = false

var errUnsupported = errors.New("egl headless rendering needs linux and cgo")

type Platform struct{}

type Surface struct{}

func (s *Surface) Backend() string { return backendName }

func (s *Surface) Size() (int, int) { return 0, 0 }

func (p *Platform) Init() error { return errUnsupported }

func (p *Platform) Terminate() {}

func (p *Platform) ApplyHints(cfg graphics.DisplayConfiguration) {}

func (p *Platform) CreateWindow(cfg graphics.DisplayConfiguration) (graphics.Handle, error) {
	return nil, errUnsupported
}

func (p *Platform) MakeCurrent(h graphics.Handle) {}

func (p *Platform) LoadExtensions() error { return errUnsupported }

func (p *Platform) SetSwapInterval(interval int) {}

func (p *Platform) SwapBuffers(h graphics.Handle) {}

func (p *Platform) DestroyWindow(h graphics.Handle) {}
