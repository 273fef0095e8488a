// Package headless provides a graphics.Platform that renders into an
// offscreen EGL pbuffer, for machines without a display server.
package headless

import "github.com/richinsley/glwindow/graphics"

const backendName = "headless"

var _ graphics.Platform = (*Platform)(nil)

func New() *Platform {
	return &Platform{}
}

// NewManager returns a window manager backed by an offscreen surface.
func NewManager() *graphics.Manager {
	return graphics.NewManager(New())
}

func (p *Platform) Name() string { return backendName }

func (p *Platform) EnableStickyKeys(h graphics.Handle) {}

func (p *Platform) KeyPressed(h graphics.Handle, key graphics.Key) bool { return false }

func (p *Platform) ShouldClose(h graphics.Handle) bool { return false }

func (p *Platform) PollEvents() {}
