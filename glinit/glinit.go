// Package glinit resolves OpenGL entry points for the context that is
// current on the calling thread.
package glinit

import (
	"fmt"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/richinsley/glwindow/graphics"
)

// Load looks up every core OpenGL function up to the newest version the
// bindings know of and logs what the context reports. Entry points the
// driver does not provide stay nil, so contexts older or newer than 4.1
// load as well. It must be called again after each new context is made
// current.
func Load(backend string) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	graphics.Logger().Printf("%s: OpenGL %s (%s)", backend, Version(), gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
