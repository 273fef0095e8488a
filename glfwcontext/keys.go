package glfwcontext

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glwindow/graphics"
)

var toGLFW = map[graphics.Key]glfw.Key{
	graphics.KeyEscape:    glfw.KeyEscape,
	graphics.KeyEnter:     glfw.KeyEnter,
	graphics.KeySpace:     glfw.KeySpace,
	graphics.KeyTab:       glfw.KeyTab,
	graphics.KeyBackspace: glfw.KeyBackspace,
	graphics.KeyUp:        glfw.KeyUp,
	graphics.KeyDown:      glfw.KeyDown,
	graphics.KeyLeft:      glfw.KeyLeft,
	graphics.KeyRight:     glfw.KeyRight,
	graphics.KeyA:         glfw.KeyA,
	graphics.KeyD:         glfw.KeyD,
	graphics.KeyQ:         glfw.KeyQ,
	graphics.KeyS:         glfw.KeyS,
	graphics.KeyW:         glfw.KeyW,
	graphics.KeyF1:        glfw.KeyF1,
	graphics.KeyF10:       glfw.KeyF10,
	graphics.KeyF12:       glfw.KeyF12,
}

var fromGLFWKeys = func() map[glfw.Key]graphics.Key {
	m := make(map[glfw.Key]graphics.Key, len(toGLFW))
	for k, v := range toGLFW {
		m[v] = k
	}
	return m
}()

func fromGLFW(k glfw.Key) graphics.Key {
	if key, ok := fromGLFWKeys[k]; ok {
		return key
	}
	return graphics.KeyUnknown
}
