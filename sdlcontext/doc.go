// Package sdlcontext provides a graphics.Platform that creates OpenGL
// windows using SDL2.
package sdlcontext
