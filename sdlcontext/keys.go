package sdlcontext

import (
	"github.com/richinsley/glwindow/graphics"
	"github.com/veandco/go-sdl2/sdl"
)

var fromSDLKeys = map[sdl.Keycode]graphics.Key{
	sdl.K_ESCAPE:    graphics.KeyEscape,
	sdl.K_RETURN:    graphics.KeyEnter,
	sdl.K_SPACE:     graphics.KeySpace,
	sdl.K_TAB:       graphics.KeyTab,
	sdl.K_BACKSPACE: graphics.KeyBackspace,
	sdl.K_UP:        graphics.KeyUp,
	sdl.K_DOWN:      graphics.KeyDown,
	sdl.K_LEFT:      graphics.KeyLeft,
	sdl.K_RIGHT:     graphics.KeyRight,
	sdl.K_a:         graphics.KeyA,
	sdl.K_d:         graphics.KeyD,
	sdl.K_q:         graphics.KeyQ,
	sdl.K_s:         graphics.KeyS,
	sdl.K_w:         graphics.KeyW,
	sdl.K_F1:        graphics.KeyF1,
	sdl.K_F10:       graphics.KeyF10,
	sdl.K_F12:       graphics.KeyF12,
}

func fromSDL(k sdl.Keycode) graphics.Key {
	if key, ok := fromSDLKeys[k]; ok {
		return key
	}
	return graphics.KeyUnknown
}
