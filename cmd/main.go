package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-gl/gl/all-core/gl"
	app "github.com/richinsley/glwindow/app"
	"github.com/richinsley/glwindow/glfwcontext"
	"github.com/richinsley/glwindow/glinit"
	graphics "github.com/richinsley/glwindow/graphics"
	"github.com/richinsley/glwindow/headless"
	options "github.com/richinsley/glwindow/options"
	"github.com/richinsley/glwindow/sdlcontext"
)

// pauseKey toggles the fade on backends that deliver key callbacks.
const pauseKey = graphics.KeyF1

type keyCallbackRegistrar interface {
	RegisterKeyCallback(key graphics.Key, f func())
}

// clearRenderer fades the clear colour over time. It is enough to show that
// the context is current and that Present reaches the screen. Holding the
// left mouse button lightens the colour towards white from left to right.
type clearRenderer struct {
	surface graphics.Surface
	paused  bool
	last    float64
	elapsed float64
}

func (r *clearRenderer) Init(h graphics.Handle) error {
	r.setup(h)
	log.Printf("Rendering with OpenGL %s", glinit.Version())
	return nil
}

func (r *clearRenderer) setup(h graphics.Handle) {
	r.surface, _ = h.(graphics.Surface)
	if reg, ok := h.(keyCallbackRegistrar); ok {
		reg.RegisterKeyCallback(pauseKey, r.togglePause)
	}
	r.last = r.now(0)
	r.elapsed = 0
}

func (r *clearRenderer) togglePause() {
	r.paused = !r.paused
}

// now uses the backend clock when there is one and a nominal 60Hz otherwise.
func (r *clearRenderer) now(frame int) float64 {
	if r.surface == nil {
		return float64(frame) / 60.0
	}
	return r.surface.Time()
}

// advance moves the fade clock and returns the colour for this frame.
func (r *clearRenderer) advance(frame int) [3]float32 {
	now := r.now(frame)
	if !r.paused {
		r.elapsed += now - r.last
	}
	r.last = now

	var (
		mouse         [4]float32
		width, height int
	)
	if r.surface != nil {
		mouse = r.surface.GetMouseInput()
		width, height = r.surface.GetFramebufferSize()
	}
	return clearColor(r.elapsed, mouse, width, height)
}

// clearColor cycles through the hue wheel with t in seconds. mouse is laid
// out as returned by GetMouseInput: positive click coordinates mean the left
// button is held.
func clearColor(t float64, mouse [4]float32, width, height int) [3]float32 {
	c := [3]float32{
		float32(0.5 + 0.5*math.Sin(t)),
		float32(0.5 + 0.5*math.Sin(t+2.1)),
		float32(0.5 + 0.5*math.Sin(t+4.2)),
	}
	held := mouse[2] > 0 || mouse[3] > 0
	if !held || width <= 0 || height <= 0 {
		return c
	}
	mix := mouse[0] / float32(width)
	mix = float32(math.Max(0, math.Min(1, float64(mix))))
	for i := range c {
		c[i] += (1 - c[i]) * mix
	}
	return c
}

func (r *clearRenderer) Render(frame int) {
	c := r.advance(frame)
	if r.surface != nil {
		w, h := r.surface.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
	}
	gl.ClearColor(c[0], c[1], c[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *clearRenderer) Continue() bool { return true }

func (r *clearRenderer) Cleanup() {}

func newManager(backend string) (*graphics.Manager, error) {
	switch backend {
	case "glfw":
		return glfwcontext.NewManager(), nil
	case "sdl", "sdl2":
		return sdlcontext.NewManager(), nil
	case "headless", "egl":
		return headless.NewManager(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}

// GLFW and SDL both require the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Bind(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("OpenGL window demo")
		flag.PrintDefaults()
		return
	}

	var (
		cfg graphics.DisplayConfiguration
		err error
	)
	if *opts.ConfigFile != "" {
		cfg, err = options.LoadFile(*opts.ConfigFile)
	} else {
		cfg, err = options.LoadDefault()
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := opts.Apply(&cfg); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	wm, err := newManager(*opts.Backend)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Opening %dx%d window on %s, OpenGL %s %s", cfg.Width, cfg.Height, *opts.Backend, cfg.Version(), cfg.EffectiveProfile())
	frames, err := app.Run(ctx, wm, cfg, &clearRenderer{}, app.WithMaxFrames(*opts.Frames))
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}
	log.Printf("Presented %d frames", frames)
}
