// Package app runs the frame loop around a graphics.WindowManager.
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/richinsley/glwindow/graphics"
)

// Renderer owns the draw calls. Init runs after the context is current and
// Cleanup before it is destroyed.
type Renderer interface {
	Init(h graphics.Handle) error
	Render(frame int)
	// Continue is passed to PollAndCheckContinue each frame.
	Continue() bool
	Cleanup()
}

// RendererFunc adapts a render function with no setup or teardown.
type RendererFunc func(frame int)

func (f RendererFunc) Init(graphics.Handle) error { return nil }

func (f RendererFunc) Render(frame int) { f(frame) }

func (f RendererFunc) Continue() bool { return true }

func (f RendererFunc) Cleanup() {}

type Option func(*runOptions)

type runOptions struct {
	maxFrames int
}

// WithMaxFrames stops the loop after n frames. Zero means no limit.
func WithMaxFrames(n int) Option {
	return func(o *runOptions) { o.maxFrames = n }
}

// Run initializes wm, renders and presents until the window asks to stop, the
// renderer declines to continue, ctx is done or the frame limit is hit. Destroy
// is called on every path once Initialize has succeeded. It returns the number
// of frames presented.
func Run(ctx context.Context, wm graphics.WindowManager, cfg graphics.DisplayConfiguration, r Renderer, opts ...Option) (int, error) {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	h, err := wm.Initialize(cfg)
	if err != nil {
		return 0, err
	}
	defer wm.Destroy(h)

	if err := r.Init(h); err != nil {
		return 0, fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer r.Cleanup()

	frame := 0
	for wm.PollAndCheckContinue(h, r.Continue()) {
		if ctx.Err() != nil {
			log.Printf("render loop cancelled after %d frames", frame)
			break
		}
		if o.maxFrames > 0 && frame >= o.maxFrames {
			break
		}
		r.Render(frame)
		wm.Present(h)
		frame++
	}
	return frame, nil
}
