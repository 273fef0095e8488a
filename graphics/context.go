package graphics

// Handle is an opaque reference to a platform window owned by a backend.
// A nil Handle is never valid.
type Handle interface {
	Backend() string
}

// WindowManager owns the lifecycle of one window and its graphics context.
type WindowManager interface {
	// Initialize brings up the windowing subsystem, creates the window and
	// makes its context current on the calling thread.
	Initialize(cfg DisplayConfiguration) (Handle, error)
	// Present swaps the back buffer to the front.
	Present(h Handle)
	// PollAndCheckContinue returns false when the quit key is latched or the
	// window was asked to close. Otherwise it drains pending events and
	// returns continueRequested unchanged.
	PollAndCheckContinue(h Handle, continueRequested bool) bool
	// Destroy releases the window, the context and the subsystem.
	Destroy(h Handle)
}

// Platform is implemented once per windowing technology. Manager drives it in
// a fixed order and owns the rollback on failure, so implementations only
// wrap the native calls.
type Platform interface {
	Name() string
	Init() error
	Terminate()
	ApplyHints(cfg DisplayConfiguration)
	CreateWindow(cfg DisplayConfiguration) (Handle, error)
	MakeCurrent(h Handle)
	EnableStickyKeys(h Handle)
	// LoadExtensions resolves the graphics API entry points for the current context.
	LoadExtensions() error
	SetSwapInterval(interval int)
	SwapBuffers(h Handle)
	// KeyPressed reports the latched state of key and consumes the latch.
	KeyPressed(h Handle, key Key) bool
	ShouldClose(h Handle) bool
	PollEvents()
	DestroyWindow(h Handle)
}

// Surface is optionally implemented by handles backed by a visible window.
type Surface interface {
	GetFramebufferSize() (int, int)
	Time() float64
	// GetMouseInput returns the current mouse state: x, y, clickX, clickY
	GetMouseInput() [4]float32
}
