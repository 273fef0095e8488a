package graphics

import (
	"errors"
	"log"
	"runtime"
	"sync"
)

// State is the lifecycle state of a Manager.
type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

var logger = log.Default()

// SetLogger replaces the logger used for diagnostics by the manager and the
// backends. A nil logger restores the standard logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	logger = l
}

// Logger returns the logger set with SetLogger.
func Logger() *log.Logger {
	return logger
}

// The windowing libraries keep process-wide state, so only one Manager may
// be ready at a time.
var (
	processMu    sync.Mutex
	processOwner *Manager
)

func acquireProcess(m *Manager) bool {
	processMu.Lock()
	defer processMu.Unlock()
	if processOwner != nil {
		return false
	}
	processOwner = m
	return true
}

func releaseProcess(m *Manager) {
	processMu.Lock()
	defer processMu.Unlock()
	if processOwner == m {
		processOwner = nil
	}
}

var errNilHandle = errors.New("backend returned no window")

// Manager implements WindowManager on top of a Platform. All methods must be
// called from the goroutine that called Initialize; Initialize locks it to
// its OS thread until Destroy.
type Manager struct {
	platform Platform
	state    State
	handle   Handle
	quitKey  Key

	alreadyDestroyed bool
}

var _ WindowManager = (*Manager)(nil)

func NewManager(p Platform) *Manager {
	return &Manager{platform: p}
}

func (m *Manager) State() State {
	return m.state
}

// Handle returns the current window, or nil when not ready.
func (m *Manager) Handle() Handle {
	return m.handle
}

func (m *Manager) Initialize(cfg DisplayConfiguration) (Handle, error) {
	if m.state == StateReady {
		return nil, ErrAlreadyInitialized
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !acquireProcess(m) {
		return nil, ErrAlreadyInitialized
	}
	runtime.LockOSThread()

	name := m.platform.Name()
	if err := m.platform.Init(); err != nil {
		logger.Printf("%s: failed to initialize: %v", name, err)
		m.rollback(nil, false)
		return nil, &InitError{Kind: ErrSubsystemUnavailable, Backend: name, Err: err}
	}

	m.platform.ApplyHints(cfg)

	h, err := m.platform.CreateWindow(cfg)
	if err == nil && h == nil {
		err = errNilHandle
	}
	if err != nil {
		logger.Printf("%s: failed to create a %s %s window, the driver may not support this version: %v",
			name, cfg.Version(), cfg.EffectiveProfile(), err)
		m.rollback(nil, true)
		return nil, &InitError{Kind: ErrWindowCreationFailed, Backend: name, Err: err}
	}

	m.platform.MakeCurrent(h)
	m.platform.EnableStickyKeys(h)

	if err := m.platform.LoadExtensions(); err != nil {
		logger.Printf("%s: failed to load OpenGL entry points: %v", name, err)
		m.rollback(h, true)
		return nil, &InitError{Kind: ErrExtensionLoadFailed, Backend: name, Err: err}
	}

	m.platform.SetSwapInterval(cfg.SwapInterval)

	m.handle = h
	m.quitKey = cfg.EffectiveQuitKey()
	m.state = StateReady
	m.alreadyDestroyed = false
	logger.Printf("%s: %dx%d window %q ready", name, cfg.Width, cfg.Height, cfg.Title)
	return h, nil
}

// rollback undoes a partial Initialize.
func (m *Manager) rollback(h Handle, terminate bool) {
	if h != nil {
		m.platform.DestroyWindow(h)
	}
	if terminate {
		m.platform.Terminate()
	}
	runtime.UnlockOSThread()
	releaseProcess(m)
}

func (m *Manager) Present(h Handle) {
	if !m.owns(h) {
		return
	}
	m.platform.SwapBuffers(h)
}

func (m *Manager) PollAndCheckContinue(h Handle, continueRequested bool) bool {
	if !m.owns(h) {
		return false
	}
	if m.platform.KeyPressed(h, m.quitKey) || m.platform.ShouldClose(h) {
		return false
	}
	m.platform.PollEvents()
	return continueRequested
}

// KeyPressed reports the latched state of key on the current window.
func (m *Manager) KeyPressed(key Key) bool {
	if m.state != StateReady {
		return false
	}
	return m.platform.KeyPressed(m.handle, key)
}

// Destroy is a no-op unless the manager is ready and h is its window.
func (m *Manager) Destroy(h Handle) {
	if m.alreadyDestroyed || !m.owns(h) {
		return
	}
	m.platform.DestroyWindow(h)
	m.platform.Terminate()
	m.handle = nil
	m.state = StateUninitialized
	m.alreadyDestroyed = true
	runtime.UnlockOSThread()
	releaseProcess(m)
	logger.Printf("%s: terminated", m.platform.Name())
}

func (m *Manager) owns(h Handle) bool {
	return m.state == StateReady && h != nil && h == m.handle
}
