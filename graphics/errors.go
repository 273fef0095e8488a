package graphics

import (
	"errors"
	"fmt"
)

var (
	ErrSubsystemUnavailable = errors.New("windowing subsystem unavailable")
	ErrWindowCreationFailed = errors.New("window creation failed")
	ErrExtensionLoadFailed  = errors.New("extension loading failed")
	ErrInvalidConfiguration = errors.New("invalid display configuration")
	ErrAlreadyInitialized   = errors.New("window manager already initialized")
)

// InitError is returned by Initialize when a backend step fails. Kind is one
// of the Err sentinels above and matches with errors.Is; Err is the backend
// cause.
type InitError struct {
	Kind    error
	Backend string
	Err     error
}

func (e *InitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Backend, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Backend, e.Kind, e.Err)
}

func (e *InitError) Is(target error) bool {
	return target == e.Kind
}

func (e *InitError) Unwrap() error {
	return e.Err
}
