package graphics

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key independently of the backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyD
	KeyQ
	KeyS
	KeyW
	KeyF1
	KeyF10
	KeyF12
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyA:         "a",
	KeyD:         "d",
	KeyQ:         "q",
	KeyS:         "s",
	KeyW:         "w",
	KeyF1:        "f1",
	KeyF10:       "f10",
	KeyF12:       "f12",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey looks a key up by its lower-case name. "esc" is accepted for escape.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "esc" {
		return KeyEscape, nil
	}
	for k, n := range keyNames {
		if n == name && k != KeyUnknown {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("%w: unknown key %q", ErrInvalidConfiguration, s)
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	v, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
