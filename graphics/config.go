package graphics

import (
	"fmt"
	"strings"
)

// Profile selects the OpenGL context profile.
type Profile int

const (
	ProfileCore Profile = iota
	ProfileCompat
	ProfileAny
)

var profileNames = map[Profile]string{
	ProfileCore:   "core",
	ProfileCompat: "compat",
	ProfileAny:    "any",
}

func (p Profile) String() string {
	if s, ok := profileNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

// ParseProfile accepts "core", "compat" (or "compatibility") and "any".
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "core":
		return ProfileCore, nil
	case "compat", "compatibility":
		return ProfileCompat, nil
	case "any", "":
		return ProfileAny, nil
	}
	return 0, fmt.Errorf("%w: unknown profile %q", ErrInvalidConfiguration, s)
}

func (p Profile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Profile) UnmarshalText(text []byte) error {
	v, err := ParseProfile(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// DisplayConfiguration describes the window and context requested from a
// backend. Hints are requests: the backend may reject combinations the
// driver does not support.
type DisplayConfiguration struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Title      string `yaml:"title" toml:"title"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	Resizable  bool   `yaml:"resizable" toml:"resizable"`

	// Samples is the multisample count; 0 disables multisampling.
	// A zero Major and Minor leaves the version to the backend default, in
	// which case Profile is not requested either.
	Samples int     `yaml:"samples" toml:"samples"`
	Major   int     `yaml:"major" toml:"major"`
	Minor   int     `yaml:"minor" toml:"minor"`
	Profile Profile `yaml:"profile" toml:"profile"`

	// SwapInterval is the number of vertical blanks to wait per Present.
	SwapInterval int `yaml:"swap_interval" toml:"swap_interval"`
	// QuitKey stops the loop when pressed. KeyUnknown means KeyEscape.
	QuitKey Key `yaml:"quit_key" toml:"quit_key"`
}

// DefaultDisplayConfiguration returns an 800x600 windowed configuration
// requesting a 4.4 core context with 4x multisampling.
func DefaultDisplayConfiguration() DisplayConfiguration {
	return DisplayConfiguration{
		Width:        800,
		Height:       600,
		Title:        "OpenGL",
		Samples:      4,
		Major:        4,
		Minor:        4,
		Profile:      ProfileCore,
		SwapInterval: 1,
		QuitKey:      KeyEscape,
	}
}

// Version returns the requested API version as "major.minor", or "default"
// when no version is requested.
func (c DisplayConfiguration) Version() string {
	if !c.HasVersion() {
		return "default"
	}
	return fmt.Sprintf("%d.%d", c.Major, c.Minor)
}

// HasVersion reports whether a context version is requested.
func (c DisplayConfiguration) HasVersion() bool {
	return c.Major != 0 || c.Minor != 0
}

// EffectiveProfile is the profile to request: ProfileAny when no version is
// requested.
func (c DisplayConfiguration) EffectiveProfile() Profile {
	if !c.HasVersion() {
		return ProfileAny
	}
	return c.Profile
}

// EffectiveQuitKey returns QuitKey, defaulting to KeyEscape.
func (c DisplayConfiguration) EffectiveQuitKey() Key {
	if c.QuitKey == KeyUnknown {
		return KeyEscape
	}
	return c.QuitKey
}

// Validate checks values that no backend could accept.
func (c DisplayConfiguration) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidConfiguration, c.Width, c.Height)
	case c.Major < 0 || c.Minor < 0 || (c.Major == 0 && c.Minor != 0):
		return fmt.Errorf("%w: invalid version %d.%d", ErrInvalidConfiguration, c.Major, c.Minor)
	case c.Samples < 0:
		return fmt.Errorf("%w: samples must not be negative, got %d", ErrInvalidConfiguration, c.Samples)
	case c.SwapInterval < 0:
		return fmt.Errorf("%w: swap interval must not be negative, got %d", ErrInvalidConfiguration, c.SwapInterval)
	}
	if _, ok := profileNames[c.Profile]; !ok {
		return fmt.Errorf("%w: unknown profile %d", ErrInvalidConfiguration, int(c.Profile))
	}
	return nil
}
