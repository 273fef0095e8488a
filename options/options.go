package options

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/richinsley/glwindow/graphics"
)

// WindowOptions holds the command line flags. Only flags the user actually
// set are applied over a configuration.
type WindowOptions struct {
	ConfigFile   *string
	Backend      *string
	Width        *int
	Height       *int
	Title        *string
	Fullscreen   *bool
	Resizable    *bool
	Samples      *int
	Version      *string
	Profile      *string
	SwapInterval *int
	QuitKey      *string
	Frames       *int
	Help         *bool

	fs *flag.FlagSet
}

// Bind registers the flags on fs.
func Bind(fs *flag.FlagSet) *WindowOptions {
	def := graphics.DefaultDisplayConfiguration()
	return &WindowOptions{
		ConfigFile:   fs.String("config", "", "Path to a YAML or TOML display configuration"),
		Backend:      fs.String("backend", "glfw", "Windowing backend: glfw, sdl or headless"),
		Width:        fs.Int("width", def.Width, "Window width"),
		Height:       fs.Int("height", def.Height, "Window height"),
		Title:        fs.String("title", def.Title, "Window title"),
		Fullscreen:   fs.Bool("fullscreen", def.Fullscreen, "Open fullscreen on the primary monitor"),
		Resizable:    fs.Bool("resizable", def.Resizable, "Allow the window to be resized"),
		Samples:      fs.Int("samples", def.Samples, "Multisample count, 0 disables antialiasing"),
		Version:      fs.String("gl", def.Version(), "Requested OpenGL version (major.minor)"),
		Profile:      fs.String("profile", def.Profile.String(), "OpenGL profile: core, compat or any"),
		SwapInterval: fs.Int("swap", def.SwapInterval, "Swap interval, 0 disables vsync"),
		QuitKey:      fs.String("quit", def.QuitKey.String(), "Key that closes the window"),
		Frames:       fs.Int("frames", 0, "Stop after this many frames, 0 runs until closed"),
		Help:         fs.Bool("help", false, "Show help message"),
		fs:           fs,
	}
}

// Apply overlays every flag that was set on the command line onto cfg.
func (o *WindowOptions) Apply(cfg *graphics.DisplayConfiguration) error {
	var err error
	o.fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "width":
			cfg.Width = *o.Width
		case "height":
			cfg.Height = *o.Height
		case "title":
			cfg.Title = *o.Title
		case "fullscreen":
			cfg.Fullscreen = *o.Fullscreen
		case "resizable":
			cfg.Resizable = *o.Resizable
		case "samples":
			cfg.Samples = *o.Samples
		case "gl":
			cfg.Major, cfg.Minor, err = ParseVersion(*o.Version)
		case "profile":
			cfg.Profile, err = graphics.ParseProfile(*o.Profile)
		case "swap":
			cfg.SwapInterval = *o.SwapInterval
		case "quit":
			cfg.QuitKey, err = graphics.ParseKey(*o.QuitKey)
		}
	})
	return err
}

// ParseVersion parses "major.minor". A bare major version means minor 0, and
// "default" leaves the version to the backend.
func ParseVersion(s string) (major, minor int, err error) {
	if strings.EqualFold(strings.TrimSpace(s), "default") {
		return 0, 0, nil
	}
	majorStr, minorStr, found := strings.Cut(strings.TrimSpace(s), ".")
	major, err = strconv.Atoi(majorStr)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad version %q", graphics.ErrInvalidConfiguration, s)
	}
	if found {
		minor, err = strconv.Atoi(minorStr)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad version %q", graphics.ErrInvalidConfiguration, s)
		}
	}
	return major, minor, nil
}
