package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/richinsley/glwindow/graphics"
	"gopkg.in/yaml.v3"
)

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "glwindow", "config.yaml"), nil
}

// LoadFile reads a display configuration from path. Keys missing from the
// file keep their default values. The format follows the extension: .yaml,
// .yml or .toml.
func LoadFile(path string) (graphics.DisplayConfiguration, error) {
	cfg := graphics.DefaultDisplayConfiguration()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Decode(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file at DefaultConfigPath, falling back to the
// defaults when it does not exist.
func LoadDefault() (graphics.DisplayConfiguration, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return graphics.DefaultDisplayConfiguration(), err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return graphics.DefaultDisplayConfiguration(), nil
	}
	return LoadFile(path)
}

// Decode unmarshals data in the format named by ext over cfg.
func Decode(data []byte, ext string, cfg *graphics.DisplayConfiguration) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document decodes to io.EOF
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	}
	return fmt.Errorf("unsupported config format %q", ext)
}
