package rgui

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadConfig reads a TOML window configuration from path. Keys absent from
// the file keep their DefaultConfig values.
func LoadConfig(path string) (WindowConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return WindowConfig{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return WindowConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes a TOML window configuration. Unknown keys are an error.
//
//	title = "demo"
//	width = 1024
//	height = 768
//	renderer = "software"
//	keyboard_mode = "raw"
//	background = "#202020"
//
//	[font]
//	face = "Go Mono"
//	size = 16
func DecodeConfig(r io.Reader) (WindowConfig, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return WindowConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return WindowConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// EncodeConfig writes cfg as TOML.
func EncodeConfig(w io.Writer, cfg WindowConfig) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
