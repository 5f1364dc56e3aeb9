package rgui

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyboardInputMode selects which keyboard events a window dispatches.
type KeyboardInputMode int

const (
	// KeyboardRawAndTranslated dispatches KeyDown/KeyUp and Character events.
	// For one key press the KeyDown always precedes its Characters.
	KeyboardRawAndTranslated KeyboardInputMode = iota
	// KeyboardRaw dispatches only KeyDown/KeyUp events.
	KeyboardRaw
	// KeyboardTranslated dispatches only Character events, as produced by the
	// OS from the key and the keyboard state (dead keys, input methods).
	KeyboardTranslated
)

// Modifier keys (Shift, Control, Alt) always produce KeyDown/KeyUp, whatever
// the mode, because InputState tracking depends on them.

func (m KeyboardInputMode) raw() bool {
	return m == KeyboardRaw || m == KeyboardRawAndTranslated
}

func (m KeyboardInputMode) translated() bool {
	return m == KeyboardTranslated || m == KeyboardRawAndTranslated
}

func (m KeyboardInputMode) String() string {
	switch m {
	case KeyboardRawAndTranslated:
		return "raw+translated"
	case KeyboardRaw:
		return "raw"
	case KeyboardTranslated:
		return "translated"
	default:
		return "KeyboardInputMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m KeyboardInputMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *KeyboardInputMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "raw+translated", "rawandtranslated", "both", "":
		*m = KeyboardRawAndTranslated
	case "raw":
		*m = KeyboardRaw
	case "translated":
		*m = KeyboardTranslated
	default:
		return fmt.Errorf("unknown keyboard input mode %q", text)
	}
	return nil
}

// Backend selects the renderer implementation.
type Backend int

const (
	// BackendOpenGL renders with OpenGL 4.1.
	BackendOpenGL Backend = iota
	// BackendSoftware renders on the CPU and presents the frame to the window.
	BackendSoftware
)

func (b Backend) String() string {
	switch b {
	case BackendOpenGL:
		return "opengl"
	case BackendSoftware:
		return "software"
	default:
		return "Backend(" + strconv.Itoa(int(b)) + ")"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backend) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "opengl", "gl", "":
		*b = BackendOpenGL
	case "software", "cpu":
		*b = BackendSoftware
	default:
		return fmt.Errorf("unknown renderer backend %q", text)
	}
	return nil
}

// FontConfig selects the renderer's default text format.
type FontConfig struct {
	// Face is a built-in family name ("Go", "Go Mono", "Go Bold", ...) or a
	// path to a TrueType/OpenType file.
	Face string `toml:"face"`
	// Size is the font size in pixels.
	Size float32 `toml:"size"`
}

// WindowConfig is the immutable input to window construction.
type WindowConfig struct {
	Title        string            `toml:"title"`
	Width        int               `toml:"width"`
	Height       int               `toml:"height"`
	Resizable    bool              `toml:"resizable"`
	Font         FontConfig        `toml:"font"`
	Renderer     Backend           `toml:"renderer"`
	KeyboardMode KeyboardInputMode `toml:"keyboard_mode"`
	// Background is copied by NewWindow into every RenderEventHandler
	// reachable through RootEventHandler and DefaultInputHandler.
	Background Color `toml:"background"`
}

// DefaultConfig returns the default window configuration.
func DefaultConfig() WindowConfig {
	return WindowConfig{
		Title:        "rgui",
		Width:        800,
		Height:       600,
		Resizable:    true,
		Font:         FontConfig{Face: "Go", Size: 18},
		Renderer:     BackendOpenGL,
		KeyboardMode: KeyboardRawAndTranslated,
		Background:   Black,
	}
}

// Validate reports configuration errors.
func (c WindowConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("invalid font size %v", c.Font.Size)
	}
	if c.Font.Face == "" {
		return fmt.Errorf("empty font face")
	}
	return nil
}

// ConfigOption configures a WindowConfig.
type ConfigOption func(*WindowConfig)

// NewConfig returns DefaultConfig with opts applied.
func NewConfig(opts ...ConfigOption) WindowConfig {
	cfg := DefaultConfig()
	cfg.Apply(opts...)
	return cfg
}

// Apply applies opts to c.
func (c *WindowConfig) Apply(opts ...ConfigOption) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithTitle sets the window title.
func WithTitle(title string) ConfigOption {
	return func(c *WindowConfig) { c.Title = title }
}

// WithSize sets the initial client size.
func WithSize(width, height int) ConfigOption {
	return func(c *WindowConfig) { c.Width, c.Height = width, height }
}

// WithFont sets the default text format.
func WithFont(face string, size float32) ConfigOption {
	return func(c *WindowConfig) { c.Font = FontConfig{Face: face, Size: size} }
}

// WithBackend selects the renderer backend.
func WithBackend(b Backend) ConfigOption {
	return func(c *WindowConfig) { c.Renderer = b }
}

// WithKeyboardMode sets the keyboard input mode.
func WithKeyboardMode(m KeyboardInputMode) ConfigOption {
	return func(c *WindowConfig) { c.KeyboardMode = m }
}

// WithBackground sets the clear color.
func WithBackground(col Color) ConfigOption {
	return func(c *WindowConfig) { c.Background = col }
}

// WithResizable sets whether the user can resize the window.
func WithResizable(v bool) ConfigOption {
	return func(c *WindowConfig) { c.Resizable = v }
}

// MarshalText encodes the color as #RRGGBBAA.
func (c Color) MarshalText() ([]byte, error) {
	r, g, b, a := c.bytes()
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)), nil
}

// UnmarshalText parses #RGB, #RRGGBB or #RRGGBBAA.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return fmt.Errorf("invalid color %q", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	*c = Color{
		R: float32(v>>24&0xff) / 255,
		G: float32(v>>16&0xff) / 255,
		B: float32(v>>8&0xff) / 255,
		A: float32(v&0xff) / 255,
	}
	return nil
}
