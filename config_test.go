package rgui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/rgui"
)

func TestDefaultConfig(t *testing.T) {
	cfg := rgui.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, rgui.KeyboardRawAndTranslated, cfg.KeyboardMode)
	assert.Equal(t, rgui.BackendOpenGL, cfg.Renderer)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestConfigOptions(t *testing.T) {
	cfg := rgui.NewConfig(
		rgui.WithTitle("demo"),
		rgui.WithSize(1024, 768),
		rgui.WithFont("Go Mono", 14),
		rgui.WithBackend(rgui.BackendSoftware),
		rgui.WithKeyboardMode(rgui.KeyboardTranslated),
		rgui.WithBackground(rgui.White),
		rgui.WithResizable(false),
	)
	assert.Equal(t, rgui.WindowConfig{
		Title:        "demo",
		Width:        1024,
		Height:       768,
		Font:         rgui.FontConfig{Face: "Go Mono", Size: 14},
		Renderer:     rgui.BackendSoftware,
		KeyboardMode: rgui.KeyboardTranslated,
		Background:   rgui.White,
	}, cfg)
}

func TestConfigValidate(t *testing.T) {
	assert.Error(t, rgui.NewConfig(rgui.WithSize(-1, 10)).Validate())
	assert.Error(t, rgui.NewConfig(rgui.WithFont("Go", 0)).Validate())
	assert.Error(t, rgui.NewConfig(rgui.WithFont("", 12)).Validate())
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := rgui.DecodeConfig(strings.NewReader(`
title = "demo"
width = 1024
renderer = "software"
keyboard_mode = "raw"
background = "#ff0000"

[font]
face = "Go Mono"
size = 16
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height, "absent keys keep defaults")
	assert.Equal(t, rgui.BackendSoftware, cfg.Renderer)
	assert.Equal(t, rgui.KeyboardRaw, cfg.KeyboardMode)
	assert.Equal(t, rgui.Red, cfg.Background)
	assert.Equal(t, rgui.FontConfig{Face: "Go Mono", Size: 16}, cfg.Font)
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":  `colour = "red"`,
		"bad mode":     `keyboard_mode = "cooked"`,
		"bad backend":  `renderer = "vulkan"`,
		"bad color":    `background = "#12"`,
		"invalid size": `width = 0`,
		"syntax":       `title = `,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := rgui.DecodeConfig(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestEncodeConfigRoundTrip(t *testing.T) {
	want := rgui.NewConfig(rgui.WithTitle("round trip"), rgui.WithKeyboardMode(rgui.KeyboardTranslated))
	var buf bytes.Buffer
	require.NoError(t, rgui.EncodeConfig(&buf, want))
	assert.Contains(t, buf.String(), `keyboard_mode = 'translated'`)

	got, err := rgui.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \"from file\"\n"), 0o644))

	cfg, err := rgui.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from file", cfg.Title)

	_, err = rgui.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestKeyboardInputModeText(t *testing.T) {
	for _, m := range []rgui.KeyboardInputMode{rgui.KeyboardRaw, rgui.KeyboardTranslated, rgui.KeyboardRawAndTranslated} {
		text, err := m.MarshalText()
		require.NoError(t, err)
		var got rgui.KeyboardInputMode
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, m, got)
	}
}

func TestColorText(t *testing.T) {
	var c rgui.Color
	require.NoError(t, c.UnmarshalText([]byte("#fff")))
	assert.Equal(t, rgui.White, c)
	require.NoError(t, c.UnmarshalText([]byte("#00000000")))
	assert.Equal(t, rgui.Transparent, c)

	text, err := rgui.Blue.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#0000ffff", string(text))
}
