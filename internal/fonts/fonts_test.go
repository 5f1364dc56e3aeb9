package fonts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/rgui/internal/fonts"
)

func TestLoadBuiltin(t *testing.T) {
	data, err := fonts.Load("Go Mono")
	require.NoError(t, err)
	assert.Equal(t, gomono.TTF, data)

	data, err = fonts.Load("")
	require.NoError(t, err)
	assert.Equal(t, goregular.TTF, data)

	assert.Contains(t, fonts.Families(), "go bold")
}

func TestLoadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	data, err := fonts.Load(path)
	require.NoError(t, err)
	assert.Len(t, data, len(goregular.TTF))

	_, err = fonts.Load(filepath.Join(t.TempDir(), "missing.otf"))
	assert.Error(t, err)
}

func TestLoadUnknownFace(t *testing.T) {
	_, err := fonts.Load("Comic Sans")
	assert.ErrorContains(t, err, "unknown font face")
}

func TestAtlas(t *testing.T) {
	a, err := fonts.NewAtlas(goregular.TTF, 16)
	require.NoError(t, err)
	defer a.Close()

	assert.Positive(t, a.Ascent())
	assert.GreaterOrEqual(t, a.LineHeight(), a.Ascent())
	assert.True(t, a.HasGlyph('A'))
	assert.True(t, a.HasGlyph('é'))
	assert.False(t, a.HasGlyph('世'))

	g, ok := a.Glyph('A')
	require.True(t, ok)
	assert.Positive(t, g.W)
	assert.Positive(t, g.Advance)
	assert.Less(t, g.U0, g.U1)

	fb, ok := a.Glyph('世')
	assert.False(t, ok)
	q, _ := a.Glyph('?')
	assert.Equal(t, q, fb)

	space, ok := a.Glyph(' ')
	require.True(t, ok)
	assert.Zero(t, space.W)
	assert.Positive(t, space.Advance)

	b := a.Image.Bounds()
	assert.Equal(t, 512, b.Dx())
	assert.Equal(t, 0, b.Dy()&(b.Dy()-1), "atlas height is a power of two")
}

func TestAtlasInvalidInput(t *testing.T) {
	_, err := fonts.NewAtlas(goregular.TTF, 0)
	assert.Error(t, err)
	_, err = fonts.NewAtlas([]byte("not a font"), 12)
	assert.Error(t, err)
}

func TestQuadsLayout(t *testing.T) {
	a, err := fonts.NewAtlas(goregular.TTF, 20)
	require.NoError(t, err)
	defer a.Close()

	quads := a.Quads("Hi there", 10, 5)
	// The space has no coverage.
	require.Len(t, quads, 7)
	for _, q := range quads {
		assert.GreaterOrEqual(t, q.Y0, float32(5))
		assert.LessOrEqual(t, q.Y1, 5+a.LineHeight())
	}
	assert.GreaterOrEqual(t, quads[0].X0, float32(10))
	assert.Less(t, quads[0].X0, quads[1].X0)

	lines := a.Quads("A\nA", 0, 0)
	require.Len(t, lines, 2)
	assert.InDelta(t, a.LineHeight(), lines[1].Y0-lines[0].Y0, 1e-3)
	assert.Equal(t, lines[0].X0, lines[1].X0)

	w, h := a.Measure("A\nAA")
	w1, _ := a.Measure("AA")
	assert.Equal(t, w1, w)
	assert.Equal(t, 2*a.LineHeight(), h)
}
