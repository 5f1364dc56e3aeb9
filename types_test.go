package rgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/rgui"
)

func TestAffineComposition(t *testing.T) {
	parent := rgui.Translate(200, 200)
	child := parent.Mul(rgui.Translate(10, 10))
	assert.Equal(t, rgui.Translate(210, 210), child)
	assert.Equal(t, rgui.Vec2{X: 215, Y: 220}, child.Apply(rgui.Vec2{X: 5, Y: 10}))
	assert.True(t, rgui.Identity().Mul(rgui.Identity()).IsIdentity())

	scale := rgui.Affine{A: 2, E: 3}
	// Translation is applied first, then the scale.
	assert.Equal(t, rgui.Vec2{X: 2, Y: 3}, scale.Mul(rgui.Translate(1, 1)).Apply(rgui.Vec2{}))
	assert.Equal(t, rgui.Vec2{X: 4, Y: 3}, scale.ApplyVector(rgui.Vec2{X: 2, Y: 1}))
}

func TestAffineBounds(t *testing.T) {
	r := rgui.Rect{X: 0, Y: 0, W: 10, H: 20}
	assert.Equal(t, rgui.Rect{X: 5, Y: 5, W: 10, H: 20}, rgui.Translate(5, 5).Bounds(r))

	// 90 degree rotation swaps the extents.
	rot := rgui.Affine{A: 0, B: -1, D: 1, E: 0}
	assert.Equal(t, rgui.Rect{X: -20, Y: 0, W: 20, H: 10}, rot.Bounds(r))
}

func TestRectIntersect(t *testing.T) {
	a := rgui.Rect{X: 0, Y: 0, W: 100, H: 100}
	b := rgui.Rect{X: 50, Y: 60, W: 100, H: 100}
	assert.True(t, a.Intersects(b))
	assert.Equal(t, rgui.Rect{X: 50, Y: 60, W: 50, H: 40}, a.Intersect(b))

	c := rgui.Rect{X: 200, Y: 200, W: 10, H: 10}
	assert.False(t, a.Intersects(c))
	got := a.Intersect(c)
	assert.Zero(t, got.W)
	assert.Zero(t, got.H)

	assert.True(t, a.Contains(rgui.Vec2{X: 0, Y: 99}))
	assert.False(t, a.Contains(rgui.Vec2{X: 100, Y: 0}))
}

func TestSizeEmpty(t *testing.T) {
	assert.True(t, rgui.Size{W: 0, H: 10}.Empty())
	assert.False(t, rgui.Size{W: 1, H: 1}.Empty())
}

func TestColorPacking(t *testing.T) {
	assert.Equal(t, uint32(0xff0000ff), rgui.Red.Packed())
	assert.Equal(t, uint32(0xffff0000), rgui.Blue.Packed())
	assert.Equal(t, uint8(255), rgui.RGBA(2, -1, 0.5, 1).NRGBA().R)
	assert.Equal(t, uint8(0), rgui.RGBA(2, -1, 0.5, 1).NRGBA().G)
	assert.Equal(t, uint8(128), rgui.RGBA(2, -1, 0.5, 1).NRGBA().B)
	assert.False(t, rgui.Transparent.Opaque())
}

func TestKeyIDs(t *testing.T) {
	assert.Equal(t, "A", rgui.NamedKey(rgui.KeyA).String())
	assert.Equal(t, "7", rgui.NamedKey(rgui.Key7).String())
	assert.Equal(t, "F12", rgui.NamedKey(rgui.KeyF12).String())
	assert.Equal(t, "Esc", rgui.NamedKey(rgui.KeyEscape).String())
	assert.Equal(t, "Up", rgui.NamedKey(rgui.KeyArrowUp).String())
	assert.Equal(t, "Down", rgui.NamedKey(rgui.KeyArrowDown).String())
	assert.Equal(t, "Unknown(226)", rgui.UnknownKey(226).String())

	assert.True(t, rgui.NamedKey(rgui.KeyControl).IsModifier())
	assert.False(t, rgui.NamedKey(rgui.KeyTab).IsModifier())
	assert.True(t, rgui.UnknownKey(1).IsUnknown())
	assert.NotEqual(t, rgui.UnknownKey(1), rgui.UnknownKey(2))
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = &rgui.DrawError{Op: "end draw", Err: rgui.ErrDeviceLost}
	assert.True(t, rgui.IsDeviceLost(err))
	assert.False(t, rgui.IsDeviceLost(&rgui.ResourceError{Op: "render target", Err: assert.AnError}))
	assert.Contains(t, (&rgui.PlatformError{Op: "create window", Err: assert.AnError}).Error(), "create window")
}
