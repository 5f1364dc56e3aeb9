package rgui

import "image/color"

// Color is a non-premultiplied color with components in [0, 1].
// Values outside the range are not checked; backends clamp when packing.
type Color struct {
	R, G, B, A float32
}

// Named colors.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	Transparent = Color{0, 0, 0, 0}
)

// RGBA creates a color from float components (0.0-1.0).
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Packed returns the color packed as 0xAABBGGRR, the byte order OpenGL reads
// for a normalized uint8x4 vertex attribute.
func (c Color) Packed() uint32 {
	r, g, b, a := c.bytes()
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Opaque reports whether the alpha component is at least 1.
func (c Color) Opaque() bool {
	return c.A >= 1
}

func (c Color) bytes() (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

// unit8 maps [0, 1] to [0, 255], clamping out of range values.
func unit8(v float32) uint8 {
	return uint8(clampf(v, 0, 1)*255 + 0.5)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
