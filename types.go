package rgui

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Len returns the length of the vector.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Size is a render target size in pixels.
type Size struct {
	W, H uint32
}

// Empty reports whether either dimension is zero.
func (s Size) Empty() bool {
	return s.W == 0 || s.H == 0
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlapping region of two rectangles.
// Non-overlapping rectangles yield a zero-sized rect.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math32.Max(r.X, other.X)
	y0 := math32.Max(r.Y, other.Y)
	x1 := math32.Min(r.X+r.W, other.X+other.W)
	y1 := math32.Min(r.Y+r.H, other.Y+other.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Affine is a 2D affine transformation stored as a 2x3 matrix:
//
//	| A  B  C |
//	| D  E  F |
//
// which maps x' = A*x + B*y + C and y' = D*x + E*y + F.
type Affine struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translate returns a translation by (x, y).
func Translate(x, y float32) Affine {
	return Affine{A: 1, C: x, E: 1, F: y}
}

// Mul returns m * other, i.e. other is applied first and m second.
// Composing a parent frame with a child offset is parent.Mul(Translate(x, y)).
func (m Affine) Mul(other Affine) Affine {
	return Affine{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// ApplyVector transforms a direction, ignoring translation.
func (m Affine) ApplyVector(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Affine) IsIdentity() bool {
	return m == Identity()
}

// Bounds returns the axis-aligned bounding box of r after transformation.
func (m Affine) Bounds(r Rect) Rect {
	p0 := m.Apply(Vec2{r.X, r.Y})
	p1 := m.Apply(Vec2{r.X + r.W, r.Y})
	p2 := m.Apply(Vec2{r.X + r.W, r.Y + r.H})
	p3 := m.Apply(Vec2{r.X, r.Y + r.H})

	minX := math32.Min(math32.Min(p0.X, p1.X), math32.Min(p2.X, p3.X))
	minY := math32.Min(math32.Min(p0.Y, p1.Y), math32.Min(p2.Y, p3.Y))
	maxX := math32.Max(math32.Max(p0.X, p1.X), math32.Max(p2.X, p3.X))
	maxY := math32.Max(math32.Max(p0.Y, p1.Y), math32.Max(p2.Y, p3.Y))
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
