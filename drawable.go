package rgui

// Drawable is anything that can render itself through a Renderer.
//
// A Drawable must restore any transform or clip it pushes before returning,
// including when it returns an error.
type Drawable interface {
	Draw(r Renderer) error
}

// DrawableFunc adapts a function to the Drawable interface.
type DrawableFunc func(r Renderer) error

// Draw calls f(r).
func (f DrawableFunc) Draw(r Renderer) error { return f(r) }

// Rectangle is a filled axis-aligned rectangle.
type Rectangle struct {
	X, Y          float32
	Width, Height float32
	Color         Color
}

// NewRectangle creates a filled rectangle.
func NewRectangle(x, y, width, height float32, c Color) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height, Color: c}
}

// Draw implements Drawable.
func (o Rectangle) Draw(r Renderer) error { return r.DrawRectangle(o) }

// Rect returns the rectangle's geometry.
func (o Rectangle) Rect() Rect { return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height} }

// Ellipse is a filled ellipse.
type Ellipse struct {
	CenterX, CenterY float32
	RadiusX, RadiusY float32
	Color            Color
}

// NewEllipse creates a filled ellipse.
func NewEllipse(cx, cy, rx, ry float32, c Color) Ellipse {
	return Ellipse{CenterX: cx, CenterY: cy, RadiusX: rx, RadiusY: ry, Color: c}
}

// NewCircle creates a filled circle.
func NewCircle(cx, cy, radius float32, c Color) Ellipse {
	return NewEllipse(cx, cy, radius, radius, c)
}

// Draw implements Drawable.
func (o Ellipse) Draw(r Renderer) error { return r.DrawEllipse(o) }

// Line is a stroked line segment.
type Line struct {
	X0, Y0      float32
	X1, Y1      float32
	StrokeWidth float32
	Color       Color
}

// NewLine creates a line from (x0, y0) to (x1, y1).
func NewLine(x0, y0, x1, y1, strokeWidth float32, c Color) Line {
	return Line{X0: x0, Y0: y0, X1: x1, Y1: y1, StrokeWidth: strokeWidth, Color: c}
}

// Draw implements Drawable.
func (o Line) Draw(r Renderer) error { return r.DrawLine(o) }

// TextObject is a run of text drawn with the renderer's default text format.
// (X, Y) is the top-left corner of the layout box.
type TextObject struct {
	Text  string
	X, Y  float32
	Color Color
}

// NewText creates a text object.
func NewText(text string, x, y float32, c Color) TextObject {
	return TextObject{Text: text, X: x, Y: y, Color: c}
}

// Draw implements Drawable.
func (o TextObject) Draw(r Renderer) error { return r.DrawText(o) }
