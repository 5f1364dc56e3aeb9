package rgui

// Canvas is a Drawable container that establishes a local coordinate frame
// and an axis-aligned clip for its children. Canvases nest: the local frame of
// a child Canvas is composed onto its parent's.
type Canvas struct {
	objects []Drawable
	rect    Rect
}

// NewCanvas creates an empty canvas at (x, y) with the given size, expressed in
// the parent's coordinate frame.
func NewCanvas(x, y, width, height float32) *Canvas {
	return &Canvas{rect: Rect{X: x, Y: y, W: width, H: height}}
}

// AddObject appends a child Drawable. The canvas owns it from now on.
func (c *Canvas) AddObject(d Drawable) {
	c.objects = append(c.objects, d)
}

// Len returns the number of children.
func (c *Canvas) Len() int {
	return len(c.objects)
}

// Rect returns the canvas rectangle in the parent's frame.
func (c *Canvas) Rect() Rect {
	return c.rect
}

// SetRect moves and resizes the canvas.
func (c *Canvas) SetRect(x, y, width, height float32) {
	c.rect = Rect{X: x, Y: y, W: width, H: height}
}

// SetPosition moves the canvas.
func (c *Canvas) SetPosition(x, y float32) {
	c.rect.X, c.rect.Y = x, y
}

// SetSize resizes the canvas.
func (c *Canvas) SetSize(width, height float32) {
	c.rect.W, c.rect.H = width, height
}

// Draw draws the children in insertion order inside the canvas frame.
//
// The translation to (x, y) is composed onto the current transform, and the
// clip (0, 0, width, height) is pushed in the new frame. The clip is popped and
// the prior transform restored before returning, whether or not a child failed.
func (c *Canvas) Draw(r Renderer) (err error) {
	prior := r.Transform()
	r.SetTransform(prior.Mul(Translate(c.rect.X, c.rect.Y)))
	r.PushAxisAlignedClip(Rect{W: c.rect.W, H: c.rect.H})
	defer func() {
		r.PopAxisAlignedClip()
		r.SetTransform(prior)
	}()

	for _, obj := range c.objects {
		if err = obj.Draw(r); err != nil {
			return err
		}
	}
	return nil
}
