// Package recorder provides a Renderer and a Platform that record every call,
// for tests that check call sequences without a real window.
package recorder

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/rgui"
)

// Op identifies a recorded renderer call.
type Op int

const (
	OpCreate Op = iota
	OpRelease
	OpResize
	OpBeginDraw
	OpEndDraw
	OpClear
	OpPushClip
	OpPopClip
	OpSetTransform
	OpRectangle
	OpEllipse
	OpLine
	OpText
	OpClose
)

// Call is one recorded renderer call.
type Call struct {
	Op Op
	// Rect is the clip rectangle, the primitive bounds, or the line endpoints
	// (X, Y) -> (W, H).
	Rect rgui.Rect
	// Transform is the argument of SetTransform, or the transform in effect
	// for a primitive.
	Transform rgui.Affine
	Color     rgui.Color
	Text      string
	Size      rgui.Size
}

// String formats the call the way test expectations are written, for
// example "FillRectangle(10,10,100,50)" or "SetTransform(translate 200,200)".
func (c Call) String() string {
	r := c.Rect
	switch c.Op {
	case OpCreate:
		return "Create"
	case OpRelease:
		return "Release"
	case OpResize:
		return fmt.Sprintf("Resize(%d,%d)", c.Size.W, c.Size.H)
	case OpBeginDraw:
		return "BeginDraw"
	case OpEndDraw:
		return "EndDraw"
	case OpClear:
		return fmt.Sprintf("Clear(%g,%g,%g,%g)", c.Color.R, c.Color.G, c.Color.B, c.Color.A)
	case OpPushClip:
		return fmt.Sprintf("PushClip(%g,%g,%g,%g)", r.X, r.Y, r.W, r.H)
	case OpPopClip:
		return "PopClip"
	case OpSetTransform:
		return "SetTransform(" + formatAffine(c.Transform) + ")"
	case OpRectangle:
		return fmt.Sprintf("FillRectangle(%g,%g,%g,%g)", r.X, r.Y, r.W, r.H)
	case OpEllipse:
		return fmt.Sprintf("FillEllipse(%g,%g,%g,%g)", r.X, r.Y, r.W, r.H)
	case OpLine:
		return fmt.Sprintf("DrawLine(%g,%g,%g,%g)", r.X, r.Y, r.W, r.H)
	case OpText:
		return fmt.Sprintf("DrawText(%q,%g,%g)", c.Text, r.X, r.Y)
	case OpClose:
		return "Close"
	}
	return fmt.Sprintf("Op(%d)", int(c.Op))
}

func formatAffine(m rgui.Affine) string {
	switch {
	case m.IsIdentity():
		return "identity"
	case m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1:
		return fmt.Sprintf("translate %g,%g", m.C, m.F)
	}
	return fmt.Sprintf("%g %g %g %g %g %g", m.A, m.B, m.C, m.D, m.E, m.F)
}

// Handle is a fake native handle.
type Handle rgui.WindowID

// WindowID implements rgui.NativeHandle.
func (h Handle) WindowID() rgui.WindowID { return rgui.WindowID(h) }

// Renderer records calls and tracks the transform, the clip depth and the
// resource state the way a real backend does.
type Renderer struct {
	Calls []Call

	// TargetSize is the size reported once resources are created.
	TargetSize rgui.Size
	// CreateErr is returned by CreateDeviceDependentResources when set.
	CreateErr error
	// EndDrawErr is returned by the next EndDraw and then cleared. An error
	// wrapping rgui.ErrDeviceLost releases the resources first.
	EndDrawErr error
	// FailOn makes a primitive draw call return an error.
	FailOn func(c Call) error

	state     rgui.ResourceState
	size      rgui.Size
	transform rgui.Affine
	clipDepth int
	maxDepth  int
}

// New creates a recorder reporting an 800x600 target.
func New() *Renderer {
	return &Renderer{
		TargetSize: rgui.Size{W: 800, H: 600},
		transform:  rgui.Identity(),
	}
}

var _ rgui.Renderer = (*Renderer)(nil)

func (r *Renderer) record(c Call) {
	r.Calls = append(r.Calls, c)
}

// State returns the resource state.
func (r *Renderer) State() rgui.ResourceState { return r.state }

// ClipDepth returns the number of clips currently pushed.
func (r *Renderer) ClipDepth() int { return r.clipDepth }

// MaxClipDepth returns the deepest clip nesting observed.
func (r *Renderer) MaxClipDepth() int { return r.maxDepth }

// Reset drops the recorded calls.
func (r *Renderer) Reset() { r.Calls = r.Calls[:0] }

// Strings returns the recorded calls formatted with Call.String.
func (r *Renderer) Strings() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.String()
	}
	return out
}

// Only returns the recorded calls whose op is one of ops, formatted.
func (r *Renderer) Only(ops ...Op) []string {
	var out []string
	for _, c := range r.Calls {
		for _, op := range ops {
			if c.Op == op {
				out = append(out, c.String())
				break
			}
		}
	}
	return out
}

// Count returns how many calls with op were recorded.
func (r *Renderer) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Dump formats all calls one per line.
func (r *Renderer) Dump() string {
	return strings.Join(r.Strings(), "\n")
}

func (r *Renderer) CreateDeviceDependentResources(rgui.NativeHandle) error {
	r.record(Call{Op: OpCreate})
	if r.state == rgui.Released {
		return &rgui.ResourceError{Op: "render target", Err: fmt.Errorf("renderer closed")}
	}
	if r.CreateErr != nil {
		return &rgui.ResourceError{Op: "render target", Err: r.CreateErr}
	}
	r.state = rgui.Ready
	r.size = r.TargetSize
	return nil
}

func (r *Renderer) ReleaseDeviceDependentResources() {
	r.record(Call{Op: OpRelease})
	if r.state == rgui.Ready {
		r.state = rgui.Uninitialized
	}
	r.size = rgui.Size{}
}

func (r *Renderer) RenderTargetSize() (rgui.Size, bool) {
	if r.state != rgui.Ready {
		return rgui.Size{}, false
	}
	return r.size, true
}

func (r *Renderer) ResizeRenderTarget(size rgui.Size) error {
	r.record(Call{Op: OpResize, Size: size})
	if r.state == rgui.Ready {
		r.size = size
	}
	return nil
}

func (r *Renderer) BeginDraw() {
	r.record(Call{Op: OpBeginDraw})
	r.transform = rgui.Identity()
}

func (r *Renderer) EndDraw() error {
	r.record(Call{Op: OpEndDraw})
	err := r.EndDrawErr
	r.EndDrawErr = nil
	if err == nil {
		return nil
	}
	if rgui.IsDeviceLost(err) {
		r.ReleaseDeviceDependentResources()
		return err
	}
	return &rgui.DrawError{Op: "end draw", Err: err}
}

func (r *Renderer) Clear(c rgui.Color) {
	r.record(Call{Op: OpClear, Color: c})
}

func (r *Renderer) PushAxisAlignedClip(rect rgui.Rect) {
	r.record(Call{Op: OpPushClip, Rect: rect, Transform: r.transform})
	r.clipDepth++
	r.maxDepth = max(r.maxDepth, r.clipDepth)
}

func (r *Renderer) PopAxisAlignedClip() {
	r.record(Call{Op: OpPopClip})
	r.clipDepth--
}

func (r *Renderer) SetTransform(m rgui.Affine) {
	r.record(Call{Op: OpSetTransform, Transform: m})
	r.transform = m
}

func (r *Renderer) Transform() rgui.Affine {
	return r.transform
}

func (r *Renderer) draw(c Call) error {
	c.Transform = r.transform
	r.record(c)
	if r.FailOn != nil {
		return r.FailOn(c)
	}
	return nil
}

func (r *Renderer) DrawRectangle(o rgui.Rectangle) error {
	return r.draw(Call{Op: OpRectangle, Rect: o.Rect(), Color: o.Color})
}

func (r *Renderer) DrawEllipse(o rgui.Ellipse) error {
	return r.draw(Call{
		Op:    OpEllipse,
		Rect:  rgui.Rect{X: o.CenterX, Y: o.CenterY, W: o.RadiusX, H: o.RadiusY},
		Color: o.Color,
	})
}

func (r *Renderer) DrawLine(o rgui.Line) error {
	return r.draw(Call{Op: OpLine, Rect: rgui.Rect{X: o.X0, Y: o.Y0, W: o.X1, H: o.Y1}, Color: o.Color})
}

func (r *Renderer) DrawText(o rgui.TextObject) error {
	return r.draw(Call{Op: OpText, Rect: rgui.Rect{X: o.X, Y: o.Y}, Text: o.Text, Color: o.Color})
}

func (r *Renderer) Close() error {
	r.record(Call{Op: OpClose})
	r.state = rgui.Released
	r.size = rgui.Size{}
	return nil
}
