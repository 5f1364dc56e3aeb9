// Package software provides a CPU renderer drawing with gogpu/gg.
//
// The renderer draws into a gg pixmap and presents each finished frame to a
// Surface obtained from the native handle. It works with any handle that
// implements SurfaceHandle: GLFW windows from backend/opengl, or an
// ImageSurface for headless use.
package software

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/internal/fonts"
)

var errNotDrawing = errors.New("draw call outside BeginDraw/EndDraw")

// Renderer implements rgui.Renderer on the CPU.
//
// The font source and face are device independent. The gg context (render
// target), the solid brush and the surface are device dependent and are
// created and released together.
type Renderer struct {
	source *text.FontSource
	face   text.Face
	ascent float64

	state   rgui.ResourceState
	surface Surface
	dc      *gg.Context
	brush   *gg.SolidBrush
	size    rgui.Size

	transform rgui.Affine
	clips     []rgui.Rect
	drawing   bool
}

var _ rgui.Renderer = (*Renderer)(nil)

// NewRenderer loads the default text format.
func NewRenderer(font rgui.FontConfig) (*Renderer, error) {
	data, err := fonts.Load(font.Face)
	if err != nil {
		return nil, &rgui.ResourceError{Op: "text format", Err: err}
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, &rgui.ResourceError{Op: "text format", Err: err}
	}
	face := source.Face(float64(font.Size))
	return &Renderer{
		source:    source,
		face:      face,
		ascent:    face.Metrics().Ascent,
		transform: rgui.Identity(),
	}, nil
}

// State returns the resource state.
func (r *Renderer) State() rgui.ResourceState { return r.state }

// CreateDeviceDependentResources acquires a surface from h and allocates a
// render target of the surface's size.
func (r *Renderer) CreateDeviceDependentResources(h rgui.NativeHandle) error {
	if r.state == rgui.Released {
		return &rgui.ResourceError{Op: "render target", Err: errors.New("renderer closed")}
	}
	if r.state == rgui.Ready {
		r.ReleaseDeviceDependentResources()
	}
	sh, ok := h.(SurfaceHandle)
	if !ok {
		return &rgui.ResourceError{Op: "render target", Err: fmt.Errorf("unsupported native handle %T", h)}
	}
	surface, err := sh.Surface()
	if err != nil {
		return &rgui.ResourceError{Op: "render target", Err: err}
	}
	size := surface.Size()
	if size.Empty() {
		surface.Release()
		return &rgui.ResourceError{Op: "render target", Err: fmt.Errorf("empty surface %dx%d", size.W, size.H)}
	}

	dc := gg.NewContext(int(size.W), int(size.H))
	dc.SetFont(r.face)
	brush := gg.Solid(gg.Black)

	r.surface = surface
	r.dc = dc
	r.brush = &brush
	r.size = size
	r.state = rgui.Ready
	rgui.Logger().Debug("software resources created",
		slog.Uint64("window", uint64(h.WindowID())),
		slog.Int("width", int(size.W)), slog.Int("height", int(size.H)))
	return nil
}

// ReleaseDeviceDependentResources drops the render target, the brush and the
// surface together.
func (r *Renderer) ReleaseDeviceDependentResources() {
	if r.state != rgui.Ready {
		return
	}
	if err := r.dc.Close(); err != nil {
		rgui.Logger().Warn("close render target", slog.Any("err", err))
	}
	r.surface.Release()
	r.dc = nil
	r.brush = nil
	r.surface = nil
	r.size = rgui.Size{}
	r.clips = r.clips[:0]
	r.drawing = false
	r.state = rgui.Uninitialized
}

// RenderTargetSize returns the target size while resources exist.
func (r *Renderer) RenderTargetSize() (rgui.Size, bool) {
	if r.state != rgui.Ready {
		return rgui.Size{}, false
	}
	return r.size, true
}

// ResizeRenderTarget reallocates the pixmap. Zero sizes, as reported for
// minimized windows, keep the current target.
func (r *Renderer) ResizeRenderTarget(size rgui.Size) error {
	if r.state != rgui.Ready || size.Empty() || size == r.size {
		return nil
	}
	if err := r.dc.Resize(int(size.W), int(size.H)); err != nil {
		return &rgui.DrawError{Op: "resize render target", Err: err}
	}
	r.size = size
	return nil
}

// BeginDraw starts a frame with an identity transform and no clip.
func (r *Renderer) BeginDraw() {
	if r.state != rgui.Ready {
		return
	}
	r.dc.ResetClip()
	r.SetTransform(rgui.Identity())
	r.clips = r.clips[:0]
	r.drawing = true
}

// Clear replaces the pixels of the current clip with c, or of the whole target
// without a clip. The clip is covered by its device space bounds.
func (r *Renderer) Clear(c rgui.Color) {
	if !r.drawing {
		return
	}
	col := toRGBA(c)
	if len(r.clips) == 0 {
		r.dc.ClearWithColor(col)
		return
	}
	clip := r.clips[len(r.clips)-1]
	x0, y0 := pixelEdge(clip.X), pixelEdge(clip.Y)
	x1, y1 := pixelEdge(clip.X+clip.W), pixelEdge(clip.Y+clip.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.dc.SetPixel(x, y, col)
		}
	}
}

// pixelEdge returns the first pixel whose center lies at or after v.
func pixelEdge(v float32) int {
	return int(math.Ceil(float64(v) - 0.5))
}

// PushAxisAlignedClip intersects the clip with rect in the current frame.
func (r *Renderer) PushAxisAlignedClip(rect rgui.Rect) {
	if !r.drawing {
		return
	}
	dev := r.transform.Bounds(rect)
	if n := len(r.clips); n > 0 {
		dev = r.clips[n-1].Intersect(dev)
	} else {
		dev = rgui.Rect{W: float32(r.size.W), H: float32(r.size.H)}.Intersect(dev)
	}
	r.clips = append(r.clips, dev)

	r.dc.Push()
	r.dc.ClipRect(float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H))
}

// PopAxisAlignedClip removes the last clip. gg restores the transform on Pop,
// so the current transform is put back afterwards.
func (r *Renderer) PopAxisAlignedClip() {
	if !r.drawing || len(r.clips) == 0 {
		return
	}
	r.clips = r.clips[:len(r.clips)-1]
	r.dc.Pop()
	r.dc.SetTransform(toMatrix(r.transform))
}

func (r *Renderer) SetTransform(m rgui.Affine) {
	r.transform = m
	if r.dc != nil {
		r.dc.SetTransform(toMatrix(m))
	}
}

func (r *Renderer) Transform() rgui.Affine {
	return r.transform
}

// fill sets the brush color, builds a path with build and fills it.
func (r *Renderer) fill(c rgui.Color, build func()) error {
	r.brush.Color = toRGBA(c)
	r.dc.SetFillBrush(*r.brush)
	build()
	return r.dc.Fill()
}

func (r *Renderer) DrawRectangle(o rgui.Rectangle) error {
	if !r.drawing {
		return &rgui.DrawError{Op: "draw rectangle", Err: errNotDrawing}
	}
	err := r.fill(o.Color, func() {
		r.dc.DrawRectangle(float64(o.X), float64(o.Y), float64(o.Width), float64(o.Height))
	})
	if err != nil {
		return &rgui.DrawError{Op: "draw rectangle", Err: err}
	}
	return nil
}

func (r *Renderer) DrawEllipse(o rgui.Ellipse) error {
	if !r.drawing {
		return &rgui.DrawError{Op: "draw ellipse", Err: errNotDrawing}
	}
	err := r.fill(o.Color, func() {
		r.dc.DrawEllipse(float64(o.CenterX), float64(o.CenterY), float64(o.RadiusX), float64(o.RadiusY))
	})
	if err != nil {
		return &rgui.DrawError{Op: "draw ellipse", Err: err}
	}
	return nil
}

func (r *Renderer) DrawLine(o rgui.Line) error {
	if !r.drawing {
		return &rgui.DrawError{Op: "draw line", Err: errNotDrawing}
	}
	width := float64(o.StrokeWidth)
	if width <= 0 {
		width = 1
	}
	r.brush.Color = toRGBA(o.Color)
	r.dc.SetStrokeBrush(*r.brush)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(float64(o.X0), float64(o.Y0), float64(o.X1), float64(o.Y1))
	if err := r.dc.Stroke(); err != nil {
		return &rgui.DrawError{Op: "draw line", Err: err}
	}
	return nil
}

// DrawText draws text with its layout box top-left at (X, Y). Inside a clip
// the glyphs are filled as outlines so the clip applies to them.
func (r *Renderer) DrawText(o rgui.TextObject) error {
	if !r.drawing {
		return &rgui.DrawError{Op: "draw text", Err: errNotDrawing}
	}
	if len(r.clips) > 0 {
		r.dc.SetTextMode(gg.TextModeVector)
	} else {
		r.dc.SetTextMode(gg.TextModeAuto)
	}
	r.brush.Color = toRGBA(o.Color)
	r.dc.SetFillBrush(*r.brush)
	r.dc.DrawString(o.Text, float64(o.X), float64(o.Y)+r.ascent)
	return nil
}

// EndDraw presents the frame. If the surface reports device loss, all device
// dependent resources are released before the error is returned.
func (r *Renderer) EndDraw() error {
	if !r.drawing {
		return nil
	}
	r.drawing = false
	for range r.clips {
		r.dc.Pop()
	}
	r.clips = r.clips[:0]

	if err := r.dc.FlushGPU(); err != nil {
		return &rgui.DrawError{Op: "end draw", Err: err}
	}
	img, ok := r.dc.Image().(*image.RGBA)
	if !ok {
		return &rgui.DrawError{Op: "end draw", Err: fmt.Errorf("unexpected image type %T", r.dc.Image())}
	}
	if err := r.surface.Present(img); err != nil {
		if rgui.IsDeviceLost(err) {
			r.ReleaseDeviceDependentResources()
			return fmt.Errorf("end draw: %w", err)
		}
		return &rgui.DrawError{Op: "end draw", Err: err}
	}
	return nil
}

// Close releases all resources. The renderer cannot be used afterwards.
func (r *Renderer) Close() error {
	if r.state == rgui.Released {
		return nil
	}
	r.ReleaseDeviceDependentResources()
	r.state = rgui.Released
	return r.source.Close()
}

func toRGBA(c rgui.Color) gg.RGBA {
	return gg.RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

func toMatrix(m rgui.Affine) gg.Matrix {
	return gg.Matrix{
		A: float64(m.A), B: float64(m.B), C: float64(m.C),
		D: float64(m.D), E: float64(m.E), F: float64(m.F),
	}
}
