// Package opengl provides the GLFW platform and an OpenGL 4.1 renderer for
// rgui windows.
package opengl

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/internal/drawlist"
	"github.com/go-theft-auto/rgui/internal/fonts"
)

// glContextLost is GL_CONTEXT_LOST from GL 4.5 / KHR_robustness. The 4.1
// bindings do not export it.
const glContextLost = 0x0507

// Renderer implements rgui.Renderer with OpenGL.
//
// Device independent resources are the parsed font and its CPU glyph atlas.
// Device dependent resources are the window framebuffer together with the
// pipeline used to fill it: shader program, vertex arrays and the atlas
// texture.
type Renderer struct {
	atlas *fonts.Atlas
	dl    *drawlist.DrawList

	state  rgui.ResourceState
	handle *Handle
	size   rgui.Size

	shader   uint32
	vao, vbo uint32
	ebo      uint32
	fontTex  uint32
	projLoc  int32
	texLoc   int32
	useTex   int32
	clear    rgui.Color
	cleared  bool
	drawing  bool
}

var _ rgui.Renderer = (*Renderer)(nil)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// The atlas texture is alpha-only: the R channel scales the vertex alpha.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D atlas;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = vec4(Color.rgb, Color.a * texture(atlas, TexCoord).r);
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates the renderer's device independent resources.
// No GL call is made until CreateDeviceDependentResources.
func NewRenderer(font rgui.FontConfig) (*Renderer, error) {
	data, err := fonts.Load(font.Face)
	if err != nil {
		return nil, &rgui.ResourceError{Op: "text format", Err: err}
	}
	atlas, err := fonts.NewAtlas(data, font.Size)
	if err != nil {
		return nil, &rgui.ResourceError{Op: "text format", Err: err}
	}
	return &Renderer{
		atlas: atlas,
		dl:    drawlist.New(),
	}, nil
}

// State returns the resource state.
func (r *Renderer) State() rgui.ResourceState { return r.state }

// CreateDeviceDependentResources binds the renderer to the window's GL
// context and builds the pipeline. h must come from this package's Platform.
// A context lost to a reset stays unusable; recreating resources after
// ErrDeviceLost needs a new window.
func (r *Renderer) CreateDeviceDependentResources(h rgui.NativeHandle) error {
	if r.state == rgui.Released {
		return &rgui.ResourceError{Op: "render target", Err: fmt.Errorf("renderer closed")}
	}
	if r.state == rgui.Ready {
		r.ReleaseDeviceDependentResources()
	}
	handle, ok := h.(*Handle)
	if !ok {
		return &rgui.ResourceError{Op: "render target", Err: fmt.Errorf("unsupported native handle %T", h)}
	}
	if err := handle.makeCurrent(); err != nil {
		return &rgui.ResourceError{Op: "render target", Err: err}
	}

	shader, err := createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return &rgui.ResourceError{Op: "shader", Err: err}
	}
	r.shader = shader
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("atlas\x00"))
	r.useTex = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Pos (2 floats) + TexCoord (2 floats) + Color (uint8x4)
	stride := int32(unsafe.Sizeof(drawlist.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(drawlist.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(drawlist.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.fontTex = r.uploadAtlas()

	if code := gl.GetError(); code != gl.NO_ERROR {
		r.deleteObjects()
		return &rgui.ResourceError{Op: "pipeline", Err: fmt.Errorf("gl error 0x%x", code)}
	}

	r.handle = handle
	r.size = handle.framebufferSize()
	r.state = rgui.Ready
	rgui.Logger().Debug("gl resources created",
		slog.Uint64("window", uint64(handle.WindowID())),
		slog.Int("width", int(r.size.W)), slog.Int("height", int(r.size.H)))
	return nil
}

// uploadAtlas creates the alpha-only atlas texture.
func (r *Renderer) uploadAtlas() uint32 {
	img := r.atlas.Image
	b := img.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// ReleaseDeviceDependentResources drops the pipeline and the target together.
func (r *Renderer) ReleaseDeviceDependentResources() {
	if r.state != rgui.Ready {
		return
	}
	if r.handle != nil && r.handle.makeCurrent() == nil {
		r.deleteObjects()
	}
	r.shader, r.vao, r.vbo, r.ebo, r.fontTex = 0, 0, 0, 0, 0
	r.handle = nil
	r.size = rgui.Size{}
	r.drawing = false
	r.state = rgui.Uninitialized
}

func (r *Renderer) deleteObjects() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// RenderTargetSize returns the framebuffer size while resources exist.
func (r *Renderer) RenderTargetSize() (rgui.Size, bool) {
	if r.state != rgui.Ready {
		return rgui.Size{}, false
	}
	return r.size, true
}

// ResizeRenderTarget records the new framebuffer size. The default
// framebuffer is resized by the window system.
func (r *Renderer) ResizeRenderTarget(size rgui.Size) error {
	if r.state != rgui.Ready {
		return nil
	}
	r.size = size
	return nil
}

// BeginDraw starts a frame with an identity transform and no clip.
func (r *Renderer) BeginDraw() {
	if r.state != rgui.Ready {
		return
	}
	r.dl.Reset(r.size)
	r.cleared = false
	r.drawing = true
}

// Clear fills the current clip with c. Without a pushed clip the whole
// target is cleared and previously queued primitives are dropped.
func (r *Renderer) Clear(c rgui.Color) {
	if !r.drawing {
		return
	}
	if r.dl.ClipDepth() == 0 {
		m := r.dl.Transform()
		r.dl.Reset(r.size)
		r.dl.SetTransform(m)
		r.clear = c
		r.cleared = true
		return
	}
	clip := r.dl.CurrentClip()
	m := r.dl.Transform()
	r.dl.SetTransform(rgui.Identity())
	r.dl.AddRect(rgui.Rect{X: clip[0], Y: clip[1], W: clip[2] - clip[0], H: clip[3] - clip[1]}, c.Packed())
	r.dl.SetTransform(m)
}

func (r *Renderer) PushAxisAlignedClip(rect rgui.Rect) {
	if r.drawing {
		r.dl.PushClipRect(rect)
	}
}

func (r *Renderer) PopAxisAlignedClip() {
	if r.drawing {
		r.dl.PopClipRect()
	}
}

func (r *Renderer) SetTransform(m rgui.Affine) {
	r.dl.SetTransform(m)
}

func (r *Renderer) Transform() rgui.Affine {
	return r.dl.Transform()
}

func (r *Renderer) DrawRectangle(o rgui.Rectangle) error {
	if !r.drawing {
		return &rgui.DrawError{Op: "draw rectangle", Err: errNotDrawing}
	}
	r.dl.AddRect(o.Rect(), o.Color.Packed())
	return nil
}

func (r *Renderer) DrawEllipse(o rgui.Ellipse) error {
	if !r.drawing {
		return &rgui.DrawError{Op: "draw ellipse", Err: errNotDrawing}
	}
	r.dl.AddEllipse(o.CenterX, o.CenterY, o.RadiusX, o.RadiusY, o.Color.Packed())
	return nil
}

func (r *Renderer) DrawLine(o rgui.Line) error {
	if !r.drawing {
		return &rgui.DrawError{Op: "draw line", Err: errNotDrawing}
	}
	r.dl.AddLine(o.X0, o.Y0, o.X1, o.Y1, o.Color.Packed(), o.StrokeWidth)
	return nil
}

func (r *Renderer) DrawText(o rgui.TextObject) error {
	if !r.drawing {
		return &rgui.DrawError{Op: "draw text", Err: errNotDrawing}
	}
	r.dl.AddGlyphQuads(r.fontTex, r.atlas.Quads(o.Text, o.X, o.Y), o.Color.Packed())
	return nil
}

// EndDraw flushes the frame, presents it and checks for context loss.
func (r *Renderer) EndDraw() error {
	if !r.drawing {
		return nil
	}
	r.drawing = false

	if err := r.handle.makeCurrent(); err != nil {
		return &rgui.DrawError{Op: "end draw", Err: err}
	}
	r.flush()
	r.handle.swapBuffers()

	switch code := gl.GetError(); code {
	case gl.NO_ERROR:
		return nil
	case glContextLost:
		r.ReleaseDeviceDependentResources()
		return fmt.Errorf("end draw: %w", rgui.ErrDeviceLost)
	default:
		return &rgui.DrawError{Op: "end draw", Err: fmt.Errorf("gl error 0x%x", code)}
	}
}

// flush draws the finalized draw list into the default framebuffer.
func (r *Renderer) flush() {
	dl := r.dl
	dl.Finalize()

	w, h := int32(r.size.W), int32(r.size.H)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, w, h)
	gl.Disable(gl.SCISSOR_TEST)
	if r.cleared {
		gl.ClearColor(r.clear.R, r.clear.G, r.clear.B, r.clear.A)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
	if len(dl.VtxBuffer) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(w), float32(h), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(drawlist.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		x, y, sw, sh, ok := scissorBox(cmd.ClipRect, w, h)
		if !ok {
			continue
		}
		gl.Scissor(x, y, sw, sh)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTex, 1)
		} else {
			gl.Uniform1i(r.useTex, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.SCISSOR_TEST)
}

// scissorBox converts a device clip (x1, y1, x2, y2) with a top-left origin
// into a GL scissor box, clamped to the target.
func scissorBox(clip [4]float32, w, h int32) (x, y, sw, sh int32, ok bool) {
	x1 := max(int32(clip[0]), 0)
	y1 := max(int32(clip[1]), 0)
	x2 := min(int32(clip[2]+0.999), w)
	y2 := min(int32(clip[3]+0.999), h)
	if x2 <= x1 || y2 <= y1 {
		return 0, 0, 0, 0, false
	}
	return x1, h - y2, x2 - x1, y2 - y1, true
}

// Close releases all resources. The renderer cannot be used afterwards.
func (r *Renderer) Close() error {
	if r.state == rgui.Released {
		return nil
	}
	r.ReleaseDeviceDependentResources()
	r.state = rgui.Released
	return r.atlas.Close()
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compilation failed: %s", string(log))
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
