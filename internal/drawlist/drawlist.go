// Package drawlist batches tessellated primitives into vertex and index
// buffers, split into commands by texture and clip rectangle.
package drawlist

import (
	"github.com/chewxy/math32"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/internal/fonts"
)

// Vertex is the GPU vertex layout: position, texture coordinate and a packed
// 0xAABBGGRR color.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// DrawCmd is a run of indices sharing a texture and a clip rectangle.
// ClipRect is (x1, y1, x2, y2) in device pixels.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32
	TextureID    uint32
	VertexOffset uint32
	IndexOffset  uint32
}

// maxCmdVertices keeps command-relative indices within uint16.
const maxCmdVertices = 1 << 16

// DrawList accumulates draw commands for a frame.
// Positions are transformed to device space as primitives are added.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	transform    rgui.Affine
	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// New creates an empty draw list.
func New() *DrawList {
	dl := &DrawList{
		VtxBuffer: make([]Vertex, 0, 1024),
		IdxBuffer: make([]uint16, 0, 2048),
		CmdBuffer: make([]DrawCmd, 0, 16),
		clipStack: make([][4]float32, 0, 8),
	}
	dl.Reset(rgui.Size{})
	return dl
}

// Reset empties the list for a new frame targeting size. Allocated capacity
// is kept. A zero size leaves the root clip unbounded.
func (dl *DrawList) Reset(size rgui.Size) {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	if size.Empty() {
		dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	} else {
		dl.currentClip = [4]float32{0, 0, float32(size.W), float32(size.H)}
	}
	dl.transform = rgui.Identity()
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetTransform sets the transform applied to subsequent primitives.
func (dl *DrawList) SetTransform(m rgui.Affine) {
	dl.transform = m
}

// Transform returns the current transform.
func (dl *DrawList) Transform() rgui.Affine {
	return dl.transform
}

// PushClipRect intersects the current clip with r, given in the current
// local frame. Rotated frames clip to the bounding box of r.
func (dl *DrawList) PushClipRect(r rgui.Rect) {
	dev := dl.transform.Bounds(r)
	cur := dl.currentClip
	next := rgui.Rect{X: cur[0], Y: cur[1], W: cur[2] - cur[0], H: cur[3] - cur[1]}.Intersect(dev)

	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{next.X, next.Y, next.X + next.W, next.Y + next.H}
	dl.splitDraw()
}

// PopClipRect restores the clip that was current before the matching push.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipDepth returns the number of pushed clip rectangles.
func (dl *DrawList) ClipDepth() int {
	return len(dl.clipStack)
}

// CurrentClip returns the current clip in device pixels as (x1, y1, x2, y2).
func (dl *DrawList) CurrentClip() [4]float32 {
	return dl.currentClip
}

// SetTexture sets the texture for subsequent primitives. Zero means untextured.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// reserve makes sure the current command can take n more vertices.
func (dl *DrawList) reserve(n int) {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+n > maxCmdVertices {
		dl.splitDraw()
	}
}

// addVertex transforms and appends a vertex, returning its command-relative index.
func (dl *DrawList) addVertex(x, y, u, v float32, color uint32) uint16 {
	p := dl.transform.Apply(rgui.Vec2{X: x, Y: y})
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, Vertex{
		Pos:      [2]float32{p.X, p.Y},
		TexCoord: [2]float32{u, v},
		Color:    color,
	})
	return idx
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

func (dl *DrawList) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	dl.reserve(4)
	idx := dl.addVertex(x0, y0, u0, v0, color)
	dl.addVertex(x1, y0, u1, v0, color)
	dl.addVertex(x1, y1, u1, v1, color)
	dl.addVertex(x0, y1, u0, v1, color)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect adds a filled rectangle in the local frame.
func (dl *DrawList) AddRect(r rgui.Rect, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)
	dl.addQuad(r.X, r.Y, r.X+r.W, r.Y+r.H, 0, 0, 0, 0, color)
}

// AddEllipse adds a filled ellipse as a triangle fan.
func (dl *DrawList) AddEllipse(cx, cy, rx, ry float32, color uint32) {
	if color&0xFF000000 == 0 || rx <= 0 || ry <= 0 {
		return
	}
	dl.SetTexture(0)

	segments := ellipseSegments(rx, ry)
	dl.reserve(segments + 1)
	center := dl.addVertex(cx, cy, 0, 0, color)
	step := 2 * math32.Pi / float32(segments)
	for i := 0; i < segments; i++ {
		s, c := math32.Sincos(float32(i) * step)
		dl.addVertex(cx+c*rx, cy+s*ry, 0, 0, color)
	}
	for i := 0; i < segments; i++ {
		a := center + 1 + uint16(i)
		b := center + 1 + uint16((i+1)%segments)
		dl.addIndices(center, a, b)
	}
}

// ellipseSegments picks a segment count giving roughly 4px edges.
func ellipseSegments(rx, ry float32) int {
	r := math32.Max(rx, ry)
	n := int(math32.Ceil(2 * math32.Pi * r / 4))
	return min(max(n, 12), 256)
}

// AddLine adds a line as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	if thickness <= 0 {
		thickness = 1
	}
	dl.SetTexture(0)

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if l := math32.Hypot(dx, dy); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.reserve(4)
	idx := dl.addVertex(x1+nx, y1+ny, 0, 0, color)
	dl.addVertex(x2+nx, y2+ny, 0, 0, color)
	dl.addVertex(x2-nx, y2-ny, 0, 0, color)
	dl.addVertex(x1-nx, y1-ny, 0, 0, color)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddGlyphQuads adds text quads sampled from textureID.
func (dl *DrawList) AddGlyphQuads(textureID uint32, quads []fonts.Quad, color uint32) {
	if color&0xFF000000 == 0 || len(quads) == 0 {
		return
	}
	dl.SetTexture(textureID)
	for _, q := range quads {
		dl.addQuad(q.X0, q.Y0, q.X1, q.Y1, q.U0, q.V0, q.U1, q.V1, color)
	}
}

// Finalize closes the last command and drops empty ones.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
