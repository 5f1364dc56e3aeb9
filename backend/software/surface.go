package software

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-theft-auto/rgui"
)

// Surface is where a software frame is presented.
type Surface interface {
	// Size returns the surface size in pixels.
	Size() rgui.Size
	// Present shows img. An error wrapping rgui.ErrDeviceLost means the
	// surface is gone and a new one must be obtained from the handle.
	Present(img *image.RGBA) error
	// Release frees the surface.
	Release()
}

// SurfaceHandle is a native handle able to provide a presentation surface.
type SurfaceHandle interface {
	rgui.NativeHandle
	Surface() (Surface, error)
}

// ImageSurface is an in-memory SurfaceHandle. It keeps a copy of the last
// presented frame and can simulate device loss, which makes it usable for
// headless rendering and tests.
type ImageSurface struct {
	id       rgui.WindowID
	size     rgui.Size
	frame    *image.RGBA
	lost     bool
	presents int
	acquired int
}

var (
	_ SurfaceHandle = (*ImageSurface)(nil)
	_ Surface       = (*ImageSurface)(nil)
)

// NewImageSurface creates an image surface of the given size.
func NewImageSurface(id rgui.WindowID, width, height int) *ImageSurface {
	return &ImageSurface{
		id:   id,
		size: rgui.Size{W: uint32(max(width, 0)), H: uint32(max(height, 0))},
	}
}

// WindowID implements rgui.NativeHandle.
func (s *ImageSurface) WindowID() rgui.WindowID { return s.id }

// Surface hands out the surface itself. Acquiring it again after a loss
// restores it, like recreating a swap chain on a new device.
func (s *ImageSurface) Surface() (Surface, error) {
	if s.size.Empty() {
		return nil, fmt.Errorf("image surface %d has zero size", s.id)
	}
	s.lost = false
	s.acquired++
	return s, nil
}

// Size implements Surface.
func (s *ImageSurface) Size() rgui.Size { return s.size }

// SetSize changes the surface size, as a window resize would.
func (s *ImageSurface) SetSize(width, height int) {
	s.size = rgui.Size{W: uint32(max(width, 0)), H: uint32(max(height, 0))}
}

// Present implements Surface.
func (s *ImageSurface) Present(img *image.RGBA) error {
	if s.lost {
		return fmt.Errorf("present to image surface %d: %w", s.id, rgui.ErrDeviceLost)
	}
	if s.frame == nil || s.frame.Bounds() != img.Bounds() {
		s.frame = image.NewRGBA(img.Bounds())
	}
	draw.Draw(s.frame, s.frame.Bounds(), img, img.Bounds().Min, draw.Src)
	s.presents++
	return nil
}

// Release implements Surface.
func (s *ImageSurface) Release() {}

// Lose makes the next Present fail with device loss.
func (s *ImageSurface) Lose() { s.lost = true }

// Frame returns the last presented frame, or nil.
func (s *ImageSurface) Frame() *image.RGBA { return s.frame }

// Presents returns how many frames were presented.
func (s *ImageSurface) Presents() int { return s.presents }

// Acquired returns how many times the surface was handed out.
func (s *ImageSurface) Acquired() int { return s.acquired }
