package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/backend/software"
)

// blitSurface presents software frames to a GLFW window by uploading them
// to a texture and blitting it to the default framebuffer.
type blitSurface struct {
	h   *Handle
	tex uint32
	fbo uint32
	w   int32
	ht  int32
}

var _ software.SurfaceHandle = (*Handle)(nil)

// Surface implements software.SurfaceHandle, so a GLFW window can be the
// target of the software renderer.
func (h *Handle) Surface() (software.Surface, error) {
	if err := h.makeCurrent(); err != nil {
		return nil, err
	}
	s := &blitSurface{h: h}
	gl.GenTextures(1, &s.tex)
	gl.GenFramebuffers(1, &s.fbo)
	if code := gl.GetError(); code != gl.NO_ERROR {
		s.Release()
		return nil, fmt.Errorf("create blit surface: gl error 0x%x", code)
	}
	return s, nil
}

func (s *blitSurface) Size() rgui.Size {
	if s.h.win == nil {
		return rgui.Size{}
	}
	return s.h.framebufferSize()
}

func (s *blitSurface) Present(img *image.RGBA) error {
	if err := s.h.makeCurrent(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	b := img.Bounds()
	w, h := int32(b.Dx()), int32(b.Dy())

	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	if w != s.w || h != s.ht {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		s.w, s.ht = w, h
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, s.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, s.tex, 0)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	// Image rows run top-down, GL rows bottom-up.
	gl.BlitFramebuffer(0, 0, w, h, 0, h, w, 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	s.h.swapBuffers()

	switch code := gl.GetError(); code {
	case gl.NO_ERROR:
		return nil
	case glContextLost:
		return fmt.Errorf("present: %w", rgui.ErrDeviceLost)
	default:
		return fmt.Errorf("present: gl error 0x%x", code)
	}
}

func (s *blitSurface) Release() {
	if s.h.makeCurrent() != nil {
		return
	}
	if s.fbo != 0 {
		gl.DeleteFramebuffers(1, &s.fbo)
		s.fbo = 0
	}
	if s.tex != 0 {
		gl.DeleteTextures(1, &s.tex)
		s.tex = 0
	}
	s.w, s.ht = 0, 0
}
