package opengl

import (
	"fmt"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/backend/software"
)

// NewRendererFor creates the renderer selected by cfg.Renderer.
func NewRendererFor(cfg rgui.WindowConfig) (rgui.Renderer, error) {
	switch cfg.Renderer {
	case rgui.BackendOpenGL:
		return NewRenderer(cfg.Font)
	case rgui.BackendSoftware:
		return software.NewRenderer(cfg.Font)
	default:
		return nil, fmt.Errorf("unsupported renderer backend %v", cfg.Renderer)
	}
}

// NewWindow creates a GLFW window rendered by the backend cfg selects.
// It must be called from the main OS thread, and so must Run.
func NewWindow[T any](cfg rgui.WindowConfig, handler rgui.EventHandler[T], app T) (*rgui.Window[T], error) {
	r, err := NewRendererFor(cfg)
	if err != nil {
		return nil, fmt.Errorf("new window: %w", err)
	}
	w, err := rgui.NewWindow(NewPlatform(), r, cfg, handler, app)
	if err != nil {
		if cerr := r.Close(); cerr != nil {
			rgui.Logger().Warn("close renderer failed", "err", cerr)
		}
		return nil, err
	}
	return w, nil
}
