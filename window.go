package rgui

import (
	"errors"
	"fmt"
	"log/slog"
)

// Platform is the native windowing subsystem: it creates windows and delivers
// their messages. Implementations live in backend packages.
type Platform interface {
	Forwarder

	// CreateWindow creates a native window. The first message the window
	// delivers is MsgCreate.
	CreateWindow(cfg WindowConfig) (NativeHandle, error)
	// WaitMessage blocks until the next message is available. It returns false
	// when the platform has no more messages to deliver.
	WaitMessage() (Message, bool)
	// Invalidate requests a MsgPaint for h.
	Invalidate(h NativeHandle)
	// DestroyWindow destroys the native window. No message is delivered for h
	// afterwards.
	DestroyWindow(h NativeHandle) error
}

// Window is a native window bound to a renderer, a root event handler and the
// application state.
type Window[T any] struct {
	platform Platform
	router   *Router[T]
	state    *WindowState[T]
	cfg      WindowConfig
	closed   bool
}

// NewWindow creates the native window and its device dependent resources.
// The configured background replaces the clear color of the render handlers
// in handler. Resource creation failure is fatal: the native window is
// destroyed again and the error, a *ResourceError, is returned.
func NewWindow[T any](p Platform, r Renderer, cfg WindowConfig, handler EventHandler[T], app T) (*Window[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new window: %w", err)
	}
	if handler == nil {
		handler = NopHandler[T]{}
	}
	applyBackground(handler, cfg.Background)

	w := &Window[T]{
		platform: p,
		router:   NewRouter[T](p),
		cfg:      cfg,
		state: &WindowState[T]{
			App:      app,
			Handler:  handler,
			Renderer: r,
			Mode:     cfg.KeyboardMode,
		},
	}
	w.router.Expect(w.state)

	h, err := p.CreateWindow(cfg)
	if err != nil {
		var pe *PlatformError
		if !errors.As(err, &pe) {
			err = &PlatformError{Op: "create window", Err: err}
		}
		return nil, fmt.Errorf("new window: %w", err)
	}
	w.state.Handle = h

	if err := r.CreateDeviceDependentResources(h); err != nil {
		var re *ResourceError
		if !errors.As(err, &re) {
			err = &ResourceError{Op: "device resources", Err: err}
		}
		if derr := p.DestroyWindow(h); derr != nil {
			Logger().Warn("destroy window failed", slog.Any("err", derr))
		}
		return nil, fmt.Errorf("new window: %w", err)
	}

	Logger().Debug("window created",
		slog.Uint64("window", uint64(h.WindowID())),
		slog.String("title", cfg.Title),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.String("keyboard", cfg.KeyboardMode.String()))
	return w, nil
}

// Handle returns the native window handle.
func (w *Window[T]) Handle() NativeHandle { return w.state.Handle }

// Renderer returns the window's renderer.
func (w *Window[T]) Renderer() Renderer { return w.state.Renderer }

// App returns the application state.
func (w *Window[T]) App() T { return w.state.App }

// Config returns the configuration the window was created with.
func (w *Window[T]) Config() WindowConfig { return w.cfg }

// Invalidate requests a repaint.
func (w *Window[T]) Invalidate() {
	w.platform.Invalidate(w.state.Handle)
}

// Run pumps messages until the window is closed, then destroys the native
// window and closes the renderer.
func (w *Window[T]) Run() error {
	if w.closed {
		return errors.New("rgui: window already closed")
	}
	for {
		msg, ok := w.platform.WaitMessage()
		if !ok {
			break
		}
		if w.router.Route(msg) {
			break
		}
	}
	return w.shutdown()
}

func (w *Window[T]) shutdown() error {
	w.closed = true
	h := w.state.Handle
	var errs []error
	if err := w.platform.DestroyWindow(h); err != nil {
		errs = append(errs, &PlatformError{Op: "destroy window", Err: err})
	}
	w.router.Route(Message{Kind: MsgFinalDestroy, Window: h.WindowID()})
	if err := w.state.Renderer.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
