package rgui

import (
	"fmt"
	"log/slog"
)

// WindowState is the per-window block associated with a native window for
// the window's lifetime.
type WindowState[T any] struct {
	App      T
	Handler  EventHandler[T]
	Renderer Renderer
	Mode     KeyboardInputMode
	Handle   NativeHandle
}

// Forwarder passes unhandled messages to the platform default handler.
type Forwarder interface {
	Forward(msg Message)
}

// Router owns the window registry and turns native messages into handler
// calls. It is the stateful half of the translation layer; TranslateMessage is the
// pure half.
//
// A window is associated when its MsgCreate arrives, using the state handed to
// Expect before the native window was created, and disassociated when its
// MsgFinalDestroy arrives. Messages for windows without an association are
// forwarded unmodified.
type Router[T any] struct {
	fwd     Forwarder
	windows map[WindowID]*WindowState[T]
	pending *WindowState[T]
	quit    bool
}

// NewRouter creates an empty router forwarding unhandled messages to fwd.
func NewRouter[T any](fwd Forwarder) *Router[T] {
	return &Router[T]{
		fwd:     fwd,
		windows: make(map[WindowID]*WindowState[T]),
	}
}

// Expect records the state to associate with the next created window.
func (r *Router[T]) Expect(st *WindowState[T]) {
	r.pending = st
}

// Attach associates st with id. It fails if id already has an association.
func (r *Router[T]) Attach(id WindowID, st *WindowState[T]) error {
	if _, ok := r.windows[id]; ok {
		return fmt.Errorf("attach window %d: %w", id, ErrAlreadyAssociated)
	}
	r.windows[id] = st
	return nil
}

// Detach removes the association for id and returns it.
func (r *Router[T]) Detach(id WindowID) (*WindowState[T], bool) {
	st, ok := r.windows[id]
	if ok {
		delete(r.windows, id)
	}
	return st, ok
}

// Lookup returns the state associated with id.
func (r *Router[T]) Lookup(id WindowID) (*WindowState[T], bool) {
	st, ok := r.windows[id]
	return st, ok
}

// Len returns the number of associated windows.
func (r *Router[T]) Len() int {
	return len(r.windows)
}

// Quit reports whether a window was closed and the message loop must stop.
func (r *Router[T]) Quit() bool {
	return r.quit
}

// Route handles one message and reports whether the message loop must stop.
// Every event produced by the message has been dispatched to the window's
// handler when Route returns.
func (r *Router[T]) Route(msg Message) bool {
	if msg.Kind == MsgCreate {
		r.create(msg)
		return r.quit
	}

	st, ok := r.windows[msg.Window]
	if !ok {
		r.fwd.Forward(msg)
		return r.quit
	}

	switch msg.Kind {
	case MsgFinalDestroy:
		r.Detach(msg.Window)
		return r.quit
	case MsgResize:
		if err := st.Renderer.ResizeRenderTarget(msg.Size); err != nil {
			Logger().Warn("resize render target failed",
				slog.Uint64("window", uint64(msg.Window)), slog.Any("err", err))
		}
	case MsgPaint:
		if _, ok := st.Renderer.RenderTargetSize(); !ok {
			if err := st.Renderer.CreateDeviceDependentResources(st.Handle); err != nil {
				Logger().Error("recreate device resources failed",
					slog.Uint64("window", uint64(msg.Window)), slog.Any("err", err))
				return r.quit
			}
			Logger().Debug("device resources recreated", slog.Uint64("window", uint64(msg.Window)))
		}
	}

	events, handled := TranslateMessage(msg, st.Mode)
	if !handled {
		r.fwd.Forward(msg)
		return r.quit
	}
	for _, ev := range events {
		st.Handler.OnEvent(st.App, ev, st.Renderer)
	}

	if msg.Kind == MsgClose {
		r.quit = true
	}
	return r.quit
}

func (r *Router[T]) create(msg Message) {
	st := r.pending
	if st == nil {
		r.fwd.Forward(msg)
		return
	}
	if err := r.Attach(msg.Window, st); err != nil {
		Logger().Error("associate window state failed", slog.Any("err", err))
		return
	}
	r.pending = nil
}
