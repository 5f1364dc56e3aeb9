package rgui

// EventHandler receives every event dispatched to a window.
//
// T is the application state type, normally a pointer so handlers can mutate
// it. Implementations switch on the event types they care about and ignore the
// rest. Only the rendering handler is expected to issue Renderer calls.
// Handlers run on the message loop thread and must not block.
type EventHandler[T any] interface {
	OnEvent(app T, ev Event, r Renderer)
}

// HandlerFunc adapts a function to the EventHandler interface.
type HandlerFunc[T any] func(app T, ev Event, r Renderer)

// OnEvent calls f(app, ev, r).
func (f HandlerFunc[T]) OnEvent(app T, ev Event, r Renderer) { f(app, ev, r) }

// NopHandler ignores every event. Embed it to get a no-op default.
type NopHandler[T any] struct{}

// OnEvent does nothing.
func (NopHandler[T]) OnEvent(T, Event, Renderer) {}

// RootEventHandler fans each event out to an ordered list of child handlers.
//
// Every child observes every event exactly once, in registration order. There
// is no short-circuiting and no priority: a child that fails internally (for
// example a logged draw error) does not keep later children from running.
type RootEventHandler[T any] struct {
	handlers []EventHandler[T]
}

// NewRootEventHandler creates a root handler with the given children.
func NewRootEventHandler[T any](handlers ...EventHandler[T]) *RootEventHandler[T] {
	return &RootEventHandler[T]{handlers: handlers}
}

// Add appends a child handler.
func (h *RootEventHandler[T]) Add(handler EventHandler[T]) {
	h.handlers = append(h.handlers, handler)
}

// Len returns the number of children.
func (h *RootEventHandler[T]) Len() int {
	return len(h.handlers)
}

func (h *RootEventHandler[T]) setBackground(c Color) {
	for _, child := range h.handlers {
		applyBackground(child, c)
	}
}

// OnEvent dispatches ev to every child in order.
func (h *RootEventHandler[T]) OnEvent(app T, ev Event, r Renderer) {
	for _, child := range h.handlers {
		child.OnEvent(app, ev, r)
	}
}
