package rgui

import "log/slog"

// RenderEventHandler draws the application's Scene on every Paint event.
//
// Drawing errors are logged and swallowed so the message loop keeps running:
// a failed frame shows up as a blank or partial frame, never as a crash.
// Device loss is expected and logged at debug level; the renderer has already
// released its resources and the next Paint recreates them.
type RenderEventHandler[T HasScene] struct {
	// Background is the color the target is cleared to before drawing.
	Background Color
}

// backgroundSetter is implemented by handlers that clear the target or hold
// handlers that do.
type backgroundSetter interface {
	setBackground(Color)
}

// applyBackground sets the clear color of h and of the handlers it holds.
func applyBackground(h any, c Color) {
	if s, ok := h.(backgroundSetter); ok {
		s.setBackground(c)
	}
}

func (h *RenderEventHandler[T]) setBackground(c Color) { h.Background = c }

// NewRenderEventHandler creates a render handler clearing to black.
func NewRenderEventHandler[T HasScene]() *RenderEventHandler[T] {
	return &RenderEventHandler[T]{Background: Black}
}

// OnEvent implements EventHandler.
func (h *RenderEventHandler[T]) OnEvent(app T, ev Event, r Renderer) {
	if _, ok := ev.(Paint); !ok {
		return
	}

	r.BeginDraw()
	r.Clear(h.Background)

	if err := app.Scene().DrawAll(r); err != nil {
		Logger().Error("draw scene failed", slog.Any("err", err))
	}

	if err := r.EndDraw(); err != nil {
		if IsDeviceLost(err) {
			Logger().Debug("device lost, resources will be recreated on next paint")
			return
		}
		Logger().Error("end draw failed", slog.Any("err", err))
	}
}

// KeyboardInputHandler tracks pressed keys and the shared modifier state.
type KeyboardInputHandler[T HasInputState] struct {
	pressed map[KeyID]struct{}
}

// NewKeyboardInputHandler creates a keyboard handler with no keys pressed.
func NewKeyboardInputHandler[T HasInputState]() *KeyboardInputHandler[T] {
	return &KeyboardInputHandler[T]{pressed: make(map[KeyID]struct{})}
}

// IsKeyPressed returns true if key is currently held.
func (h *KeyboardInputHandler[T]) IsKeyPressed(key KeyID) bool {
	_, ok := h.pressed[key]
	return ok
}

// PressedCount returns the number of keys currently held.
func (h *KeyboardInputHandler[T]) PressedCount() int {
	return len(h.pressed)
}

// OnEvent implements EventHandler.
func (h *KeyboardInputHandler[T]) OnEvent(app T, ev Event, _ Renderer) {
	switch e := ev.(type) {
	case KeyDown:
		if h.pressed == nil {
			h.pressed = make(map[KeyID]struct{})
		}
		h.pressed[e.Key] = struct{}{}
		app.Modifiers().SetModifier(e.Key, true)
	case KeyUp:
		delete(h.pressed, e.Key)
		app.Modifiers().SetModifier(e.Key, false)
	}
}

// ModifierKeyHandler only maintains the shared Shift/Ctrl/Alt flags.
type ModifierKeyHandler[T HasInputState] struct{}

// OnEvent implements EventHandler.
func (ModifierKeyHandler[T]) OnEvent(app T, ev Event, _ Renderer) {
	switch e := ev.(type) {
	case KeyDown:
		app.Modifiers().SetModifier(e.Key, true)
	case KeyUp:
		app.Modifiers().SetModifier(e.Key, false)
	}
}

// MouseInputHandler maintains the shared MouseState.
type MouseInputHandler[T HasInputContext] struct{}

// OnEvent implements EventHandler.
func (MouseInputHandler[T]) OnEvent(app T, ev Event, _ Renderer) {
	mouse := &app.Input().Mouse
	switch e := ev.(type) {
	case MouseMove:
		mouse.SetPos(e.X, e.Y)
	case MouseDown:
		mouse.SetButton(e.Button, true)
	case MouseUp:
		mouse.SetButton(e.Button, false)
	}
}

// InputApp is the constraint for application state usable with
// DefaultInputHandler.
type InputApp interface {
	HasScene
	HasInputContext
}

// DefaultInputHandler bundles rendering, keyboard and mouse handling, in that
// order.
type DefaultInputHandler[T InputApp] struct {
	Render   *RenderEventHandler[T]
	Keyboard *KeyboardInputHandler[T]
	Mouse    MouseInputHandler[T]
}

// NewDefaultInputHandler creates the bundled handler.
func NewDefaultInputHandler[T InputApp]() *DefaultInputHandler[T] {
	return &DefaultInputHandler[T]{
		Render:   NewRenderEventHandler[T](),
		Keyboard: NewKeyboardInputHandler[T](),
	}
}

func (h *DefaultInputHandler[T]) setBackground(c Color) { h.Render.setBackground(c) }

// OnEvent implements EventHandler.
func (h *DefaultInputHandler[T]) OnEvent(app T, ev Event, r Renderer) {
	h.Render.OnEvent(app, ev, r)
	h.Keyboard.OnEvent(app, ev, r)
	h.Mouse.OnEvent(app, ev, r)
}
