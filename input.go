package rgui

// InputState holds the modifier key state shared between handlers.
// It is updated by KeyboardInputHandler and may be read by any handler.
type InputState struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// SetModifier records a modifier key transition. Non-modifier keys are ignored.
func (s *InputState) SetModifier(key KeyID, down bool) {
	switch key.Key {
	case KeyShift:
		s.Shift = down
	case KeyControl:
		s.Ctrl = down
	case KeyAlt:
		s.Alt = down
	}
}

// MouseState holds the cursor position and button state shared between handlers.
type MouseState struct {
	X, Y   int
	Left   bool
	Right  bool
	Middle bool
}

// SetPos sets the cursor position.
func (s *MouseState) SetPos(x, y int) {
	s.X = x
	s.Y = y
}

// SetButton sets the pressed state of a standard button. Other buttons are ignored.
func (s *MouseState) SetButton(button MouseButton, down bool) {
	switch button {
	case MouseButtonLeft:
		s.Left = down
	case MouseButtonRight:
		s.Right = down
	case MouseButtonMiddle:
		s.Middle = down
	}
}

// Pressed returns true if a standard button is currently held.
func (s *MouseState) Pressed(button MouseButton) bool {
	switch button {
	case MouseButtonLeft:
		return s.Left
	case MouseButtonRight:
		return s.Right
	case MouseButtonMiddle:
		return s.Middle
	}
	return false
}

// InputContext groups keyboard and mouse state. Application state usually
// embeds one and implements HasInputContext and HasInputState with it.
type InputContext struct {
	Keyboard InputState
	Mouse    MouseState
}

// Input returns c. It lets a struct embedding InputContext satisfy
// HasInputContext.
func (c *InputContext) Input() *InputContext { return c }

// Modifiers returns the keyboard state. It lets a struct embedding
// InputContext satisfy HasInputState.
func (c *InputContext) Modifiers() *InputState { return &c.Keyboard }

// HasInputState is implemented by application state that exposes modifier state.
type HasInputState interface {
	Modifiers() *InputState
}

// HasInputContext is implemented by application state that exposes mouse and
// keyboard state.
type HasInputContext interface {
	HasInputState
	Input() *InputContext
}
