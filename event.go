package rgui

import "fmt"

// Event describes a window or input occurrence. The set of events is closed:
// only the types in this file implement it. Events are plain data and never
// reference the renderer or the window.
type Event interface {
	isEvent()
}

// WindowClose is sent once when the window is being closed. The message loop
// terminates after every handler has observed it.
type WindowClose struct{}

// WindowResize is sent after the render target was resized.
type WindowResize struct {
	Size Size
}

// KeyDown is a raw key press.
type KeyDown struct {
	Key KeyID
}

// KeyUp is a raw key release.
type KeyUp struct {
	Key KeyID
}

// Character is a Unicode code point produced by the OS from key presses,
// dead keys or an input method.
type Character struct {
	Rune rune
}

// MouseMove reports the cursor position in client coordinates.
type MouseMove struct {
	X, Y int
}

// MouseDown is a mouse button press.
type MouseDown struct {
	X, Y   int
	Button MouseButton
}

// MouseUp is a mouse button release.
type MouseUp struct {
	X, Y   int
	Button MouseButton
}

// MouseWheel reports a vertical wheel movement in notches; positive is away
// from the user.
type MouseWheel struct {
	Delta float32
}

// Paint asks the handlers to redraw the window.
type Paint struct{}

func (WindowClose) isEvent()  {}
func (WindowResize) isEvent() {}
func (KeyDown) isEvent()      {}
func (KeyUp) isEvent()        {}
func (Character) isEvent()    {}
func (MouseMove) isEvent()    {}
func (MouseDown) isEvent()    {}
func (MouseUp) isEvent()      {}
func (MouseWheel) isEvent()   {}
func (Paint) isEvent()        {}

// MouseButton identifies a mouse button. Buttons other than left, right and
// middle keep their platform code.
type MouseButton struct {
	kind mouseButtonKind
	code int
}

type mouseButtonKind uint8

const (
	mouseLeft mouseButtonKind = iota + 1
	mouseRight
	mouseMiddle
	mouseOther
)

// Standard mouse buttons.
var (
	MouseButtonLeft   = MouseButton{kind: mouseLeft}
	MouseButtonRight  = MouseButton{kind: mouseRight}
	MouseButtonMiddle = MouseButton{kind: mouseMiddle}
)

// OtherButton returns a non-standard button identified by a platform code.
func OtherButton(code int) MouseButton {
	return MouseButton{kind: mouseOther, code: code}
}

// Code returns the platform code of a non-standard button, or -1.
func (b MouseButton) Code() int {
	if b.kind != mouseOther {
		return -1
	}
	return b.code
}

func (b MouseButton) String() string {
	switch b.kind {
	case mouseLeft:
		return "Left"
	case mouseRight:
		return "Right"
	case mouseMiddle:
		return "Middle"
	case mouseOther:
		return fmt.Sprintf("Other(%d)", b.code)
	default:
		return "None"
	}
}
