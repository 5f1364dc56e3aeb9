package rgui

import "strconv"

// MessageKind identifies a native window message after it has been decoded by
// a platform backend.
type MessageKind int

const (
	MsgUnknown MessageKind = iota
	// MsgCreate is delivered once, right after the native window exists.
	MsgCreate
	// MsgClose is delivered when the user or the system asks the window to close.
	MsgClose
	// MsgFinalDestroy is the last message a window receives.
	MsgFinalDestroy
	MsgPaint
	MsgResize
	MsgKeyDown
	MsgKeyUp
	// MsgChar carries characters not attached to a key press, such as input
	// method commits.
	MsgChar
	MsgMouseMove
	MsgMouseDown
	MsgMouseUp
	MsgMouseWheel
)

var messageKindNames = [...]string{
	MsgUnknown:      "Unknown",
	MsgCreate:       "Create",
	MsgClose:        "Close",
	MsgFinalDestroy: "FinalDestroy",
	MsgPaint:        "Paint",
	MsgResize:       "Resize",
	MsgKeyDown:      "KeyDown",
	MsgKeyUp:        "KeyUp",
	MsgChar:         "Char",
	MsgMouseMove:    "MouseMove",
	MsgMouseDown:    "MouseDown",
	MsgMouseUp:      "MouseUp",
	MsgMouseWheel:   "MouseWheel",
}

func (k MessageKind) String() string {
	if k >= 0 && int(k) < len(messageKindNames) {
		return messageKindNames[k]
	}
	return "MessageKind(" + strconv.Itoa(int(k)) + ")"
}

// Message is a native window message decoded into platform-independent
// fields. Only the fields relevant to Kind are set.
type Message struct {
	Kind   MessageKind
	Window WindowID

	// Key is the key of a MsgKeyDown or MsgKeyUp.
	Key KeyID
	// Chars holds the characters the OS produced for a MsgKeyDown, in order.
	// It is empty for keys that produce no text.
	Chars []rune
	// Rune is the character of a MsgChar.
	Rune rune

	// X and Y are client coordinates of mouse messages.
	X, Y   int
	Button MouseButton
	// Delta is the wheel movement in notches.
	Delta float32

	// Size is the new client size of a MsgResize.
	Size Size

	// Raw is the backend's native payload, passed back untouched to
	// Platform.Forward.
	Raw any
}

// Translate converts a native message into the events to dispatch, applying
// the keyboard input mode. It has no side effects.
//
// The boolean result is false when the message kind is not one this layer
// handles; such messages must be forwarded to the platform default handler.
// MsgCreate and MsgFinalDestroy are recognized but produce no events.
func TranslateMessage(msg Message, mode KeyboardInputMode) ([]Event, bool) {
	switch msg.Kind {
	case MsgCreate, MsgFinalDestroy:
		return nil, true
	case MsgClose:
		return []Event{WindowClose{}}, true
	case MsgPaint:
		return []Event{Paint{}}, true
	case MsgResize:
		return []Event{WindowResize{Size: msg.Size}}, true
	case MsgKeyDown:
		return translateKeyDown(msg, mode), true
	case MsgKeyUp:
		if mode.raw() || msg.Key.IsModifier() {
			return []Event{KeyUp{Key: msg.Key}}, true
		}
		return nil, true
	case MsgChar:
		if mode.translated() {
			return []Event{Character{Rune: msg.Rune}}, true
		}
		return nil, true
	case MsgMouseMove:
		return []Event{MouseMove{X: msg.X, Y: msg.Y}}, true
	case MsgMouseDown:
		return []Event{MouseDown{X: msg.X, Y: msg.Y, Button: msg.Button}}, true
	case MsgMouseUp:
		return []Event{MouseUp{X: msg.X, Y: msg.Y, Button: msg.Button}}, true
	case MsgMouseWheel:
		return []Event{MouseWheel{Delta: msg.Delta}}, true
	}
	return nil, false
}

func translateKeyDown(msg Message, mode KeyboardInputMode) []Event {
	var events []Event
	if mode.raw() || msg.Key.IsModifier() {
		events = append(events, KeyDown{Key: msg.Key})
	}
	if mode.translated() {
		for _, r := range msg.Chars {
			events = append(events, Character{Rune: r})
		}
	}
	return events
}
