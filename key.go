package rgui

import "strconv"

// Key is a platform-independent name for a physical key.
// Names follow a US keyboard layout.
type Key int

const (
	// KeyUnknown marks a key without a name; KeyID.Code holds the raw platform code.
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyArrowUp
	KeyArrowDown
	KeyLeft
	KeyRight

	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyShift
	KeyControl
	KeyAlt

	KeyOem1      // ;:
	KeyOemPlus   // =+
	KeyOemComma  // ,<
	KeyOemMinus  // -_
	KeyOemPeriod // .>
	KeyOem2      // /?
	KeyOem3      // `~
	KeyOem4      // [{
	KeyOem5      // \|
	KeyOem6      // ]}
	KeyOem7      // '"
)

// KeyID identifies a key. Named keys have Code 0; unnamed keys have
// Key == KeyUnknown and carry the raw platform code, so no key press is dropped.
// KeyID is comparable and can be used as a map key.
type KeyID struct {
	Key  Key
	Code int
}

// NamedKey returns the KeyID for a named key.
func NamedKey(k Key) KeyID {
	return KeyID{Key: k}
}

// UnknownKey returns the KeyID for an unnamed key with the given raw code.
func UnknownKey(code int) KeyID {
	return KeyID{Key: KeyUnknown, Code: code}
}

// IsUnknown reports whether the key has no name.
func (k KeyID) IsUnknown() bool {
	return k.Key == KeyUnknown
}

// IsModifier reports whether the key is Shift, Control or Alt.
// Modifier keys always produce raw KeyDown/KeyUp events regardless of the
// keyboard input mode.
func (k KeyID) IsModifier() bool {
	switch k.Key {
	case KeyShift, KeyControl, KeyAlt:
		return true
	}
	return false
}

func (k KeyID) String() string {
	if k.Key == KeyUnknown {
		return "Unknown(" + strconv.Itoa(k.Code) + ")"
	}
	return k.Key.String()
}

var keyNames = map[Key]string{
	KeyUnknown:   "Unknown",
	KeyArrowUp:   "Up",
	KeyArrowDown: "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyShift:     "Shift",
	KeyControl:   "Ctrl",
	KeyAlt:       "Alt",
	KeyOem1:      ";",
	KeyOemPlus:   "=",
	KeyOemComma:  ",",
	KeyOemMinus:  "-",
	KeyOemPeriod: ".",
	KeyOem2:      "/",
	KeyOem3:      "`",
	KeyOem4:      "[",
	KeyOem5:      "\\",
	KeyOem6:      "]",
	KeyOem7:      "'",
}

// String returns a human-readable name for a key.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}
