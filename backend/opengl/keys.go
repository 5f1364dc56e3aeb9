package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/rgui"
)

// glfwKeyToKeyID maps a GLFW key to an rgui key. Keys without a name keep
// their GLFW key code, or the scancode when GLFW does not know the key.
func glfwKeyToKeyID(key glfw.Key, scancode int) rgui.KeyID {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return rgui.NamedKey(rgui.KeyA + rgui.Key(key-glfw.KeyA))
	case key >= glfw.Key0 && key <= glfw.Key9:
		return rgui.NamedKey(rgui.Key0 + rgui.Key(key-glfw.Key0))
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return rgui.NamedKey(rgui.KeyF1 + rgui.Key(key-glfw.KeyF1))
	}

	switch key {
	case glfw.KeyUp:
		return rgui.NamedKey(rgui.KeyArrowUp)
	case glfw.KeyDown:
		return rgui.NamedKey(rgui.KeyArrowDown)
	case glfw.KeyLeft:
		return rgui.NamedKey(rgui.KeyLeft)
	case glfw.KeyRight:
		return rgui.NamedKey(rgui.KeyRight)
	case glfw.KeySpace:
		return rgui.NamedKey(rgui.KeySpace)
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return rgui.NamedKey(rgui.KeyEnter)
	case glfw.KeyEscape:
		return rgui.NamedKey(rgui.KeyEscape)
	case glfw.KeyBackspace:
		return rgui.NamedKey(rgui.KeyBackspace)
	case glfw.KeyTab:
		return rgui.NamedKey(rgui.KeyTab)
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return rgui.NamedKey(rgui.KeyShift)
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return rgui.NamedKey(rgui.KeyControl)
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return rgui.NamedKey(rgui.KeyAlt)
	case glfw.KeySemicolon:
		return rgui.NamedKey(rgui.KeyOem1)
	case glfw.KeyEqual:
		return rgui.NamedKey(rgui.KeyOemPlus)
	case glfw.KeyComma:
		return rgui.NamedKey(rgui.KeyOemComma)
	case glfw.KeyMinus:
		return rgui.NamedKey(rgui.KeyOemMinus)
	case glfw.KeyPeriod:
		return rgui.NamedKey(rgui.KeyOemPeriod)
	case glfw.KeySlash:
		return rgui.NamedKey(rgui.KeyOem2)
	case glfw.KeyGraveAccent:
		return rgui.NamedKey(rgui.KeyOem3)
	case glfw.KeyLeftBracket:
		return rgui.NamedKey(rgui.KeyOem4)
	case glfw.KeyBackslash:
		return rgui.NamedKey(rgui.KeyOem5)
	case glfw.KeyRightBracket:
		return rgui.NamedKey(rgui.KeyOem6)
	case glfw.KeyApostrophe:
		return rgui.NamedKey(rgui.KeyOem7)
	case glfw.KeyUnknown:
		return rgui.UnknownKey(scancode)
	default:
		return rgui.UnknownKey(int(key))
	}
}

// glfwMouseButton maps GLFW mouse buttons. Buttons past the middle one keep
// their GLFW number.
func glfwMouseButton(button glfw.MouseButton) rgui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return rgui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return rgui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return rgui.MouseButtonMiddle
	default:
		return rgui.OtherButton(int(button))
	}
}
