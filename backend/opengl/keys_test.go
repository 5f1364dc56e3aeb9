package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/rgui"
)

func TestGLFWKeyMapping(t *testing.T) {
	tests := []struct {
		key      glfw.Key
		scancode int
		want     rgui.KeyID
	}{
		{glfw.KeyA, 38, rgui.NamedKey(rgui.KeyA)},
		{glfw.KeyZ, 52, rgui.NamedKey(rgui.KeyZ)},
		{glfw.Key5, 14, rgui.NamedKey(rgui.Key5)},
		{glfw.KeyF12, 96, rgui.NamedKey(rgui.KeyF12)},
		{glfw.KeyUp, 111, rgui.NamedKey(rgui.KeyArrowUp)},
		{glfw.KeyDown, 116, rgui.NamedKey(rgui.KeyArrowDown)},
		{glfw.KeyKPEnter, 104, rgui.NamedKey(rgui.KeyEnter)},
		{glfw.KeyRightShift, 62, rgui.NamedKey(rgui.KeyShift)},
		{glfw.KeyLeftControl, 37, rgui.NamedKey(rgui.KeyControl)},
		{glfw.KeyBackslash, 51, rgui.NamedKey(rgui.KeyOem5)},
		{glfw.KeyInsert, 118, rgui.UnknownKey(int(glfw.KeyInsert))},
		{glfw.KeyUnknown, 203, rgui.UnknownKey(203)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, glfwKeyToKeyID(tt.key, tt.scancode), "key %d", tt.key)
	}
}

func TestGLFWMouseButtons(t *testing.T) {
	assert.Equal(t, rgui.MouseButtonLeft, glfwMouseButton(glfw.MouseButtonLeft))
	assert.Equal(t, rgui.MouseButtonMiddle, glfwMouseButton(glfw.MouseButtonMiddle))
	assert.Equal(t, rgui.OtherButton(int(glfw.MouseButton4)), glfwMouseButton(glfw.MouseButton4))
}

func TestScissorBox(t *testing.T) {
	x, y, w, h, ok := scissorBox([4]float32{10, 20, 110, 70}, 800, 600)
	// GL scissor origin is bottom-left.
	assert.True(t, ok)
	assert.Equal(t, []int32{10, 530, 100, 50}, []int32{x, y, w, h})

	_, _, _, _, ok = scissorBox([4]float32{50, 50, 50, 80}, 800, 600)
	assert.False(t, ok)

	x, y, w, h, ok = scissorBox([4]float32{-10, -10, 900, 700}, 800, 600)
	assert.True(t, ok)
	assert.Equal(t, []int32{0, 0, 800, 600}, []int32{x, y, w, h})
}
