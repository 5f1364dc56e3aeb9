package rgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/rgui"
)

var (
	keyA  = rgui.NamedKey(rgui.KeyA)
	shift = rgui.NamedKey(rgui.KeyShift)
)

func TestTranslateKeyboardModes(t *testing.T) {
	tests := []struct {
		name string
		msg  rgui.Message
		mode rgui.KeyboardInputMode
		want []rgui.Event
	}{
		{
			name: "key down raw+translated",
			msg:  rgui.Message{Kind: rgui.MsgKeyDown, Key: keyA, Chars: []rune{'a'}},
			mode: rgui.KeyboardRawAndTranslated,
			want: []rgui.Event{rgui.KeyDown{Key: keyA}, rgui.Character{Rune: 'a'}},
		},
		{
			name: "key down raw",
			msg:  rgui.Message{Kind: rgui.MsgKeyDown, Key: keyA, Chars: []rune{'a'}},
			mode: rgui.KeyboardRaw,
			want: []rgui.Event{rgui.KeyDown{Key: keyA}},
		},
		{
			name: "key down translated",
			msg:  rgui.Message{Kind: rgui.MsgKeyDown, Key: keyA, Chars: []rune{'a'}},
			mode: rgui.KeyboardTranslated,
			want: []rgui.Event{rgui.Character{Rune: 'a'}},
		},
		{
			name: "dead key produces several characters",
			msg:  rgui.Message{Kind: rgui.MsgKeyDown, Key: keyA, Chars: []rune{'^', 'a'}},
			mode: rgui.KeyboardTranslated,
			want: []rgui.Event{rgui.Character{Rune: '^'}, rgui.Character{Rune: 'a'}},
		},
		{
			name: "key without text in translated mode",
			msg:  rgui.Message{Kind: rgui.MsgKeyDown, Key: rgui.NamedKey(rgui.KeyF5)},
			mode: rgui.KeyboardTranslated,
			want: nil,
		},
		{
			name: "modifier down in translated mode",
			msg:  rgui.Message{Kind: rgui.MsgKeyDown, Key: shift},
			mode: rgui.KeyboardTranslated,
			want: []rgui.Event{rgui.KeyDown{Key: shift}},
		},
		{
			name: "modifier up in translated mode",
			msg:  rgui.Message{Kind: rgui.MsgKeyUp, Key: shift},
			mode: rgui.KeyboardTranslated,
			want: []rgui.Event{rgui.KeyUp{Key: shift}},
		},
		{
			name: "key up translated",
			msg:  rgui.Message{Kind: rgui.MsgKeyUp, Key: keyA},
			mode: rgui.KeyboardTranslated,
			want: nil,
		},
		{
			name: "key up raw",
			msg:  rgui.Message{Kind: rgui.MsgKeyUp, Key: keyA},
			mode: rgui.KeyboardRaw,
			want: []rgui.Event{rgui.KeyUp{Key: keyA}},
		},
		{
			name: "char raw",
			msg:  rgui.Message{Kind: rgui.MsgChar, Rune: 'é'},
			mode: rgui.KeyboardRaw,
			want: nil,
		},
		{
			name: "char translated",
			msg:  rgui.Message{Kind: rgui.MsgChar, Rune: 'é'},
			mode: rgui.KeyboardTranslated,
			want: []rgui.Event{rgui.Character{Rune: 'é'}},
		},
		{
			name: "unknown key keeps its code",
			msg:  rgui.Message{Kind: rgui.MsgKeyDown, Key: rgui.UnknownKey(0xE2)},
			mode: rgui.KeyboardRaw,
			want: []rgui.Event{rgui.KeyDown{Key: rgui.UnknownKey(0xE2)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, handled := rgui.TranslateMessage(tt.msg, tt.mode)
			assert.True(t, handled)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateWindowAndMouseMessages(t *testing.T) {
	tests := []struct {
		msg  rgui.Message
		want []rgui.Event
	}{
		{rgui.Message{Kind: rgui.MsgClose}, []rgui.Event{rgui.WindowClose{}}},
		{rgui.Message{Kind: rgui.MsgPaint}, []rgui.Event{rgui.Paint{}}},
		{
			rgui.Message{Kind: rgui.MsgResize, Size: rgui.Size{W: 640, H: 480}},
			[]rgui.Event{rgui.WindowResize{Size: rgui.Size{W: 640, H: 480}}},
		},
		{rgui.Message{Kind: rgui.MsgMouseMove, X: 1, Y: 2}, []rgui.Event{rgui.MouseMove{X: 1, Y: 2}}},
		{
			rgui.Message{Kind: rgui.MsgMouseDown, X: 3, Y: 4, Button: rgui.MouseButtonLeft},
			[]rgui.Event{rgui.MouseDown{X: 3, Y: 4, Button: rgui.MouseButtonLeft}},
		},
		{
			rgui.Message{Kind: rgui.MsgMouseUp, X: 5, Y: 6, Button: rgui.OtherButton(3)},
			[]rgui.Event{rgui.MouseUp{X: 5, Y: 6, Button: rgui.OtherButton(3)}},
		},
		{rgui.Message{Kind: rgui.MsgMouseWheel, Delta: -2}, []rgui.Event{rgui.MouseWheel{Delta: -2}}},
		{rgui.Message{Kind: rgui.MsgCreate}, nil},
		{rgui.Message{Kind: rgui.MsgFinalDestroy}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.msg.Kind.String(), func(t *testing.T) {
			for _, mode := range []rgui.KeyboardInputMode{rgui.KeyboardRaw, rgui.KeyboardTranslated, rgui.KeyboardRawAndTranslated} {
				got, handled := rgui.TranslateMessage(tt.msg, mode)
				assert.True(t, handled)
				assert.Equal(t, tt.want, got, "mode %v", mode)
			}
		})
	}
}

func TestTranslateUnknownMessage(t *testing.T) {
	got, handled := rgui.TranslateMessage(rgui.Message{Kind: rgui.MsgUnknown, Raw: 0x1234}, rgui.KeyboardRaw)
	assert.False(t, handled)
	assert.Nil(t, got)
}

func TestTranslateIsPure(t *testing.T) {
	msg := rgui.Message{Kind: rgui.MsgKeyDown, Key: keyA, Chars: []rune{'a'}}
	first, _ := rgui.TranslateMessage(msg, rgui.KeyboardRawAndTranslated)
	second, _ := rgui.TranslateMessage(msg, rgui.KeyboardRawAndTranslated)
	assert.Equal(t, first, second)
	assert.Equal(t, []rune{'a'}, msg.Chars)
}

func TestMessageKindString(t *testing.T) {
	assert.Equal(t, "KeyDown", rgui.MsgKeyDown.String())
	assert.Equal(t, "MessageKind(99)", rgui.MessageKind(99).String())
}
