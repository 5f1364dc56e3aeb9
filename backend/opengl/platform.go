package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/rgui"
)

var errNotDrawing = errors.New("draw call outside BeginDraw/EndDraw")

var (
	glInitOnce sync.Once
	glInitErr  error
)

// initGL loads the GL function pointers. It needs a current context.
func initGL() error {
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	return glInitErr
}

// Handle is the native handle of a GLFW window.
type Handle struct {
	id  rgui.WindowID
	win *glfw.Window
}

// WindowID implements rgui.NativeHandle.
func (h *Handle) WindowID() rgui.WindowID { return h.id }

// Window returns the GLFW window, or nil once destroyed.
func (h *Handle) Window() *glfw.Window { return h.win }

func (h *Handle) makeCurrent() error {
	if h.win == nil {
		return fmt.Errorf("window %d destroyed", h.id)
	}
	if glfw.GetCurrentContext() != h.win {
		h.win.MakeContextCurrent()
	}
	if err := initGL(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	return nil
}

func (h *Handle) framebufferSize() rgui.Size {
	w, ht := h.win.GetFramebufferSize()
	return rgui.Size{W: uint32(max(w, 0)), H: uint32(max(ht, 0))}
}

func (h *Handle) swapBuffers() {
	if h.win != nil {
		h.win.SwapBuffers()
	}
}

// Platform implements rgui.Platform on GLFW. GLFW callbacks are turned into
// rgui.Messages and queued; WaitMessage hands them out one at a time.
//
// All methods must be called from the main OS thread. GLFW is initialized by
// the first CreateWindow and terminated when the last window is destroyed.
type Platform struct {
	initialized bool
	nextID      rgui.WindowID
	windows     map[*glfw.Window]*Handle
	queue       []rgui.Message

	// keyPending is true while the last queued message is a key press that
	// still collects the characters GLFW reports for it.
	keyPending bool
	cursorX    int
	cursorY    int
}

var _ rgui.Platform = (*Platform)(nil)

// NewPlatform creates a GLFW platform.
func NewPlatform() *Platform {
	return &Platform{
		nextID:  1,
		windows: make(map[*glfw.Window]*Handle),
	}
}

func (p *Platform) push(msg rgui.Message) {
	p.queue = append(p.queue, msg)
	p.keyPending = false
}

// CreateWindow creates a window with an OpenGL 4.1 core context.
func (p *Platform) CreateWindow(cfg rgui.WindowConfig) (rgui.NativeHandle, error) {
	if !p.initialized {
		if err := glfw.Init(); err != nil {
			return nil, &rgui.PlatformError{Op: "init glfw", Err: err}
		}
		p.initialized = true
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextRobustness, glfw.LoseContextOnReset)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, &rgui.PlatformError{Op: "create window", Err: err}
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	h := &Handle{id: p.nextID, win: win}
	p.nextID++
	p.windows[win] = h
	p.install(win)

	p.push(rgui.Message{Kind: rgui.MsgCreate, Window: h.id})
	p.push(rgui.Message{Kind: rgui.MsgPaint, Window: h.id})
	return h, nil
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// install wires the GLFW callbacks of win to the message queue.
func (p *Platform) install(win *glfw.Window) {
	win.SetCloseCallback(func(w *glfw.Window) {
		w.SetShouldClose(false)
		p.post(w, rgui.Message{Kind: rgui.MsgClose})
	})
	win.SetRefreshCallback(func(w *glfw.Window) {
		p.post(w, rgui.Message{Kind: rgui.MsgPaint})
	})
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		size := rgui.Size{W: uint32(max(width, 0)), H: uint32(max(height, 0))}
		p.post(w, rgui.Message{Kind: rgui.MsgResize, Size: size})
		p.post(w, rgui.Message{Kind: rgui.MsgPaint})
	})
	win.SetKeyCallback(p.keyCallback)
	win.SetCharCallback(p.charCallback)
	win.SetMouseButtonCallback(p.mouseButtonCallback)
	win.SetCursorPosCallback(p.cursorPosCallback)
	win.SetScrollCallback(p.scrollCallback)
}

// post queues msg for the window w. Callbacks of unknown windows are dropped.
func (p *Platform) post(w *glfw.Window, msg rgui.Message) {
	h, ok := p.windows[w]
	if !ok {
		return
	}
	msg.Window = h.id
	p.push(msg)
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	id := glfwKeyToKeyID(key, scancode)
	switch action {
	case glfw.Press, glfw.Repeat:
		p.post(w, rgui.Message{Kind: rgui.MsgKeyDown, Key: id, Raw: mods})
		p.keyPending = true
	case glfw.Release:
		p.post(w, rgui.Message{Kind: rgui.MsgKeyUp, Key: id, Raw: mods})
	}
}

// charCallback attaches characters to the key press that produced them.
// Characters without a preceding key press (input method commits) become
// MsgChar messages.
func (p *Platform) charCallback(w *glfw.Window, char rune) {
	h, ok := p.windows[w]
	if !ok {
		return
	}
	if p.keyPending && len(p.queue) > 0 {
		last := &p.queue[len(p.queue)-1]
		if last.Kind == rgui.MsgKeyDown && last.Window == h.id {
			last.Chars = append(last.Chars, char)
			return
		}
	}
	p.post(w, rgui.Message{Kind: rgui.MsgChar, Rune: char})
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	msg := rgui.Message{
		X:      p.cursorX,
		Y:      p.cursorY,
		Button: glfwMouseButton(button),
		Raw:    mods,
	}
	switch action {
	case glfw.Press:
		msg.Kind = rgui.MsgMouseDown
	case glfw.Release:
		msg.Kind = rgui.MsgMouseUp
	default:
		return
	}
	p.post(w, msg)
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.cursorX = int(math.Floor(xpos))
	p.cursorY = int(math.Floor(ypos))
	p.post(w, rgui.Message{Kind: rgui.MsgMouseMove, X: p.cursorX, Y: p.cursorY})
}

// scrollCallback reports vertical scrolling. GLFW offsets are already in
// notches.
func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	if yoff == 0 {
		return
	}
	p.post(w, rgui.Message{Kind: rgui.MsgMouseWheel, Delta: float32(yoff), X: p.cursorX, Y: p.cursorY})
}

// WaitMessage blocks in glfw.WaitEvents until a message is queued. It returns
// false once every window has been destroyed.
func (p *Platform) WaitMessage() (rgui.Message, bool) {
	for len(p.queue) == 0 {
		if len(p.windows) == 0 {
			return rgui.Message{}, false
		}
		glfw.WaitEvents()
	}
	msg := p.queue[0]
	p.queue = p.queue[1:]
	if len(p.queue) == 0 {
		p.keyPending = false
	}
	return msg, true
}

// Forward handles messages no layer above recognized. GLFW has no default
// window procedure, so they are only logged.
func (p *Platform) Forward(msg rgui.Message) {
	rgui.Logger().Debug("unhandled message",
		slog.String("kind", msg.Kind.String()),
		slog.Uint64("window", uint64(msg.Window)))
}

// Invalidate queues a paint message for h and wakes WaitMessage.
func (p *Platform) Invalidate(h rgui.NativeHandle) {
	p.push(rgui.Message{Kind: rgui.MsgPaint, Window: h.WindowID()})
	if p.initialized {
		glfw.PostEmptyEvent()
	}
}

// DestroyWindow destroys the GLFW window and drops its queued messages.
func (p *Platform) DestroyWindow(nh rgui.NativeHandle) error {
	h, ok := nh.(*Handle)
	if !ok || h.win == nil {
		return fmt.Errorf("destroy window: invalid handle %v", nh)
	}
	delete(p.windows, h.win)
	h.win.Destroy()
	h.win = nil

	kept := p.queue[:0]
	for _, msg := range p.queue {
		if msg.Window != h.id {
			kept = append(kept, msg)
		}
	}
	p.queue = kept
	p.keyPending = false

	if len(p.windows) == 0 && p.initialized {
		glfw.Terminate()
		p.initialized = false
	}
	return nil
}
