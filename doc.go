/*
Package rgui provides a retained-mode 2D rendering and event-dispatch runtime
for native desktop windows.

# Overview

The application builds a Scene of Drawables once. The scene persists across
frames and is redrawn through a Renderer every time the window receives a
Paint event. Native window messages are translated into a small closed set of
Events and dispatched to a RootEventHandler, which fans every event out to its
children in registration order.

The root package never imports a backend. Renderers and the native platform
are injected:

	backend/opengl    GLFW platform and OpenGL 4.1 renderer
	backend/software  CPU renderer drawing with gogpu/gg

# Quick Start

	type App struct {
	    rgui.InputContext
	    scene *rgui.Scene
	}

	func (a *App) Scene() *rgui.Scene { return a.scene }

	func run() error {
	    app := &App{scene: rgui.NewScene()}
	    app.scene.AddObject(rgui.NewRectangle(10, 10, 100, 50, rgui.Red))

	    canvas := rgui.NewCanvas(200, 200, 50, 50)
	    canvas.AddObject(rgui.NewCircle(10, 10, 5, rgui.Blue))
	    app.scene.AddObject(canvas)

	    cfg := rgui.NewConfig(rgui.WithTitle("demo"))
	    root := rgui.NewRootEventHandler[*App](rgui.NewDefaultInputHandler[*App]())

	    win, err := opengl.NewWindow(cfg, root, app)
	    if err != nil {
	        return err
	    }
	    return win.Run()
	}

# Scene Graph

Scene and Canvas draw their children strictly in insertion order; later
objects paint over earlier ones. A Canvas composes a translation onto the
current transform and clips to its own bounds. The prior transform and clip
are restored before Draw returns, also when a child fails.

# Device Loss

Renderer.EndDraw reports device loss with an error wrapping ErrDeviceLost.
The renderer has released its device dependent resources at that point, so
RenderTargetSize reports them absent and the next Paint message recreates
them before the Paint event is dispatched.

# Keyboard Input Modes

	KeyboardRaw               KeyDown/KeyUp only
	KeyboardTranslated        Character only
	KeyboardRawAndTranslated  both, KeyDown before its Characters

Shift, Control and Alt always produce KeyDown/KeyUp, in every mode.

# Logging

rgui logs through log/slog. SetVerbose enables debug output of the default
logger; SetLogger installs a different one.
*/
package rgui
