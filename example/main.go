// Example opens a window showing a small scene graph: nested canvases with
// clipped shapes and a status line that follows the keyboard and mouse.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config example.toml -v
//
// Typed characters are echoed below the status line; Escape clears them.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// App is the application state shared by all handlers.
type App struct {
	rgui.InputContext

	scene *rgui.Scene
	typed []rune
	// invalidate requests a repaint once the window exists.
	invalidate func()
}

// Scene implements rgui.HasScene.
func (a *App) Scene() *rgui.Scene { return a.scene }

func run() error {
	configPath := flag.String("config", "", "path to a TOML window configuration")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	rgui.SetVerbose(*verbose)

	cfg := rgui.NewConfig(rgui.WithTitle("rgui example"), rgui.WithBackground(rgui.RGBA(0.12, 0.12, 0.14, 1)))
	if *configPath != "" {
		var err error
		if cfg, err = rgui.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	app := &App{invalidate: func() {}}
	app.scene = buildScene(app)

	root := rgui.NewRootEventHandler[*App](rgui.NewDefaultInputHandler[*App](), rgui.HandlerFunc[*App](onEvent))

	win, err := opengl.NewWindow(cfg, root, app)
	if err != nil {
		return err
	}
	app.invalidate = win.Invalidate
	return win.Run()
}

// onEvent runs after the default handlers, so the input state it reads is
// already up to date.
func onEvent(app *App, ev rgui.Event, _ rgui.Renderer) {
	switch e := ev.(type) {
	case rgui.KeyDown:
		rgui.Logger().Debug("key down", slog.String("key", e.Key.String()))
		if e.Key.Key == rgui.KeyEscape {
			app.typed = app.typed[:0]
		}
		app.invalidate()
	case rgui.KeyUp:
		app.invalidate()
	case rgui.Character:
		if e.Rune >= ' ' {
			app.typed = append(app.typed, e.Rune)
			if len(app.typed) > 40 {
				app.typed = app.typed[len(app.typed)-40:]
			}
			app.invalidate()
		}
	case rgui.MouseMove, rgui.MouseDown, rgui.MouseUp:
		app.invalidate()
	case rgui.MouseWheel:
		rgui.Logger().Debug("wheel", slog.Float64("delta", float64(e.Delta)))
	case rgui.WindowResize:
		rgui.Logger().Debug("resize", slog.Int("width", int(e.Size.W)), slog.Int("height", int(e.Size.H)))
	case rgui.WindowClose:
		rgui.Logger().Info("bye")
	}
}

func buildScene(app *App) *rgui.Scene {
	scene := rgui.NewScene()
	scene.AddObject(rgui.NewRectangle(10, 10, 100, 50, rgui.Red))

	outer := rgui.NewCanvas(200, 200, 300, 200)
	outer.AddObject(rgui.NewRectangle(0, 0, 300, 200, rgui.RGBA(0.2, 0.2, 0.25, 1)))
	outer.AddObject(rgui.NewCircle(150, 100, 60, rgui.Blue))

	inner := rgui.NewCanvas(10, 10, 50, 50)
	inner.AddObject(rgui.NewEllipse(0, 0, 100, 100, rgui.Green))
	outer.AddObject(inner)

	outer.AddObject(rgui.NewLine(0, 200, 300, 0, 2, rgui.White))
	outer.AddObject(rgui.NewText("clipped to 300x200", 170, 180, rgui.White))
	scene.AddObject(outer)

	scene.AddObject(rgui.DrawableFunc(func(r rgui.Renderer) error {
		return r.DrawText(rgui.NewText(status(app), 10, 80, rgui.Gray))
	}))
	scene.AddObject(rgui.DrawableFunc(func(r rgui.Renderer) error {
		return r.DrawText(rgui.NewText("> "+string(app.typed), 10, 110, rgui.White))
	}))
	return scene
}

func status(app *App) string {
	var mods []string
	kb := app.Modifiers()
	if kb.Shift {
		mods = append(mods, "Shift")
	}
	if kb.Ctrl {
		mods = append(mods, "Ctrl")
	}
	if kb.Alt {
		mods = append(mods, "Alt")
	}
	m := app.Input().Mouse
	return fmt.Sprintf("mouse %d,%d  left=%t right=%t  mods [%s]",
		m.X, m.Y, m.Left, m.Right, strings.Join(mods, " "))
}
