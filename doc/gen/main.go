// Command gen renders the documentation scenes with the software renderer and
// saves JPEG screenshots to doc/imgs/. It needs no window or GPU.
//
// Usage:
//
//	go run ./doc/gen/
//	go run ./doc/gen/ -out /tmp/imgs -font "Go Mono"
package main

import (
	"flag"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/backend/software"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single scene screenshot to capture.
type screenshot struct {
	name   string      // filename without extension
	width  int         // surface width
	height int         // surface height
	scene  *rgui.Scene // scene to draw
	bg     rgui.Color  // clear color
}

// docApp is the minimal application state the render handler needs.
type docApp struct {
	scene *rgui.Scene
}

func (a docApp) Scene() *rgui.Scene { return a.scene }

func run() error {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	face := flag.String("font", "Go", "font face")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	rgui.SetVerbose(*verbose)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for i, s := range shots {
		if err := capture(rgui.WindowID(i+1), *face, s, *outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), *outDir)
	return nil
}

func capture(id rgui.WindowID, face string, s screenshot, outDir string) error {
	// Fresh renderer per screenshot so no state leaks between captures.
	r, err := software.NewRenderer(rgui.FontConfig{Face: face, Size: 16})
	if err != nil {
		return err
	}
	defer r.Close()

	surface := software.NewImageSurface(id, s.width, s.height)
	if err := r.CreateDeviceDependentResources(surface); err != nil {
		return err
	}

	h := rgui.NewRenderEventHandler[docApp]()
	h.Background = s.bg
	h.OnEvent(docApp{scene: s.scene}, rgui.Paint{}, r)

	img := surface.Frame()
	if img == nil {
		return fmt.Errorf("no frame presented")
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

var background = rgui.RGBA(0.12, 0.12, 0.14, 1)

// buildScreenshots returns the list of all scene screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "primitives", width: 400, height: 160, scene: primitives(), bg: background},
		{name: "canvas", width: 600, height: 450, scene: nestedCanvas(), bg: background},
		{name: "clip", width: 320, height: 240, scene: clipping(), bg: rgui.White},
		{name: "text", width: 400, height: 140, scene: textScene(), bg: background},
	}
}

func primitives() *rgui.Scene {
	s := rgui.NewScene()
	s.AddObject(rgui.NewRectangle(20, 20, 100, 60, rgui.Red))
	s.AddObject(rgui.NewEllipse(200, 50, 60, 30, rgui.Green))
	s.AddObject(rgui.NewCircle(330, 50, 30, rgui.Blue))
	s.AddObject(rgui.NewLine(20, 120, 380, 120, 3, rgui.White))
	s.AddObject(rgui.NewLine(20, 140, 380, 100, 1, rgui.Gray))
	return s
}

// nestedCanvas is the scene from the package documentation: a rectangle, and a
// canvas at (200, 200) holding a 50x50 canvas that clips a large ellipse.
func nestedCanvas() *rgui.Scene {
	s := rgui.NewScene()
	s.AddObject(rgui.NewRectangle(10, 10, 100, 50, rgui.Red))

	outer := rgui.NewCanvas(200, 200, 300, 200)
	outer.AddObject(rgui.NewRectangle(0, 0, 300, 200, rgui.RGBA(0.25, 0.25, 0.3, 1)))

	inner := rgui.NewCanvas(10, 10, 50, 50)
	inner.AddObject(rgui.NewEllipse(0, 0, 100, 100, rgui.Green))
	outer.AddObject(inner)
	outer.AddObject(rgui.NewText("(200,200) 300x200", 80, 20, rgui.White))

	s.AddObject(outer)
	return s
}

func clipping() *rgui.Scene {
	s := rgui.NewScene()
	for i := 0; i < 3; i++ {
		off := float32(i * 30)
		c := rgui.NewCanvas(20+off, 20+off, 200-2*off, 160-2*off)
		c.AddObject(rgui.NewRectangle(-100, -100, 1000, 1000, rgui.RGBA(0.2*float32(i+1), 0.3, 0.8-0.2*float32(i), 1)))
		c.AddObject(rgui.NewLine(0, 0, 400, 400, 4, rgui.Black))
		s.AddObject(c)
	}
	return s
}

func textScene() *rgui.Scene {
	s := rgui.NewScene()
	s.AddObject(rgui.NewText("The quick brown fox", 12, 12, rgui.White))
	s.AddObject(rgui.NewText("jumps over the lazy dog", 12, 40, rgui.RGBA(1, 0.85, 0.2, 1)))
	s.AddObject(rgui.NewText("0123456789 !?#&", 12, 68, rgui.Gray))
	return s
}
