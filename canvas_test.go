package rgui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/internal/recorder"
)

// scenarioScene is a red rectangle and a canvas at (200, 200) holding a
// 50x50 canvas at (10, 10) with a 100x100 ellipse at its origin.
func scenarioScene() *rgui.Scene {
	scene := rgui.NewScene()
	scene.AddObject(rgui.NewRectangle(10, 10, 100, 50, rgui.Red))

	outer := rgui.NewCanvas(200, 200, 300, 200)
	inner := rgui.NewCanvas(10, 10, 50, 50)
	inner.AddObject(rgui.NewEllipse(0, 0, 100, 100, rgui.Green))
	outer.AddObject(inner)
	scene.AddObject(outer)
	return scene
}

func TestScenarioCallSequence(t *testing.T) {
	r := recorder.New()
	r.BeginDraw()
	r.Clear(rgui.Black)
	require.NoError(t, scenarioScene().DrawAll(r))
	require.NoError(t, r.EndDraw())

	assert.Equal(t, []string{
		"BeginDraw",
		"Clear(0,0,0,1)",
		"FillRectangle(10,10,100,50)",
		"SetTransform(translate 200,200)",
		"PushClip(0,0,300,200)",
		"SetTransform(translate 210,210)",
		"PushClip(0,0,50,50)",
		"FillEllipse(0,0,100,100)",
		"PopClip",
		"SetTransform(translate 200,200)",
		"PopClip",
		"SetTransform(identity)",
		"EndDraw",
	}, r.Strings())
	assert.Equal(t, 0, r.ClipDepth())
	assert.Equal(t, 2, r.MaxClipDepth())
}

func TestCanvasWithTextCallSequence(t *testing.T) {
	canvas := rgui.NewCanvas(200, 200, 50, 50)
	canvas.AddObject(rgui.NewCircle(10, 10, 5, rgui.Blue))
	canvas.AddObject(rgui.NewText("Hi", 0, 0, rgui.Black))

	scene := rgui.NewScene()
	scene.AddObject(rgui.NewRectangle(10, 10, 100, 50, rgui.Red))
	scene.AddObject(canvas)

	r := recorder.New()
	require.NoError(t, scene.DrawAll(r))
	assert.Equal(t, []string{
		"FillRectangle(10,10,100,50)",
		"SetTransform(translate 200,200)",
		"PushClip(0,0,50,50)",
		"FillEllipse(10,10,5,5)",
		`DrawText("Hi",0,0)`,
		"PopClip",
		"SetTransform(identity)",
	}, r.Strings())
}

func TestCanvasPrimitiveSeesComposedTransform(t *testing.T) {
	r := recorder.New()
	r.BeginDraw()
	require.NoError(t, scenarioScene().DrawAll(r))

	var ellipse recorder.Call
	for _, c := range r.Calls {
		if c.Op == recorder.OpEllipse {
			ellipse = c
		}
	}
	assert.Equal(t, rgui.Translate(210, 210), ellipse.Transform)
	assert.Equal(t, rgui.Vec2{X: 210, Y: 210}, ellipse.Transform.Apply(rgui.Vec2{}))
}

func TestCanvasClipPushedInLocalFrame(t *testing.T) {
	r := recorder.New()
	r.BeginDraw()
	require.NoError(t, scenarioScene().DrawAll(r))

	var clips []recorder.Call
	for _, c := range r.Calls {
		if c.Op == recorder.OpPushClip {
			clips = append(clips, c)
		}
	}
	require.Len(t, clips, 2)
	// Device space bounds of the inner clip.
	assert.Equal(t, rgui.Rect{X: 210, Y: 210, W: 50, H: 50}, clips[1].Transform.Bounds(clips[1].Rect))
}

func TestCanvasRestoresStateOnError(t *testing.T) {
	boom := errors.New("boom")
	r := recorder.New()
	r.BeginDraw()
	r.SetTransform(rgui.Translate(5, 5))

	outer := rgui.NewCanvas(10, 10, 100, 100)
	inner := rgui.NewCanvas(1, 1, 10, 10)
	inner.AddObject(rgui.DrawableFunc(func(rgui.Renderer) error { return boom }))
	inner.AddObject(rgui.NewRectangle(0, 0, 1, 1, rgui.Red))
	outer.AddObject(inner)
	outer.AddObject(rgui.NewRectangle(0, 0, 1, 1, rgui.Red))

	require.ErrorIs(t, outer.Draw(r), boom)
	assert.Equal(t, 0, r.ClipDepth())
	assert.Equal(t, rgui.Translate(5, 5), r.Transform())
	assert.Equal(t, r.Count(recorder.OpPushClip), r.Count(recorder.OpPopClip))
	assert.Zero(t, r.Count(recorder.OpRectangle))
}

func TestEmptyCanvasStillBalancesClip(t *testing.T) {
	r := recorder.New()
	r.BeginDraw()
	require.NoError(t, rgui.NewCanvas(1, 2, 3, 4).Draw(r))
	assert.Equal(t, []string{
		"BeginDraw",
		"SetTransform(translate 1,2)",
		"PushClip(0,0,3,4)",
		"PopClip",
		"SetTransform(identity)",
	}, r.Strings())
}

func TestCanvasSetters(t *testing.T) {
	c := rgui.NewCanvas(0, 0, 10, 10)
	c.SetPosition(5, 6)
	c.SetSize(7, 8)
	assert.Equal(t, rgui.Rect{X: 5, Y: 6, W: 7, H: 8}, c.Rect())
	c.SetRect(1, 2, 3, 4)
	assert.Equal(t, rgui.Rect{X: 1, Y: 2, W: 3, H: 4}, c.Rect())
	c.AddObject(rgui.NewRectangle(0, 0, 1, 1, rgui.Red))
	assert.Equal(t, 1, c.Len())
}
