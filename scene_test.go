package rgui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/internal/recorder"
)

func TestSceneDrawsInInsertionOrder(t *testing.T) {
	s := rgui.NewScene()
	s.AddObject(rgui.NewRectangle(0, 0, 10, 10, rgui.Red))
	s.AddObject(rgui.NewEllipse(5, 5, 2, 3, rgui.Green))
	s.AddObject(rgui.NewLine(0, 0, 4, 4, 1, rgui.Blue))
	s.AddObject(rgui.NewText("Hi", 1, 2, rgui.White))
	require.Equal(t, 4, s.Len())

	r := recorder.New()
	require.NoError(t, s.DrawAll(r))
	assert.Equal(t, []string{
		"FillRectangle(0,0,10,10)",
		"FillEllipse(5,5,2,3)",
		"DrawLine(0,0,4,4)",
		`DrawText("Hi",1,2)`,
	}, r.Strings())
}

func TestEmptySceneDrawsNothing(t *testing.T) {
	r := recorder.New()
	require.NoError(t, rgui.NewScene().DrawAll(r))
	assert.Empty(t, r.Calls)
}

func TestSceneStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	s := rgui.NewScene()
	s.AddObject(rgui.NewRectangle(0, 0, 1, 1, rgui.Red))
	s.AddObject(rgui.DrawableFunc(func(rgui.Renderer) error { return boom }))
	s.AddObject(rgui.NewRectangle(2, 2, 1, 1, rgui.Red))

	r := recorder.New()
	err := s.DrawAll(r)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, r.Count(recorder.OpRectangle))
}

func TestSceneReturnsRendererError(t *testing.T) {
	r := recorder.New()
	r.FailOn = func(c recorder.Call) error {
		if c.Op == recorder.OpEllipse {
			return &rgui.DrawError{Op: "draw ellipse", Err: errors.New("bad geometry")}
		}
		return nil
	}

	s := rgui.NewScene()
	s.AddObject(rgui.NewCircle(0, 0, 1, rgui.Red))
	s.AddObject(rgui.NewRectangle(0, 0, 1, 1, rgui.Red))

	var de *rgui.DrawError
	require.ErrorAs(t, s.DrawAll(r), &de)
	assert.Equal(t, "draw ellipse", de.Op)
	assert.Zero(t, r.Count(recorder.OpRectangle))
}

func TestPrimitiveConstructors(t *testing.T) {
	c := rgui.NewCircle(3, 4, 5, rgui.Red)
	assert.Equal(t, rgui.Ellipse{CenterX: 3, CenterY: 4, RadiusX: 5, RadiusY: 5, Color: rgui.Red}, c)

	rect := rgui.NewRectangle(1, 2, 3, 4, rgui.Blue)
	assert.Equal(t, rgui.Rect{X: 1, Y: 2, W: 3, H: 4}, rect.Rect())
}
