package rgui_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/internal/recorder"
)

func newTestWindow(t *testing.T, p *recorder.Platform, r *recorder.Renderer, handler rgui.EventHandler[*testApp]) *rgui.Window[*testApp] {
	t.Helper()
	w, err := rgui.NewWindow(p, r, rgui.NewConfig(rgui.WithKeyboardMode(rgui.KeyboardRaw)), handler, newTestApp())
	require.NoError(t, err)
	return w
}

func TestWindowLifecycle(t *testing.T) {
	p := recorder.NewPlatform()
	r := recorder.New()
	w := newTestWindow(t, p, r, logHandler("h"))

	assert.Equal(t, rgui.Ready, r.State())
	require.Len(t, p.Created, 1)
	assert.Equal(t, "rgui", p.Created[0].Title)

	p.Post(
		rgui.Message{Kind: rgui.MsgPaint, Window: 1},
		rgui.Message{Kind: rgui.MsgKeyDown, Window: 1, Key: keyA},
		rgui.Message{Kind: rgui.MsgClose, Window: 1},
		rgui.Message{Kind: rgui.MsgKeyDown, Window: 1, Key: keyA},
	)
	require.NoError(t, w.Run())

	assert.Equal(t, []string{"h:rgui.Paint", "h:rgui.KeyDown", "h:rgui.WindowClose"}, w.App().log)
	assert.Equal(t, []rgui.WindowID{1}, p.Destroyed)
	assert.Equal(t, rgui.Released, r.State())
	assert.Equal(t, 1, r.Count(recorder.OpClose))

	assert.Error(t, w.Run())
}

func TestWindowAppliesConfiguredBackground(t *testing.T) {
	p := recorder.NewPlatform()
	r := recorder.New()
	input := rgui.NewDefaultInputHandler[*testApp]()
	root := rgui.NewRootEventHandler[*testApp](input, logHandler("h"))
	cfg := rgui.NewConfig(rgui.WithBackground(rgui.RGBA(0.5, 0.25, 0, 1)))

	w, err := rgui.NewWindow(p, r, cfg, root, newTestApp())
	require.NoError(t, err)
	assert.Equal(t, cfg.Background, input.Render.Background)

	p.Post(rgui.Message{Kind: rgui.MsgPaint, Window: 1})
	require.NoError(t, w.Run())
	assert.Equal(t, []string{"Clear(0.5,0.25,0,1)"}, r.Only(recorder.OpClear))
}

func TestWindowRunStopsWhenPlatformIsDrained(t *testing.T) {
	p := recorder.NewPlatform()
	r := recorder.New()
	w := newTestWindow(t, p, r, nil)
	require.NoError(t, w.Run())
	assert.Equal(t, []rgui.WindowID{1}, p.Destroyed)
}

func TestWindowInvalidateQueuesPaint(t *testing.T) {
	p := recorder.NewPlatform()
	w := newTestWindow(t, p, recorder.New(), logHandler("h"))
	w.Invalidate()
	require.NoError(t, w.Run())
	assert.Equal(t, []string{"h:rgui.Paint"}, w.App().log)
}

func TestWindowRecoversFromDeviceLoss(t *testing.T) {
	p := recorder.NewPlatform()
	r := recorder.New()
	app := newTestApp()
	app.scene.AddObject(rgui.NewRectangle(0, 0, 10, 10, rgui.Red))

	w, err := rgui.NewWindow[*testApp](p, r, rgui.DefaultConfig(), rgui.NewDefaultInputHandler[*testApp](), app)
	require.NoError(t, err)
	r.EndDrawErr = fmt.Errorf("present: %w", rgui.ErrDeviceLost)

	p.Post(
		rgui.Message{Kind: rgui.MsgPaint, Window: 1},
		rgui.Message{Kind: rgui.MsgPaint, Window: 1},
	)
	require.NoError(t, w.Run())

	// Construction, then recreation on the second paint.
	assert.Equal(t, 2, r.Count(recorder.OpCreate))
	assert.Equal(t, 2, r.Count(recorder.OpRectangle))
	assert.Equal(t, []string{
		"Create",
		"BeginDraw", "Clear(0,0,0,1)", "FillRectangle(0,0,10,10)", "EndDraw", "Release",
		"Create",
		"BeginDraw", "Clear(0,0,0,1)", "FillRectangle(0,0,10,10)", "EndDraw",
		"Close",
	}, r.Strings())
}

func TestNewWindowResourceFailureIsFatal(t *testing.T) {
	p := recorder.NewPlatform()
	r := recorder.New()
	r.CreateErr = errors.New("no device")

	_, err := rgui.NewWindow[*testApp](p, r, rgui.DefaultConfig(), nil, newTestApp())
	var re *rgui.ResourceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, []rgui.WindowID{1}, p.Destroyed)
}

func TestNewWindowPlatformFailure(t *testing.T) {
	p := recorder.NewPlatform()
	p.CreateErr = errors.New("no display")

	_, err := rgui.NewWindow[*testApp](p, recorder.New(), rgui.DefaultConfig(), nil, newTestApp())
	var pe *rgui.PlatformError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "create window", pe.Op)
}

func TestNewWindowRejectsInvalidConfig(t *testing.T) {
	p := recorder.NewPlatform()
	_, err := rgui.NewWindow[*testApp](p, recorder.New(), rgui.NewConfig(rgui.WithSize(0, 100)), nil, newTestApp())
	require.Error(t, err)
	assert.Empty(t, p.Created)
}
