package rgui

// WindowID identifies a native window for the lifetime of the process.
type WindowID uint64

// NativeHandle is an opaque platform token for a native window. It is the only
// coupling point between a Renderer and the windowing subsystem; backends type
// assert it to their own handle type.
type NativeHandle interface {
	WindowID() WindowID
}

// ResourceState is the lifecycle state of a renderer's resources.
type ResourceState int

const (
	// Uninitialized means device dependent resources are absent.
	Uninitialized ResourceState = iota
	// Ready means the render target and its brush exist.
	Ready
	// Released means the renderer was closed; it cannot be used again.
	Released
)

func (s ResourceState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// Renderer is the platform-agnostic drawing interface.
//
// Device independent resources (font sources, factories) are created by the
// backend constructor and live until Close. Device dependent resources (render
// target and brush) are created by CreateDeviceDependentResources, are either
// all present or all absent, and are released on device loss.
//
// The lifecycle is:
//
//	Uninitialized -> Create -> Ready -> (EndDraw reports device loss) -> Uninitialized -> ...
//	any state -> Close -> Released
//
// Drawing calls made while Uninitialized are ignored.
type Renderer interface {
	// CreateDeviceDependentResources creates the render target and brush for h.
	CreateDeviceDependentResources(h NativeHandle) error
	// ReleaseDeviceDependentResources drops the render target and brush together.
	ReleaseDeviceDependentResources()
	// RenderTargetSize returns the target size, or false when resources must be
	// recreated before the next paint.
	RenderTargetSize() (Size, bool)
	// ResizeRenderTarget resizes the target. It is a no-op while Uninitialized.
	ResizeRenderTarget(size Size) error

	BeginDraw()
	// EndDraw finishes the frame and presents it. On device loss the renderer
	// releases its device dependent resources and returns an error wrapping
	// ErrDeviceLost. Other failures leave the resources untouched.
	EndDraw() error
	Clear(c Color)

	// PushAxisAlignedClip restricts drawing to r, expressed in the current
	// transform's coordinate frame and intersected with any enclosing clip.
	PushAxisAlignedClip(r Rect)
	PopAxisAlignedClip()
	SetTransform(m Affine)
	Transform() Affine

	DrawRectangle(r Rectangle) error
	DrawEllipse(e Ellipse) error
	DrawLine(l Line) error
	DrawText(t TextObject) error

	// Close releases every resource. The renderer is Released afterwards.
	Close() error
}
