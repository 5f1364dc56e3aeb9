package rgui

import (
	"errors"
	"fmt"
)

// ErrDeviceLost is returned (wrapped) by Renderer.EndDraw when the drawing
// surface became invalid. The renderer has already released its device
// dependent resources when this error is returned; the next Paint recreates them.
var ErrDeviceLost = errors.New("rgui: device lost")

// ErrAlreadyAssociated is returned when a window handle is associated twice.
var ErrAlreadyAssociated = errors.New("rgui: window already associated")

// ResourceError reports a failure to create rendering resources.
// At window construction it is fatal.
type ResourceError struct {
	Op  string
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("rgui: create %s: %v", e.Op, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// DrawError reports a drawing call failure other than device loss.
// The current frame is aborted; resources stay valid.
type DrawError struct {
	Op  string
	Err error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("rgui: %s: %v", e.Op, e.Err)
}

func (e *DrawError) Unwrap() error { return e.Err }

// PlatformError reports a native windowing API failure.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("rgui: platform %s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// IsDeviceLost reports whether err signals device loss.
func IsDeviceLost(err error) bool {
	return errors.Is(err, ErrDeviceLost)
}
