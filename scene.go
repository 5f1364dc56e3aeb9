package rgui

// HasScene is implemented by application state that exposes a Scene to the
// RenderEventHandler.
type HasScene interface {
	Scene() *Scene
}

// Scene is the top-level, ordered collection of Drawables.
// Objects are drawn in insertion order, so later objects paint over earlier ones.
// There is no removal and no z-index.
type Scene struct {
	objects []Drawable
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddObject appends a Drawable. The scene owns it from now on.
func (s *Scene) AddObject(d Drawable) {
	s.objects = append(s.objects, d)
}

// Len returns the number of top-level objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// DrawAll draws every object in insertion order.
// The first error aborts the rest of the frame and is returned as is: renderer
// state after a failed draw is not guaranteed to be consistent, so there is no
// attempt to draw the remaining objects.
func (s *Scene) DrawAll(r Renderer) error {
	for _, obj := range s.objects {
		if err := obj.Draw(r); err != nil {
			return err
		}
	}
	return nil
}
