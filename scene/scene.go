// Package scene defines the scene lifecycle contract, the host that owns the
// active scene, and the wipe transition inserted between two scenes.
package scene

import (
	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
)

// Scene is one full-screen unit of behavior
// Enter is called once before the first Update, Exit once before the scene is discarded
// Update draws the frame and returns a non-nil Scene to request a switch
type Scene interface {
	Enter(s render.Surface)
	Update(s render.Surface, in input.State, dt float64) Scene
	Exit(s render.Surface, in input.State)
}

// resumed marks a scene whose Enter already ran under a previous owner
type resumed struct {
	Scene
}

// resume wraps a scene that has already been entered
// The host activates it without calling Enter a second time
func resume(s Scene) Scene {
	if s == nil {
		return nil
	}
	if r, ok := s.(*resumed); ok {
		return r
	}
	return &resumed{Scene: s}
}

// vacate is returned to ask the host to drop the active scene with no successor
var vacate Scene = &resumed{}

// unwrap strips a resume marker, reporting whether Enter must be skipped
func unwrap(s Scene) (Scene, bool) {
	if r, ok := s.(*resumed); ok {
		return r.Scene, true
	}
	return s, false
}
