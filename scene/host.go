package scene

import (
	"fmt"

	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"go.uber.org/zap"
)

// Host owns at most one active scene and sequences its lifecycle
// The outgoing scene's Exit always completes before the incoming scene's Enter
type Host struct {
	active   Scene
	switches int
	log      *zap.Logger
}

// NewHost creates an empty host; nil logger disables logging
func NewHost(log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{log: log}
}

// Active returns the current scene, nil when empty
func (h *Host) Active() Scene {
	return h.active
}

// Switches returns the number of completed scene changes
func (h *Host) Switches() int {
	return h.switches
}

// Change exits the active scene, then activates and enters next
// A nil next leaves the host empty; a resumed next is activated without Enter
func (h *Host) Change(s render.Surface, in input.State, next Scene) {
	prev := h.active
	if prev != nil {
		prev.Exit(s, in)
	}

	next, skipEnter := unwrap(next)
	h.active = next
	h.switches++

	h.log.Debug("scene change",
		zap.String("from", Name(prev)),
		zap.String("to", Name(next)),
		zap.Bool("resumed", skipEnter),
	)

	if next != nil && !skipEnter {
		next.Enter(s)
	}
}

// Update forwards one frame to the active scene and performs any requested switch
// before returning. An empty host does nothing
func (h *Host) Update(s render.Surface, in input.State, dt float64) {
	if h.active == nil {
		return
	}
	if next := h.active.Update(s, in, dt); next != nil {
		h.Change(s, in, next)
	}
}

// Shutdown exits the active scene and leaves the host empty
func (h *Host) Shutdown(s render.Surface, in input.State) {
	if h.active == nil {
		return
	}
	h.Change(s, in, nil)
}

// Named is implemented by scenes that report a display name
type Named interface {
	Name() string
}

// Name returns a scene's display name for logs and the debug overlay
func Name(s Scene) string {
	if s == nil {
		return "none"
	}
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}
