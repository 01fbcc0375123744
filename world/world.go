// Package world provides the collision geometry queried by the simulation.
package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
)

// Provider is a read-only source of collision geometry. A nil Provider means that no world is
// loaded, in which case the simulation advances time without running physics.
type Provider interface {
	// NearbyBoxes returns every solid box intersecting the given area.
	NearbyBoxes(area cube.BBox) []cube.BBox
}

var currentWorldID = atomic.NewUint64(0)

// BoxWorld is a Provider made of axis aligned solid boxes. It may be edited by other goroutines
// while simulations query it.
type BoxWorld struct {
	id    uint64
	boxes []cube.BBox

	deadlock.RWMutex
}

// NewBoxWorld returns a BoxWorld containing the boxes passed.
func NewBoxWorld(boxes ...cube.BBox) *BoxWorld {
	return &BoxWorld{
		id:    currentWorldID.Inc(),
		boxes: append([]cube.BBox(nil), boxes...),
	}
}

// Flat returns a BoxWorld with a single ground slab whose top face is at z = 0.
func Flat(halfExtent float32) *BoxWorld {
	return NewBoxWorld(cube.Box(-halfExtent, -halfExtent, -64, halfExtent, halfExtent, 0))
}

// ID returns the unique ID of the world.
func (w *BoxWorld) ID() uint64 {
	return w.id
}

// AddBox adds a solid box to the world.
func (w *BoxWorld) AddBox(b cube.BBox) {
	w.Lock()
	defer w.Unlock()

	w.boxes = append(w.boxes, b)
}

// Len returns the amount of boxes in the world.
func (w *BoxWorld) Len() int {
	w.RLock()
	defer w.RUnlock()

	return len(w.boxes)
}

// NearbyBoxes returns every box intersecting the area. Boxes touching the area are included so that
// resting contact is seen by collision code.
func (w *BoxWorld) NearbyBoxes(area cube.BBox) []cube.BBox {
	search := area.Grow(0.01)

	w.RLock()
	defer w.RUnlock()

	var result []cube.BBox
	for _, b := range w.boxes {
		if b.IntersectsWith(search) {
			result = append(result, b)
		}
	}
	return result
}
