package utils

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// ClipAxisOffset clips the movement of the moving box along a single axis (0 = X, 1 = Y, 2 = Z) so
// that it does not enter the stationary box. The boxes must overlap on the other two axes for any
// clipping to happen.
func ClipAxisOffset(stationary, moving cube.BBox, axis int, delta float32) float32 {
	if delta == 0 || BBHasZeroVolume(stationary) {
		return delta
	}

	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if moving.Max()[i] <= stationary.Min()[i] || moving.Min()[i] >= stationary.Max()[i] {
			return delta
		}
	}

	if delta > 0 && moving.Max()[axis] <= stationary.Min()[axis] {
		if gap := stationary.Min()[axis] - moving.Max()[axis]; gap < delta {
			delta = gap
		}
	} else if delta < 0 && moving.Min()[axis] >= stationary.Max()[axis] {
		if gap := stationary.Max()[axis] - moving.Min()[axis]; gap > delta {
			delta = gap
		}
	}
	return delta
}

// SweepCollide moves the box by vel, resolving collisions against the boxes one axis at a time in
// the order Z, X, Y. It returns the velocity that could actually be applied.
func SweepCollide(moving cube.BBox, vel mgl32.Vec3, boxes []cube.BBox) mgl32.Vec3 {
	var clipped mgl32.Vec3
	for _, axis := range [3]int{2, 0, 1} {
		d := vel[axis]
		for _, b := range boxes {
			d = ClipAxisOffset(b, moving, axis, d)
		}
		if math32.Abs(d) < 1e-7 {
			d = 0
		}

		var offset mgl32.Vec3
		offset[axis] = d
		moving = moving.Translate(offset)
		clipped[axis] = d
	}
	return clipped
}

// BBHasZeroVolume returns whether the box has no extent.
func BBHasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}
