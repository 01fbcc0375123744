package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box from the given dimensions, with its origin centered at
// the bottom of the box. The world is Z-up.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, -h, 0,
		h, h, height,
	)
}

// PlayerHull returns the player's collision hull translated to the given origin.
func PlayerHull(origin mgl32.Vec3, ducked bool) cube.BBox {
	height := PlayerHullHeight
	if ducked {
		height = PlayerDuckHullHeight
	}
	return AABBFromDimensions(PlayerHullWidth, height).Translate(origin)
}

// CenteredAABB returns a cube of the given size centered on pos.
func CenteredAABB(pos mgl32.Vec3, size float32) cube.BBox {
	h := size / 2
	return cube.Box(-h, -h, -h, h, h, h).Translate(pos)
}
