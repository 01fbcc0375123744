package game

import (
	"math"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AnglesToVectors returns the forward, right and up vectors of the given view angles (pitch, yaw,
// roll in degrees). Any of the output pointers may be nil.
func AnglesToVectors(angles mgl32.Vec3, forward, right, up *mgl32.Vec3) {
	sp, cp := math32.Sincos(mgl32.DegToRad(angles[0]))
	sy, cy := math32.Sincos(mgl32.DegToRad(angles[1]))
	sr, cr := math32.Sincos(mgl32.DegToRad(angles[2]))

	if forward != nil {
		*forward = mgl32.Vec3{cp * cy, cp * sy, -sp}
	}
	if right != nil {
		*right = mgl32.Vec3{
			-1*sr*sp*cy + -1*cr*-sy,
			-1*sr*sp*sy + -1*cr*cy,
			-1 * sr * cp,
		}
	}
	if up != nil {
		*up = mgl32.Vec3{
			cr*sp*cy + -sr*-sy,
			cr*sp*sy + -sr*cy,
			cr * cp,
		}
	}
}

// RoundToNearestStep rounds a duration given in seconds to the nearest multiple of step.
func RoundToNearestStep(secs float32, step time.Duration) time.Duration {
	if step <= 0 {
		return 0
	}
	steps := math.Round(float64(secs) * float64(time.Second) / float64(step))
	return time.Duration(steps) * step
}

// LerpVec3 linearly blends two vectors with the weights (1 - phase, phase).
func LerpVec3(from, to mgl32.Vec3, phase float32) mgl32.Vec3 {
	return from.Mul(1 - phase).Add(to.Mul(phase))
}

// Vec3HzLen returns the length of the horizontal (XY) part of a Z-up vector.
func Vec3HzLen(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(vec3.X()*vec3.X() + vec3.Y()*vec3.Y())
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}
