package engine

import "math"

// Per-tick smoothing factors. Position and scale are tuned for
// responsiveness; rotation is stiffer so pointing jitter does not wobble
// the object.
const (
	AlphaPosition = 0.20
	AlphaRotation = 0.12
	AlphaScale    = 0.20
)

func lerp(from, to, alpha float64) float64 {
	return from + (to-from)*alpha
}

func lerpVec(from, to Vec3, alpha float64) Vec3 {
	return Vec3{
		X: lerp(from.X, to.X, alpha),
		Y: lerp(from.Y, to.Y, alpha),
		Z: lerp(from.Z, to.Z, alpha),
	}
}

// smooth advances the rendered transform one step toward the composite
// target (target state plus animator offsets). Color is not interpolated.
func smooth(rendered RenderedTransform, position Vec3, rotation Vec3, scale float64) RenderedTransform {
	return RenderedTransform{
		Position: lerpVec(rendered.Position, position, AlphaPosition),
		Rotation: lerpVec(rendered.Rotation, rotation, AlphaRotation),
		Scale:    lerp(rendered.Scale, scale, AlphaScale),
	}
}

// wrapYaw keeps accumulated yaw inside [-2*pi, 2*pi] for numerical
// stability. Target and rendered yaw are shifted by the same multiple of
// 2*pi in the same tick, which preserves visual continuity.
func wrapYaw(target, rendered float64) (float64, float64) {
	for target > 2*math.Pi {
		target -= 2 * math.Pi
		rendered -= 2 * math.Pi
	}
	for target < -2*math.Pi {
		target += 2 * math.Pi
		rendered += 2 * math.Pi
	}
	return target, rendered
}
