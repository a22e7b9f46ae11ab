// Package engine fuses gesture classifications and voice commands into one
// authoritative target state and produces a smoothed transform every tick.
package engine

import "time"

// Scale bounds enforced on every write to TargetState.Scale.
const (
	MinScale = 0.1
	MaxScale = 10.0
)

// Vec3 is a 3-component vector, used for positions and Euler rotations
// (radians).
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Animation identifies the active procedural animation.
type Animation int

const (
	// AnimationNone means no procedural animation is active.
	AnimationNone Animation = iota
	// AnimationBounce is a decaying vertical bounce.
	AnimationBounce
	// AnimationSpin is a continuous yaw rotation.
	AnimationSpin
)

// TargetState is the authoritative user-driven spatial and visual state of
// the manipulated object. It is owned exclusively by the Engine and mutated
// only under its lock, by both the gesture path and the command path.
type TargetState struct {
	Position Vec3
	Rotation Vec3
	Scale    float64
	// Color is a free-text tint override; empty means none. Unrecognized
	// values are stored verbatim and left to the rendering layer.
	Color string
	// Animation names the active procedural effect.
	Animation Animation
	// BounceStart is when the current bounce envelope was triggered; the
	// zero value means no bounce.
	BounceStart time.Time
	// RotationVelocity is added to yaw every tick until changed or reset.
	RotationVelocity float64
}

// RenderedTransform is the per-tick output handed to the renderer: always a
// smoothed interpolation toward the target, never the target itself, except
// immediately after an explicit reset.
type RenderedTransform struct {
	Position Vec3    `json:"position"`
	Rotation Vec3    `json:"rotation"`
	Scale    float64 `json:"scale"`
	Color    string  `json:"color,omitempty"`
}

// defaultTarget is the identity pose an object starts in and returns to on
// reset: origin, no rotation, scale 1, no tint, no animation.
func defaultTarget() TargetState {
	return TargetState{Scale: 1}
}

// defaultRendered matches defaultTarget.
func defaultRendered() RenderedTransform {
	return RenderedTransform{Scale: 1}
}

// clampScale keeps scale inside the global bounds.
func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
