// Package landmark defines hand landmark types and the geometry helpers used by
// gesture classification.
package landmark

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point in space with x, y, z coordinates.
// X and Y are normalized to [0,1] in image space (y grows downward);
// Z is relative depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandSample holds the 21 landmarks of one detected hand for a single tick.
// Samples are ephemeral; no identity is tracked across ticks.
type HandSample struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
}

// HandFrame is everything the vision source delivered for one tick:
// zero, one, or two hands.
type HandFrame struct {
	Hands []HandSample `json:"hands"`
}

// Distance calculates the Euclidean distance between two 3D points.
func Distance(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Angle returns the planar angle in radians of the vector from a to b,
// measured with atan2 in image coordinates. Depth is ignored.
func Angle(from, to Point3D) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// NormalizeAngle maps an angle into (-pi, pi]. Used to interpret the change
// between two atan2 readings as the short way around, so a jump from +3.13
// to -3.13 reads as a small rotation rather than ~2*pi.
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Valid reports whether every coordinate of the sample is a finite number.
// Malformed samples are dropped by the classifier rather than surfaced
// as errors.
func (h *HandSample) Valid() bool {
	if h == nil {
		return false
	}
	for i := range h.Points {
		p := h.Points[i]
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return false
		}
	}
	return true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
