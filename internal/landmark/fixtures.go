package landmark

import "math"

// Preset hand samples for tests and the mock detector. Coordinates are in
// normalized image space (x right, y down) and are chosen to sit comfortably
// on the correct side of the classifier thresholds.

// PinchHand returns a hand with thumb tip and index tip nearly touching.
func PinchHand() HandSample {
	h := baseHand()

	// Thumb and index converge above the palm
	h.Points[ThumbIP] = Point3D{X: 0.46, Y: 0.48, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.51, Y: 0.50, Z: -0.02}
	h.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.46, Z: -0.02}
	h.Points[IndexTip] = Point3D{X: 0.52, Y: 0.42, Z: 0.0}

	// Remaining fingers half relaxed
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.40, Z: -0.02}
	h.Points[RingTip] = Point3D{X: 0.55, Y: 0.45, Z: -0.02}
	h.Points[PinkyTip] = Point3D{X: 0.60, Y: 0.50, Z: -0.02}

	return h
}

// FistHand returns a hand with all four fingers curled against the palm and
// the thumb held clear of the index tip.
func FistHand() HandSample {
	h := baseHand()

	h.Points[ThumbIP] = Point3D{X: 0.40, Y: 0.58, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.38, Y: 0.55, Z: 0.0}

	// Curled tips end up below their PIP joints, close to the middle MCP
	h.Points[IndexPIP] = Point3D{X: 0.45, Y: 0.50, Z: -0.03}
	h.Points[IndexDIP] = Point3D{X: 0.46, Y: 0.50, Z: -0.04}
	h.Points[IndexTip] = Point3D{X: 0.46, Y: 0.52, Z: -0.03}

	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.48, Z: -0.03}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.48, Z: -0.04}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.50, Z: -0.03}

	h.Points[RingPIP] = Point3D{X: 0.55, Y: 0.50, Z: -0.03}
	h.Points[RingDIP] = Point3D{X: 0.54, Y: 0.50, Z: -0.04}
	h.Points[RingTip] = Point3D{X: 0.54, Y: 0.52, Z: -0.03}

	h.Points[PinkyPIP] = Point3D{X: 0.58, Y: 0.53, Z: -0.03}
	h.Points[PinkyDIP] = Point3D{X: 0.57, Y: 0.53, Z: -0.04}
	h.Points[PinkyTip] = Point3D{X: 0.57, Y: 0.55, Z: -0.03}

	return h
}

// OpenPalmHand returns a hand with all fingers fully extended.
func OpenPalmHand() HandSample {
	h := baseHand()

	h.Points[ThumbIP] = Point3D{X: 0.33, Y: 0.55, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.28, Y: 0.50, Z: 0.0}

	h.Points[IndexPIP] = Point3D{X: 0.43, Y: 0.38, Z: -0.01}
	h.Points[IndexDIP] = Point3D{X: 0.42, Y: 0.28, Z: -0.01}
	h.Points[IndexTip] = Point3D{X: 0.42, Y: 0.18, Z: -0.01}

	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.36, Z: -0.01}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.25, Z: -0.01}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.14, Z: -0.01}

	h.Points[RingPIP] = Point3D{X: 0.57, Y: 0.38, Z: -0.01}
	h.Points[RingDIP] = Point3D{X: 0.58, Y: 0.28, Z: -0.01}
	h.Points[RingTip] = Point3D{X: 0.58, Y: 0.18, Z: -0.01}

	h.Points[PinkyPIP] = Point3D{X: 0.63, Y: 0.42, Z: -0.01}
	h.Points[PinkyDIP] = Point3D{X: 0.65, Y: 0.34, Z: -0.01}
	h.Points[PinkyTip] = Point3D{X: 0.66, Y: 0.26, Z: -0.01}

	return h
}

// PointingHandAt returns a hand with only the index extended, the tip placed
// at the given angle (radians, atan2 convention in image space) around the
// middle MCP at a fixed radius of 0.3.
func PointingHandAt(angle float64) HandSample {
	h := baseHand()

	mcp := h.Points[MiddleMCP]
	tip := Point3D{
		X: mcp.X + 0.3*math.Cos(angle),
		Y: mcp.Y + 0.3*math.Sin(angle),
		Z: -0.01,
	}

	// PIP sits partway along the finger and slightly toward the palm so the
	// tip always reads as extended regardless of pointing direction.
	h.Points[IndexPIP] = Point3D{
		X: mcp.X + 0.18*math.Cos(angle),
		Y: tip.Y + 0.05,
		Z: -0.01,
	}
	h.Points[IndexDIP] = Point3D{
		X: mcp.X + 0.24*math.Cos(angle),
		Y: tip.Y + 0.02,
		Z: -0.01,
	}
	h.Points[IndexTip] = tip

	// Other fingers curled
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.47, Z: -0.03}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.52, Z: -0.03}
	h.Points[RingPIP] = Point3D{X: 0.55, Y: 0.48, Z: -0.03}
	h.Points[RingTip] = Point3D{X: 0.56, Y: 0.53, Z: -0.03}
	h.Points[PinkyPIP] = Point3D{X: 0.60, Y: 0.51, Z: -0.03}
	h.Points[PinkyTip] = Point3D{X: 0.62, Y: 0.56, Z: -0.03}

	h.Points[ThumbTip] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}

	return h
}

// NeutralHand returns a relaxed half-open hand that matches no gesture.
func NeutralHand() HandSample {
	h := baseHand()

	h.Points[ThumbTip] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}

	h.Points[IndexPIP] = Point3D{X: 0.44, Y: 0.40, Z: -0.02}
	h.Points[IndexTip] = Point3D{X: 0.44, Y: 0.42, Z: -0.02}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.38, Z: -0.02}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.40, Z: -0.02}
	h.Points[RingPIP] = Point3D{X: 0.56, Y: 0.40, Z: -0.02}
	h.Points[RingTip] = Point3D{X: 0.56, Y: 0.42, Z: -0.02}
	h.Points[PinkyPIP] = Point3D{X: 0.62, Y: 0.44, Z: -0.02}
	h.Points[PinkyTip] = Point3D{X: 0.62, Y: 0.46, Z: -0.02}

	return h
}

// Translated returns a copy of the sample with every landmark shifted by
// (dx, dy). Useful for placing two hands at a known separation.
func Translated(h HandSample, dx, dy float64) HandSample {
	out := h
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
	}
	return out
}

// baseHand builds the shared wrist/knuckle skeleton the presets start from.
func baseHand() HandSample {
	h := HandSample{Handedness: "Right"}

	h.Points[Wrist] = Point3D{X: 0.50, Y: 0.85, Z: 0.0}

	h.Points[ThumbCMC] = Point3D{X: 0.44, Y: 0.78, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.41, Y: 0.70, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.39, Y: 0.63, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.37, Y: 0.57, Z: 0.0}

	h.Points[IndexMCP] = Point3D{X: 0.45, Y: 0.62, Z: -0.01}
	h.Points[IndexPIP] = Point3D{X: 0.44, Y: 0.52, Z: -0.02}
	h.Points[IndexDIP] = Point3D{X: 0.44, Y: 0.46, Z: -0.02}
	h.Points[IndexTip] = Point3D{X: 0.44, Y: 0.40, Z: -0.02}

	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.60, Z: -0.01}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.49, Z: -0.02}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.43, Z: -0.02}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.37, Z: -0.02}

	h.Points[RingMCP] = Point3D{X: 0.55, Y: 0.62, Z: -0.01}
	h.Points[RingPIP] = Point3D{X: 0.56, Y: 0.52, Z: -0.02}
	h.Points[RingDIP] = Point3D{X: 0.56, Y: 0.46, Z: -0.02}
	h.Points[RingTip] = Point3D{X: 0.56, Y: 0.40, Z: -0.02}

	h.Points[PinkyMCP] = Point3D{X: 0.59, Y: 0.64, Z: -0.01}
	h.Points[PinkyPIP] = Point3D{X: 0.61, Y: 0.56, Z: -0.02}
	h.Points[PinkyDIP] = Point3D{X: 0.62, Y: 0.51, Z: -0.02}
	h.Points[PinkyTip] = Point3D{X: 0.62, Y: 0.46, Z: -0.02}

	return h
}
