// Package gesture classifies per-tick hand landmark frames into discrete
// gestures and continuous control signals.
package gesture

import (
	"github.com/ayusman/mudra/internal/landmark"
)

// Classification thresholds, in normalized image space.
const (
	// PinchThreshold is the maximum thumb-tip-to-index-tip distance for a pinch.
	PinchThreshold = 0.05
	// FistThreshold is the maximum mean fingertip-to-middle-MCP distance for a
	// closed fist.
	FistThreshold = 0.13
	// OpenThreshold is the minimum mean fingertip-to-middle-MCP distance for an
	// open palm.
	OpenThreshold = 0.38
	// MinPointingExtension rejects pointing readings where the index tip sits
	// too close to the knuckle row for the angle to be meaningful.
	MinPointingExtension = 0.12
)

// Kind identifies a discrete gesture.
type Kind int

const (
	// None means no gesture was recognized this tick.
	None Kind = iota
	// Pinch is thumb and index tip held together; drives translation.
	Pinch
	// Fist fires once on the open-to-closed transition; drives a reset.
	Fist
	// OpenPalm is a single fully open hand; drives a slow spin.
	OpenPalm
	// PointingRotate is an extended index finger; drives incremental rotation.
	PointingRotate
	// TwoHandZoom maps the separation of two hands to scale.
	TwoHandZoom
	// TwoHandRecenter is two simultaneous open palms; drives a full reset.
	TwoHandRecenter
)

// String returns a short lowercase name for the gesture kind.
func (k Kind) String() string {
	switch k {
	case Pinch:
		return "pinch"
	case Fist:
		return "fist"
	case OpenPalm:
		return "open-palm"
	case PointingRotate:
		return "pointing"
	case TwoHandZoom:
		return "two-hand-zoom"
	case TwoHandRecenter:
		return "two-hand-recenter"
	default:
		return "none"
	}
}

// Point2D is a planar anchor point in normalized image space.
type Point2D struct {
	X float64
	Y float64
}

// Classification is the result of classifying one HandFrame. Only the fields
// relevant to Kind are populated.
type Classification struct {
	Kind Kind
	// Anchor is the translation anchor for Pinch: the middle-finger MCP, not
	// the pinch point itself, which drifts with finger tremor.
	Anchor Point2D
	// AngleDelta is the pointing-angle change since the previous tick,
	// normalized into (-pi, pi].
	AngleDelta float64
	// Separation is the distance between the two hands' middle MCPs for
	// TwoHandZoom.
	Separation float64
}

// Classifier derives gestures from hand frames. It retains the minimal
// cross-tick memory classification needs: the previous fist predicate for
// edge triggering and the previous pointing angle for rotation deltas.
// Not safe for concurrent use; the engine calls it from its tick path only.
type Classifier struct {
	prevFist  bool
	prevAngle float64
	hasAngle  bool
}

// NewClassifier creates a Classifier with cleared memory.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Reset clears the retained flags, as if tracking had just been acquired.
func (c *Classifier) Reset() {
	c.prevFist = false
	c.hasAngle = false
}

// Classify derives a Classification from one frame. Malformed hands (wrong
// landmark count is impossible by construction, NaN coordinates are not) are
// dropped; an empty or fully malformed frame yields None and clears memory,
// so re-acquiring tracking can edge-trigger a fist again.
func (c *Classifier) Classify(frame landmark.HandFrame) Classification {
	hands := validHands(frame)

	if len(hands) == 0 {
		c.Reset()
		return Classification{Kind: None}
	}

	if len(hands) >= 2 {
		return c.classifyTwoHands(hands[0], hands[1])
	}

	return c.classifyOneHand(hands[0])
}

// classifyTwoHands resolves the two-hand gestures. Both palms open is a
// recenter and takes precedence over zoom in the same tick.
func (c *Classifier) classifyTwoHands(a, b *landmark.HandSample) Classification {
	// Two-hand poses supersede single-hand memory.
	c.Reset()

	if isOpen(a) && isOpen(b) {
		return Classification{Kind: TwoHandRecenter}
	}

	sep := landmark.Distance(a.Points[landmark.MiddleMCP], b.Points[landmark.MiddleMCP])
	return Classification{Kind: TwoHandZoom, Separation: sep}
}

func (c *Classifier) classifyOneHand(h *landmark.HandSample) Classification {
	// The fist predicate is tracked every tick regardless of which
	// classification wins, so a held fist never re-triggers.
	fistNow := isFist(h)
	fistEdge := fistNow && !c.prevFist
	c.prevFist = fistNow

	pointing, angle := pointingAngle(h)
	if !pointing {
		c.hasAngle = false
	}

	switch {
	case isPinch(h):
		mcp := h.Points[landmark.MiddleMCP]
		return Classification{Kind: Pinch, Anchor: Point2D{X: mcp.X, Y: mcp.Y}}

	case pointing:
		var delta float64
		if c.hasAngle {
			delta = landmark.NormalizeAngle(angle - c.prevAngle)
		}
		c.prevAngle = angle
		c.hasAngle = true
		return Classification{Kind: PointingRotate, AngleDelta: delta}

	case fistEdge:
		return Classification{Kind: Fist}

	case isOpen(h):
		return Classification{Kind: OpenPalm}

	default:
		return Classification{Kind: None}
	}
}

// validHands filters the frame down to well-formed samples, capped at two.
func validHands(frame landmark.HandFrame) []*landmark.HandSample {
	var hands []*landmark.HandSample
	for i := range frame.Hands {
		if frame.Hands[i].Valid() {
			hands = append(hands, &frame.Hands[i])
		}
		if len(hands) == 2 {
			break
		}
	}
	return hands
}

func isPinch(h *landmark.HandSample) bool {
	d := landmark.Distance(h.Points[landmark.ThumbTip], h.Points[landmark.IndexTip])
	return d < PinchThreshold
}

// curlMetric is the mean distance from the four non-thumb fingertips to the
// middle-finger MCP. Low values mean a closed hand, high values an open one.
func curlMetric(h *landmark.HandSample) float64 {
	base := h.Points[landmark.MiddleMCP]
	tips := [4]int{landmark.IndexTip, landmark.MiddleTip, landmark.RingTip, landmark.PinkyTip}

	var sum float64
	for _, tip := range tips {
		sum += landmark.Distance(h.Points[tip], base)
	}
	return sum / 4
}

func isFist(h *landmark.HandSample) bool {
	return curlMetric(h) < FistThreshold
}

func isOpen(h *landmark.HandSample) bool {
	return curlMetric(h) > OpenThreshold
}

// pointingAngle reports whether the hand is in a pointing pose (index
// extended above its PIP, middle and ring curled below theirs) and, if so,
// the atan2 angle from the middle MCP to the index tip.
func pointingAngle(h *landmark.HandSample) (bool, float64) {
	pts := &h.Points

	indexExtended := pts[landmark.IndexTip].Y < pts[landmark.IndexPIP].Y
	middleCurled := pts[landmark.MiddleTip].Y > pts[landmark.MiddlePIP].Y
	ringCurled := pts[landmark.RingTip].Y > pts[landmark.RingPIP].Y

	if !indexExtended || !middleCurled || !ringCurled {
		return false, 0
	}

	base := pts[landmark.MiddleMCP]
	tip := pts[landmark.IndexTip]
	if landmark.Distance(base, tip) < MinPointingExtension {
		return false, 0
	}

	return true, landmark.Angle(base, tip)
}
