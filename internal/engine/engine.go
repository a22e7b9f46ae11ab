package engine

import (
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/voice"
)

// Gesture-to-state gains.
const (
	// translateSpan maps the normalized pinch anchor across this many world
	// units, centered on the origin.
	translateSpan = 8.0
	// rotateGain scales the pointing angle delta into yaw.
	rotateGain = 3.0
	// zoomGain maps two-hand separation (normalized units) to target scale.
	zoomGain = 6.0
)

// Engine is the gesture and command fusion core. Hand frames and voice
// commands arrive asynchronously from their producers; all mutation of the
// target state is serialized through one mutex, and Tick — driven by the
// render loop — consumes at most the latest pending frame, runs the
// animator, and advances the smoothed output transform.
type Engine struct {
	mu         sync.Mutex
	classifier *gesture.Classifier
	target     TargetState
	rendered   RenderedTransform
	pending    *landmark.HandFrame
	tracking   bool
	voice      bool
	onGesture  func(gesture.Kind)
}

// New creates an Engine at the default pose with tracking and voice enabled.
func New() *Engine {
	return &Engine{
		classifier: gesture.NewClassifier(),
		target:     defaultTarget(),
		rendered:   defaultRendered(),
		tracking:   true,
		voice:      true,
	}
}

// OnGesture registers a callback invoked from Tick whenever a non-None
// gesture is recognized. The callback runs outside the engine lock.
func (e *Engine) OnGesture(fn func(gesture.Kind)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onGesture = fn
}

// SubmitFrame stores a hand frame for the next tick. Only the most recent
// unconsumed frame is kept; older frames are silently dropped, since
// classification is memoryless frame-to-frame. Frames are discarded while
// tracking is disabled.
func (e *Engine) SubmitFrame(frame landmark.HandFrame) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.tracking {
		return
	}
	e.pending = &frame
}

// SubmitCommand applies a voice command to the target state immediately,
// independent of the render tick. Commands are discarded while voice input
// is disabled. now anchors time-keyed effects such as the bounce envelope.
func (e *Engine) SubmitCommand(cmd voice.Command, now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.voice {
		return
	}
	e.dispatch(cmd, now)
}

// SetTrackingEnabled toggles the hand input channel. Disabling drops the
// pending frame and clears classifier memory. Idempotent.
func (e *Engine) SetTrackingEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tracking = enabled
	if !enabled {
		e.pending = nil
		e.classifier.Reset()
	}
}

// SetVoiceEnabled toggles the voice command channel. Idempotent; commands
// arriving while disabled are discarded whole, never half-applied.
func (e *Engine) SetVoiceEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.voice = enabled
}

// Target returns a snapshot of the current target state.
func (e *Engine) Target() TargetState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.target
}

// Rendered returns the transform produced by the most recent tick.
func (e *Engine) Rendered() RenderedTransform {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rendered
}

// SetPose replaces position, rotation, scale, and color of the target state
// in one step, e.g. when applying a stored preset. The rendered transform
// approaches the new pose smoothly.
func (e *Engine) SetPose(position, rotation Vec3, scale float64, color string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.target.Position = position
	e.target.Rotation = rotation
	e.target.Scale = clampScale(scale)
	e.target.Color = color
}

// Tick advances the engine by one render frame: consumes the pending hand
// frame, applies its gesture, integrates the animator, and moves the
// rendered transform one smoothing step toward the composite target.
func (e *Engine) Tick(now time.Time) RenderedTransform {
	e.mu.Lock()

	var fired gesture.Kind
	if frame := e.pending; frame != nil {
		e.pending = nil
		cls := e.classifier.Classify(*frame)
		e.applyGesture(cls)
		fired = cls.Kind
	}

	// Spin integrates into the base rotation; it is user-visible state, not
	// a transient offset.
	if e.target.RotationVelocity != 0 {
		e.target.Rotation.Y += e.target.RotationVelocity
	}
	e.target.Rotation.Y, e.rendered.Rotation.Y = wrapYaw(e.target.Rotation.Y, e.rendered.Rotation.Y)

	// Bounce offsets are transient: layered on top of the target, never
	// written back into it.
	offsetY, offsetScale := bounceOffsets(e.target.BounceStart, now)
	if bounceFinished(e.target.BounceStart, now) {
		e.target.BounceStart = time.Time{}
		if e.target.Animation == AnimationBounce {
			e.target.Animation = AnimationNone
		}
	}

	position := e.target.Position
	position.Y += offsetY
	scale := clampScale(e.target.Scale + offsetScale)

	e.rendered = smooth(e.rendered, position, e.target.Rotation, scale)
	e.rendered.Color = e.target.Color
	out := e.rendered

	callback := e.onGesture
	e.mu.Unlock()

	if fired != gesture.None && callback != nil {
		callback(fired)
	}
	return out
}

// applyGesture mutates the target state for one classification. Called
// under the engine lock from the tick path.
func (e *Engine) applyGesture(cls gesture.Classification) {
	switch cls.Kind {
	case gesture.Pinch:
		// Anchor is in normalized image space with y down; center it and
		// flip y into world space.
		e.target.Position.X = (cls.Anchor.X - 0.5) * translateSpan
		e.target.Position.Y = (0.5 - cls.Anchor.Y) * translateSpan

	case gesture.PointingRotate:
		e.target.Rotation.Y += cls.AngleDelta * rotateGain

	case gesture.OpenPalm:
		e.target.Rotation.Y += palmSpinRate

	case gesture.TwoHandZoom:
		e.target.Scale = clampScale(cls.Separation * zoomGain)

	case gesture.Fist, gesture.TwoHandRecenter:
		e.resetLocked()
	}
}

// resetLocked is the hard reset shared by the recenter command, the fist
// edge, and the two-hand open gesture: target back to defaults and the
// rendered transform snapped without interpolation, so there is no visible
// drift back after an explicit reset.
func (e *Engine) resetLocked() {
	e.target = defaultTarget()
	e.rendered = defaultRendered()
}
