package engine

import (
	"math"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/voice"
)

var t0 = time.Unix(1_700_000_000, 0)

func tick(e *Engine, n int) RenderedTransform {
	var out RenderedTransform
	for i := 0; i < n; i++ {
		out = e.Tick(t0.Add(time.Duration(i) * 33 * time.Millisecond))
	}
	return out
}

func TestEngine_PinchTranslates(t *testing.T) {
	e := New()

	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.PinchHand()}})
	e.Tick(t0)

	target := e.Target()
	anchor := landmark.PinchHand().Points[landmark.MiddleMCP]
	wantX := (anchor.X - 0.5) * translateSpan
	wantY := (0.5 - anchor.Y) * translateSpan

	if math.Abs(target.Position.X-wantX) > 1e-9 || math.Abs(target.Position.Y-wantY) > 1e-9 {
		t.Errorf("expected position (%f,%f), got (%f,%f)",
			wantX, wantY, target.Position.X, target.Position.Y)
	}
}

func TestEngine_TwoHandZoom(t *testing.T) {
	e := New()

	// Separation 0.3 at gain 6 yields target scale 1.8
	left := landmark.Translated(landmark.FistHand(), -0.15, 0)
	right := landmark.Translated(landmark.FistHand(), 0.15, 0)
	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{left, right}})
	e.Tick(t0)

	if got := e.Target().Scale; math.Abs(got-1.8) > 1e-9 {
		t.Errorf("expected scale 1.8, got %f", got)
	}
}

func TestEngine_TwoHandZoomClamped(t *testing.T) {
	e := New()

	// Separation 2.0 would map to scale 12; must clamp to the bound
	left := landmark.Translated(landmark.FistHand(), -1.0, 0)
	right := landmark.Translated(landmark.FistHand(), 1.0, 0)
	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{left, right}})
	e.Tick(t0)

	if got := e.Target().Scale; got != MaxScale {
		t.Errorf("expected scale clamped to %f, got %f", MaxScale, got)
	}
}

func TestEngine_FistEdgeResets(t *testing.T) {
	e := New()
	e.SetPose(Vec3{X: 3, Y: 1}, Vec3{}, 2, "")

	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.FistHand()}})
	e.Tick(t0)

	target := e.Target()
	if target.Position != (Vec3{}) || target.Scale != 1 {
		t.Fatalf("expected fist edge to reset target, got %+v", target)
	}

	// A held fist on the next tick must not re-trigger: move the object and
	// verify the continued fist leaves it alone.
	e.SetPose(Vec3{X: 2}, Vec3{}, 1, "")
	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.FistHand()}})
	e.Tick(t0.Add(33 * time.Millisecond))

	if got := e.Target().Position; got != (Vec3{X: 2}) {
		t.Errorf("held fist re-triggered a reset: position %+v", got)
	}
}

func TestEngine_TwoHandRecenterSnapsRendered(t *testing.T) {
	e := New()
	e.SetPose(Vec3{X: 3, Y: -1, Z: 2}, Vec3{Y: 1.2}, 4, "red")
	tick(e, 10)

	left := landmark.Translated(landmark.OpenPalmHand(), -0.15, 0)
	right := landmark.Translated(landmark.OpenPalmHand(), 0.15, 0)
	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{left, right}})
	out := e.Tick(t0.Add(time.Second))

	if e.Target() != defaultTarget() {
		t.Errorf("expected target at defaults, got %+v", e.Target())
	}
	// The rendered transform must jump, not drift back: one smoothing step
	// from an exact reset stays at the defaults.
	if out.Position != (Vec3{}) || out.Rotation != (Vec3{}) || out.Scale != 1 {
		t.Errorf("expected rendered snapped to defaults, got %+v", out)
	}
}

func TestEngine_PointingRotation(t *testing.T) {
	e := New()

	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.PointingHandAt(-math.Pi / 2)}})
	e.Tick(t0)
	if got := e.Target().Rotation.Y; got != 0 {
		t.Fatalf("first pointing tick should not rotate, got yaw %f", got)
	}

	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.PointingHandAt(-math.Pi/2 + 0.1)}})
	e.Tick(t0.Add(33 * time.Millisecond))

	want := 0.1 * rotateGain
	if got := e.Target().Rotation.Y; math.Abs(got-want) > 1e-6 {
		t.Errorf("expected yaw %f after 0.1 rad pointing delta, got %f", want, got)
	}
}

func TestEngine_OpenPalmSpins(t *testing.T) {
	e := New()

	for i := 0; i < 5; i++ {
		e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.OpenPalmHand()}})
		e.Tick(t0.Add(time.Duration(i) * 33 * time.Millisecond))
	}

	want := 5 * palmSpinRate
	if got := e.Target().Rotation.Y; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected yaw %f after 5 open-palm ticks, got %f", want, got)
	}
}

func TestEngine_LatestFrameWins(t *testing.T) {
	e := New()

	// Two frames between ticks: only the newer one is consumed
	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.FistHand()}})
	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.PinchHand()}})
	e.Tick(t0)

	if got := e.Target().Position; got == (Vec3{}) {
		t.Error("expected pinch frame to win and translate the target")
	}

	// Nothing pending on the next tick
	before := e.Target()
	e.Tick(t0.Add(33 * time.Millisecond))
	if e.Target() != before {
		t.Error("tick without pending frame must not mutate the target")
	}
}

func TestEngine_SpinIntegration(t *testing.T) {
	e := New()
	e.SubmitCommand(voice.Command{Action: voice.ActionRotate, Value: "fast"}, t0)

	tick(e, 10)

	want := 10 * SpinFast
	if got := e.Target().Rotation.Y; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected yaw %f after 10 fast spin ticks, got %f", want, got)
	}

	e.SubmitCommand(voice.Command{Action: voice.ActionRotate, Value: "stop"}, t0)
	before := e.Target().Rotation.Y
	e.Tick(t0.Add(time.Second))
	if got := e.Target().Rotation.Y; got != before {
		t.Errorf("expected yaw frozen after stop, got %f vs %f", got, before)
	}
}

func TestEngine_YawStaysBounded(t *testing.T) {
	e := New()
	e.SubmitCommand(voice.Command{Action: voice.ActionRotate, Value: "fast"}, t0)

	for i := 0; i < 500; i++ {
		e.Tick(t0.Add(time.Duration(i) * 33 * time.Millisecond))
	}

	if yaw := e.Target().Rotation.Y; math.Abs(yaw) > 2*math.Pi {
		t.Errorf("expected yaw wrapped into [-2pi, 2pi], got %f", yaw)
	}
}

func TestEngine_BounceIsTransient(t *testing.T) {
	e := New()
	e.SubmitCommand(voice.Command{Action: voice.ActionBounce}, t0)

	// Mid-bounce the rendered Y rises above the base position
	out := e.Tick(t0.Add(50 * time.Millisecond))
	if out.Position.Y <= 0 {
		t.Errorf("expected rendered Y above base mid-bounce, got %f", out.Position.Y)
	}
	if got := e.Target().Position.Y; got != 0 {
		t.Errorf("bounce must not persist into target position, got %f", got)
	}

	// After the envelope the target animation state clears and the rendered
	// transform settles back to the base pose.
	e.Tick(t0.Add(BounceDuration + 10*time.Millisecond))
	if !e.Target().BounceStart.IsZero() {
		t.Error("expected bounce trigger cleared after the envelope")
	}
	if e.Target().Animation != AnimationNone {
		t.Error("expected animation cleared after the envelope")
	}
}

func TestEngine_RecenterCancelsBounce(t *testing.T) {
	e := New()
	e.SubmitCommand(voice.Command{Action: voice.ActionBounce}, t0)
	e.Tick(t0.Add(50 * time.Millisecond))

	e.SubmitCommand(voice.Command{Action: voice.ActionRecenter}, t0.Add(100*time.Millisecond))

	out := e.Tick(t0.Add(133 * time.Millisecond))
	if out.Position.Y != 0 {
		t.Errorf("expected zero bounce offset after recenter, got %f", out.Position.Y)
	}
	if !e.Target().BounceStart.IsZero() {
		t.Error("expected bounce trigger cancelled by recenter")
	}
}

func TestEngine_DisabledChannels(t *testing.T) {
	t.Run("tracking off drops frames", func(t *testing.T) {
		e := New()
		e.SetTrackingEnabled(false)
		e.SetTrackingEnabled(false) // idempotent

		e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.PinchHand()}})
		e.Tick(t0)

		if got := e.Target().Position; got != (Vec3{}) {
			t.Errorf("expected frame dropped while tracking disabled, got %+v", got)
		}
	})

	t.Run("disabling clears pending frame", func(t *testing.T) {
		e := New()
		e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.PinchHand()}})
		e.SetTrackingEnabled(false)
		e.Tick(t0)

		if got := e.Target().Position; got != (Vec3{}) {
			t.Errorf("expected pending frame discarded on disable, got %+v", got)
		}
	})

	t.Run("voice off drops commands", func(t *testing.T) {
		e := New()
		e.SetVoiceEnabled(false)
		e.SubmitCommand(voice.Command{Action: voice.ActionScale, Value: "bigger"}, t0)

		if got := e.Target().Scale; got != 1 {
			t.Errorf("expected command dropped while voice disabled, got scale %f", got)
		}
	})

	t.Run("re-enabling restores the channel", func(t *testing.T) {
		e := New()
		e.SetVoiceEnabled(false)
		e.SetVoiceEnabled(true)
		e.SubmitCommand(voice.Command{Action: voice.ActionScale, Value: "bigger"}, t0)

		if got := e.Target().Scale; got != 1.5 {
			t.Errorf("expected scale 1.5 after re-enable, got %f", got)
		}
	})
}

func TestEngine_OnGesture(t *testing.T) {
	e := New()

	var seen []gesture.Kind
	e.OnGesture(func(k gesture.Kind) { seen = append(seen, k) })

	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{landmark.PinchHand()}})
	e.Tick(t0)
	e.Tick(t0.Add(33 * time.Millisecond)) // no frame, no callback

	if len(seen) != 1 || seen[0] != gesture.Pinch {
		t.Errorf("expected one Pinch notification, got %v", seen)
	}
}

func TestEngine_MalformedFrameIsNoOp(t *testing.T) {
	e := New()
	e.SetPose(Vec3{X: 1}, Vec3{}, 2, "")

	bad := landmark.PinchHand()
	bad.Points[landmark.ThumbTip].X = math.NaN()
	e.SubmitFrame(landmark.HandFrame{Hands: []landmark.HandSample{bad}})
	e.Tick(t0)

	target := e.Target()
	if target.Position != (Vec3{X: 1}) || target.Scale != 2 {
		t.Errorf("malformed frame must leave target untouched, got %+v", target)
	}
}
