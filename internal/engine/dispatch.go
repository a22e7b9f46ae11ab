package engine

import (
	"strings"
	"time"

	"github.com/ayusman/mudra/internal/voice"
)

// Scale multipliers for voice scale commands. Applied to the current scale,
// so repeated commands compound.
const (
	scaleGrowFactor   = 1.5
	scaleShrinkFactor = 0.7
)

// moveStep is the position nudge per move command, in world units.
const moveStep = 0.5

// dispatch applies one voice command to the target state. Called under the
// engine lock. Unknown actions are dropped without error: the command
// channel is best-effort by contract.
func (e *Engine) dispatch(cmd voice.Command, now time.Time) {
	switch cmd.Action {
	case voice.ActionScale:
		factor := scaleShrinkFactor
		if voice.ParseIntent(cmd.Value) == voice.IntentIncrease {
			factor = scaleGrowFactor
		}
		e.target.Scale = clampScale(e.target.Scale * factor)

	case voice.ActionColor:
		// Stored verbatim; the renderer decides what an unknown tint means.
		e.target.Color = strings.TrimSpace(cmd.Value)

	case voice.ActionBounce:
		// Retriggering restarts the envelope from t=0.
		e.target.BounceStart = now
		e.target.Animation = AnimationBounce

	case voice.ActionRecenter:
		e.resetLocked()

	case voice.ActionRotate:
		switch voice.ParseIntent(cmd.Value) {
		case voice.IntentStop:
			e.target.RotationVelocity = 0
			e.target.Animation = AnimationNone
		case voice.IntentFast:
			e.target.RotationVelocity = SpinFast
			e.target.Animation = AnimationSpin
		default:
			e.target.RotationVelocity = SpinSlow
			e.target.Animation = AnimationSpin
		}

	case voice.ActionMove:
		e.nudge(voice.ParseDirection(cmd.Value))

	case voice.ActionAnimate:
		switch voice.ParseAnimation(cmd.Value) {
		case voice.AnimationBounce:
			e.target.BounceStart = now
			e.target.Animation = AnimationBounce
		case voice.AnimationSpin:
			e.target.RotationVelocity = SpinSlow
			e.target.Animation = AnimationSpin
		case voice.AnimationStop:
			e.target.RotationVelocity = 0
			e.target.BounceStart = time.Time{}
			e.target.Animation = AnimationNone
		}
	}
}

func (e *Engine) nudge(dir voice.Direction) {
	switch dir {
	case voice.DirectionLeft:
		e.target.Position.X -= moveStep
	case voice.DirectionRight:
		e.target.Position.X += moveStep
	case voice.DirectionUp:
		e.target.Position.Y += moveStep
	case voice.DirectionDown:
		e.target.Position.Y -= moveStep
	case voice.DirectionForward:
		e.target.Position.Z += moveStep
	case voice.DirectionBack:
		e.target.Position.Z -= moveStep
	}
}
