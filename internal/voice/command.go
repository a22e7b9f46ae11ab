// Package voice defines the command contract with the speech-understanding
// backend and the keyword heuristics that resolve its free-text values.
package voice

import "strings"

// Known command actions. The backend may send anything; unknown actions are
// ignored downstream, never rejected.
const (
	ActionScale    = "scale"
	ActionColor    = "color"
	ActionBounce   = "bounce"
	ActionRecenter = "recenter"
	ActionRotate   = "rotate"
	ActionMove     = "move"
	ActionAnimate  = "animate"
)

// Command is one discrete intent derived from spoken language. Value is
// free text and may be empty.
type Command struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

// Intent is the closed set of meanings extracted from a command value.
// All substring heuristics live in ParseIntent so they can be tested in
// one place.
type Intent int

const (
	// IntentUnspecified means no keyword matched.
	IntentUnspecified Intent = iota
	// IntentIncrease asks for a larger magnitude ("bigger", "more").
	IntentIncrease
	// IntentDecrease asks for a smaller magnitude ("smaller", "less").
	IntentDecrease
	// IntentFast asks for a high speed ("fast", "quick").
	IntentFast
	// IntentSlow asks for a low speed ("slow", "gentle").
	IntentSlow
	// IntentStop asks for motion to cease ("stop", "halt").
	IntentStop
)

var intentKeywords = []struct {
	intent Intent
	words  []string
}{
	{IntentStop, []string{"stop", "halt", "freeze", "off"}},
	{IntentFast, []string{"fast", "quick", "rapid", "speed"}},
	{IntentSlow, []string{"slow", "gentle"}},
	{IntentIncrease, []string{"big", "larger", "up", "more", "grow", "increase"}},
	{IntentDecrease, []string{"small", "tiny", "less", "down", "shrink", "decrease"}},
}

// ParseIntent maps a free-text value onto an Intent by case-insensitive
// substring match. Stop and speed keywords are checked before magnitude
// keywords so "speed up" reads as fast, not increase.
func ParseIntent(value string) Intent {
	v := strings.ToLower(value)
	for _, group := range intentKeywords {
		for _, w := range group.words {
			if strings.Contains(v, w) {
				return group.intent
			}
		}
	}
	return IntentUnspecified
}

// Direction names an axis-aligned nudge for the move command.
type Direction int

const (
	// DirectionNone means no direction keyword matched.
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
	DirectionForward
	DirectionBack
)

var directionKeywords = []struct {
	dir   Direction
	words []string
}{
	{DirectionLeft, []string{"left"}},
	{DirectionRight, []string{"right"}},
	{DirectionUp, []string{"up", "higher"}},
	{DirectionDown, []string{"down", "lower"}},
	{DirectionForward, []string{"forward", "closer", "near"}},
	{DirectionBack, []string{"back", "away", "further", "farther"}},
}

// AnimationKind names the animation selected by an animate command value.
type AnimationKind int

const (
	// AnimationUnknown means no animation keyword matched.
	AnimationUnknown AnimationKind = iota
	// AnimationBounce selects the bounce effect.
	AnimationBounce
	// AnimationSpin selects the continuous spin effect.
	AnimationSpin
	// AnimationStop cancels any running animation.
	AnimationStop
)

var animationKeywords = []struct {
	kind  AnimationKind
	words []string
}{
	{AnimationStop, []string{"stop", "halt", "freeze", "still"}},
	{AnimationBounce, []string{"bounce", "jump", "hop"}},
	{AnimationSpin, []string{"spin", "rotate", "turn", "twirl"}},
}

// ParseAnimation maps a free-text value onto an animation selection.
func ParseAnimation(value string) AnimationKind {
	v := strings.ToLower(value)
	for _, group := range animationKeywords {
		for _, w := range group.words {
			if strings.Contains(v, w) {
				return group.kind
			}
		}
	}
	return AnimationUnknown
}

// ParseDirection maps a free-text value onto a movement direction.
func ParseDirection(value string) Direction {
	v := strings.ToLower(value)
	for _, group := range directionKeywords {
		for _, w := range group.words {
			if strings.Contains(v, w) {
				return group.dir
			}
		}
	}
	return DirectionNone
}
