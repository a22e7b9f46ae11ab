package engine

import (
	"math"
	"time"
)

// Bounce envelope parameters: a damped rectified sine over a fixed duration.
const (
	// BounceDuration is how long a bounce runs before it is finished.
	BounceDuration = time.Second
	// bounceFreq is the oscillation frequency in radians per second.
	bounceFreq = 10.0
	// bounceAmplitude is the peak vertical offset in world units.
	bounceAmplitude = 0.5
	// bounceScaleAmplitude is the peak transient scale wobble.
	bounceScaleAmplitude = 0.05
	// bounceDecay is the exponential decay rate per second.
	bounceDecay = 3.0
)

// Spin rates in radians per tick.
const (
	// SpinSlow is the default voice-commanded rotation velocity.
	SpinSlow = 0.02
	// SpinFast is the rotation velocity for "fast"/"quick" commands.
	SpinFast = 0.08
	// palmSpinRate is the yaw added per tick while a single open palm is held.
	palmSpinRate = 0.02
)

// bounceOffsets returns the transient position-Y and scale offsets for a
// bounce triggered at start, evaluated at now. Outside the envelope window
// the offsets are exactly zero, so a finished bounce returns the object to
// precisely its target pose.
func bounceOffsets(start, now time.Time) (offsetY, offsetScale float64) {
	if start.IsZero() {
		return 0, 0
	}

	t := now.Sub(start).Seconds()
	if t < 0 || t >= BounceDuration.Seconds() {
		return 0, 0
	}

	envelope := math.Exp(-bounceDecay * t)
	offsetY = math.Abs(math.Sin(t*bounceFreq)) * bounceAmplitude * envelope
	offsetScale = math.Sin(t*bounceFreq) * bounceScaleAmplitude * envelope
	return offsetY, offsetScale
}

// bounceFinished reports whether a bounce triggered at start has run its
// full duration by now.
func bounceFinished(start, now time.Time) bool {
	return !start.IsZero() && now.Sub(start) >= BounceDuration
}
