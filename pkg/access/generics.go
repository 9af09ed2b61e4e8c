package access

import "time"

// Transition time resolution codes (Mesh Model 3.1.3).
const (
	TransitionResolution100ms = 0b00
	TransitionResolution1s    = 0b01
	TransitionResolution10s   = 0b10
	TransitionResolution10min = 0b11
)

// transitionTime is the 1-byte transition time field: resolution in the
// two most significant bits, step count in the low six. Kept raw; use
// TransitionDuration for the decoded value.
func transitionTime(name string) Field {
	return structf(name,
		bits(1,
			bf("resolution", 2),
			bf("steps", 6),
		),
	)
}

// optionalSetParams is the optional transition_time + delay tail shared by
// the generic and lighting Set messages.
func optionalSetParams() Field {
	return optional(
		transitionTime("transition_time"),
		u8("delay"),
	)
}

var transitionStep = [...]time.Duration{
	TransitionResolution100ms: 100 * time.Millisecond,
	TransitionResolution1s:    time.Second,
	TransitionResolution10s:   10 * time.Second,
	TransitionResolution10min: 10 * time.Minute,
}

// TransitionStepsUnknown is the step count meaning "unknown remaining time".
const TransitionStepsUnknown = 0x3F

// TransitionDuration converts a raw transition time field to a duration.
// The unknown step count (0x3F) has no duration; ok is false.
func TransitionDuration(resolution, steps uint64) (time.Duration, bool) {
	if resolution > TransitionResolution10min || steps >= TransitionStepsUnknown {
		return 0, false
	}
	return time.Duration(steps) * transitionStep[resolution], true
}

// TransitionSteps converts a duration to the coarsest transition time
// representation able to express it. ok is false when d is negative or
// beyond the maximum representable time (0x3E * 10 min).
func TransitionSteps(d time.Duration) (resolution, steps uint64, ok bool) {
	if d < 0 {
		return 0, 0, false
	}
	for res, step := range transitionStep {
		if d <= step*(TransitionStepsUnknown-1) && d%step == 0 {
			return uint64(res), uint64(d / step), true
		}
	}
	return 0, 0, false
}

// DelayDuration converts the raw message delay field (5 ms units) to a
// duration.
func DelayDuration(delay uint64) time.Duration {
	return time.Duration(delay) * 5 * time.Millisecond
}

// DelaySteps converts a duration to the raw 5 ms delay units, saturating
// at the field maximum.
func DelaySteps(d time.Duration) uint64 {
	if d < 0 {
		return 0
	}
	steps := uint64(d / (5 * time.Millisecond))
	if steps > 0xFF {
		return 0xFF
	}
	return steps
}
