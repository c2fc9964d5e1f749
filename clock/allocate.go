package clock

import "time"

// AllocateMoveTime computes the budget for the next search: the fraction
// decay of whatever time is currently remaining (spec.md §4.5 and
// config.Settings.Search.TimeDecay), an exponential-decay allocation
// rather than dividing evenly by an assumed game length, grounded on
// original_source/src/constants.rs's Hyperparameters.time_alloc_decay_moves
// (there expressed as "1/N of what's left"; here as the equivalent
// fraction directly).
func AllocateMoveTime(remaining time.Duration, decay float64) time.Duration {
	if decay <= 0 {
		return 0
	}
	if decay >= 1 {
		return remaining
	}
	return time.Duration(float64(remaining) * decay)
}
