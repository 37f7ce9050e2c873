package timing

import (
	"fmt"
	"math"
)

// PreemptResolver supplies the difficulty-derived base preempt: how long
// before its nominal time a non-repeating object must already be visible.
// Consumed once per object during defaults application.
type PreemptResolver interface {
	BasePreemptAt(t, difficulty float64) float64
}

// EffectivePreempt derives a repeat segment's visibility lead time. Every
// repeating segment appears one span earlier than its base preempt, warning
// the player before the first traversal begins. From the second repeat on
// the window is capped at two spans so that fast repeats never stack more
// than two visible segments.
//
// Pure and idempotent; recomputed from scratch on every defaults pass.
func EffectivePreempt(basePreempt, spanDuration float64, repeatIndex int) float64 {
	if spanDuration <= 0 {
		panic(fmt.Sprintf("timing: non-positive span duration %v", spanDuration))
	}
	if repeatIndex < 0 {
		panic(fmt.Sprintf("timing: negative repeat index %d", repeatIndex))
	}
	if basePreempt < 0 {
		panic(fmt.Sprintf("timing: negative base preempt %v", basePreempt))
	}
	extended := basePreempt + spanDuration
	if repeatIndex == 0 {
		return extended
	}
	return math.Min(spanDuration*2, extended)
}
