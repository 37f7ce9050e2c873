// Package judge produces the scoring tokens emitted when a repeat segment
// is evaluated.
package judge

import (
	"iter"

	"github.com/google/uuid"

	"github.com/beatforge/chartedit/core/timing"
)

// Judgement is an opaque scoring token. Ownership passes to the scoring
// subsystem on receipt; the factory keeps no reference.
type Judgement struct {
	ID          uuid.UUID
	Time        float64
	RepeatIndex int
}

// Factory mints judgements for repeat triggers. Stateless.
type Factory struct{}

// ForRepeat returns a lazy sequence yielding exactly one fresh judgement for
// the segment's trigger. Each call mints a new token; nothing is cached or
// reused.
func (Factory) ForRepeat(seg timing.RepeatSegment) iter.Seq[Judgement] {
	return func(yield func(Judgement) bool) {
		yield(Judgement{
			ID:          uuid.New(),
			Time:        seg.Time,
			RepeatIndex: seg.RepeatIndex,
		})
	}
}
