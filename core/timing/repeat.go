package timing

import "fmt"

// RepeatSegment is one traversal of a repeating object's path.
type RepeatSegment struct {
	RepeatIndex  int
	SpanDuration float64
	Time         float64 // nominal trigger time of this repeat

	preempt float64
}

// ApplyDefaults derives the segment's effective preempt from the supplied
// base value. Called once per defaults pass; a later pass simply overwrites.
func (s *RepeatSegment) ApplyDefaults(basePreempt float64) {
	s.preempt = EffectivePreempt(basePreempt, s.SpanDuration, s.RepeatIndex)
}

// Preempt returns the effective visibility lead time.
func (s *RepeatSegment) Preempt() float64 { return s.preempt }

// VisibleFrom returns the time at which the segment must start appearing.
func (s *RepeatSegment) VisibleFrom() float64 { return s.Time - s.preempt }

// RepeatingObject is a rhythm object traversing its path RepeatCount+1
// times (the initial pass plus RepeatCount repeats).
type RepeatingObject struct {
	Time         float64
	Difficulty   float64
	SpanDuration float64
	RepeatCount  int
}

// ApplyDefaults resolves the object's base preempt once and derives one
// RepeatSegment per repeat, each with its own capped preempt.
func (o RepeatingObject) ApplyDefaults(resolver PreemptResolver) []RepeatSegment {
	if o.RepeatCount < 0 {
		panic(fmt.Sprintf("timing: negative repeat count %d", o.RepeatCount))
	}
	base := resolver.BasePreemptAt(o.Time, o.Difficulty)
	segs := make([]RepeatSegment, o.RepeatCount+1)
	for i := range segs {
		segs[i] = RepeatSegment{
			RepeatIndex:  i,
			SpanDuration: o.SpanDuration,
			Time:         o.Time + float64(i)*o.SpanDuration,
		}
		segs[i].ApplyDefaults(base)
	}
	return segs
}
