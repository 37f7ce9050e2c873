package snap

import (
	"fmt"

	"github.com/beatforge/chartedit/core/divisor"
)

// BeatVelocity is a uniform-velocity Provider: objects travel
// DistancePerBeat playfield units over one beat of BeatLength time units.
// The snap distance is one divisor fraction of a beat's travel. Real charts
// substitute a provider backed by their timing and velocity tables; this one
// serves the preview binary and tests.
type BeatVelocity struct {
	DistancePerBeat float64
	BeatLength      float64
	Divisor         *divisor.Source
}

func NewBeatVelocity(distancePerBeat, beatLength float64, div *divisor.Source) *BeatVelocity {
	if distancePerBeat <= 0 || beatLength <= 0 {
		panic(fmt.Sprintf("snap: non-positive beat velocity (distance=%v beatLength=%v)", distancePerBeat, beatLength))
	}
	return &BeatVelocity{DistancePerBeat: distancePerBeat, BeatLength: beatLength, Divisor: div}
}

func (v *BeatVelocity) BeatSnapDistanceAt(t float64) float64 {
	return v.DistancePerBeat / float64(v.Divisor.Value())
}

func (v *BeatVelocity) DistanceToDuration(t, distance float64) float64 {
	return distance / v.DistancePerBeat * v.BeatLength
}
