package judge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beatforge/chartedit/core/timing"
)

func collect(seq func(func(Judgement) bool)) []Judgement {
	var out []Judgement
	seq(func(j Judgement) bool {
		out = append(out, j)
		return true
	})
	return out
}

func TestForRepeatYieldsExactlyOne(t *testing.T) {
	var f Factory
	seg := timing.RepeatSegment{RepeatIndex: 2, SpanDuration: 200, Time: 1400}

	got := collect(f.ForRepeat(seg))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].RepeatIndex)
	assert.Equal(t, 1400.0, got[0].Time)
	assert.NotZero(t, got[0].ID)
}

func TestForRepeatMintsFreshTokens(t *testing.T) {
	var f Factory
	seg := timing.RepeatSegment{RepeatIndex: 0, SpanDuration: 200, Time: 1000}

	a := collect(f.ForRepeat(seg))
	b := collect(f.ForRepeat(seg))
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.NotEqual(t, a[0].ID, b[0].ID, "tokens must not be cached or reused")
}

func TestForRepeatStopsWhenConsumerStops(t *testing.T) {
	var f Factory
	seg := timing.RepeatSegment{RepeatIndex: 0, SpanDuration: 200, Time: 1000}

	calls := 0
	f.ForRepeat(seg)(func(Judgement) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}
