package divisor

import "fmt"

// ValidDivisors are the beat subdivisions the editor exposes, ascending, so
// that ForBeatIndex prefers the coarsest divisor that lands exactly on a
// tick.
var ValidDivisors = []int{1, 2, 3, 4, 6, 8, 12, 16}

// Source holds the current beat divisor and notifies observers on every
// write, including writes that do not change the value. Downstream grids
// rely on redundant notifications to re-check layout state.
type Source struct {
	value     int
	observers []func(int)
}

func New(value int) *Source {
	if !IsValid(value) {
		panic(fmt.Sprintf("divisor: invalid beat divisor %d", value))
	}
	return &Source{value: value}
}

func (s *Source) Value() int { return s.value }

// Set writes a new divisor and notifies every observer. Redundant writes
// still notify.
func (s *Source) Set(value int) {
	if !IsValid(value) {
		panic(fmt.Sprintf("divisor: invalid beat divisor %d", value))
	}
	s.value = value
	for _, fn := range s.observers {
		fn(s.value)
	}
}

// Bind registers fn and invokes it once immediately with the current value,
// so subscribers establish their initial state without a separate read.
func (s *Source) Bind(fn func(int)) {
	s.observers = append(s.observers, fn)
	fn(s.value)
}

// IsValid reports whether d is one of the editor's beat subdivisions.
func IsValid(d int) bool {
	for _, v := range ValidDivisors {
		if v == d {
			return true
		}
	}
	return false
}

// ForBeatIndex returns the coarsest valid divisor that produces an exact
// tick at the given beat index under the current divisor. Index 0 (and any
// whole beat) maps to 1; odd ticks map to the current divisor or finer.
func ForBeatIndex(index, current int) int {
	if current < 1 {
		panic(fmt.Sprintf("divisor: non-positive divisor %d", current))
	}
	beat := index % current
	if beat < 0 {
		beat += current
	}
	for _, d := range ValidDivisors {
		if beat*d%current == 0 {
			return d
		}
	}
	return 0
}
