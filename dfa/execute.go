package dfa

import (
	"github.com/Wardenfar/regex-automata/automaton"
)

// Execute runs a DFA against a haystack and returns the length of the
// shortest accepted prefix.
//
// Matching is anchored at the start of the haystack and the earliest
// accept wins: the current state is checked before each item is consumed,
// so a DFA whose initial state accepts reports a zero-length match. The
// second result is false when no prefix is accepted.
//
// This is a straightforward interpretive runner intended for tests and
// verification, not a production matcher. It assumes d is deterministic
// and panics if d has more than one initial state.
func Execute[T comparable](d *automaton.Automaton[T], haystack []T) (int, bool) {
	state := d.InitialState()

next:
	for idx, item := range haystack {
		if d.Accept[state] {
			return idx, true
		}
		for _, l := range d.LinksFrom(state) {
			if l.Symbol == item {
				state = l.To
				continue next
			}
		}
		return 0, false
	}

	if d.Accept[state] {
		return len(haystack), true
	}
	return 0, false
}
