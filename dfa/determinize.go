// Package dfa turns NFAs into minimal deterministic automata and provides
// a reference executor over the result.
//
// Minimization uses Brzozowski's algorithm: reverse the NFA, determinize,
// reverse the result, determinize again. The second pass yields the unique
// minimal DFA for the language, up to the allocator's choice of state IDs.
package dfa

import (
	"github.com/Wardenfar/regex-automata/automaton"
)

// FromNFA builds the minimal DFA recognizing the NFA's language.
//
// The NFA is consumed: it is inverted in place during the first pass and
// must not be reused. The resulting DFA has exactly one initial state, no
// ε transitions, and at most one outgoing link per (state, symbol) pair.
func FromNFA[T comparable](n *automaton.Automaton[automaton.Maybe[T]]) *automaton.Automaton[T] {
	n.Invert()
	d := determinize(n)
	d.Invert()
	return determinize(d.IntoNFA())
}

// determinize runs the subset construction over one NFA.
//
// Each distinct ε-closed set of NFA states (a canonical sorted multiState)
// becomes one DFA state on first sighting; it accepts iff it intersects
// the NFA's accept set. The worklist starts from the closure of the
// initial set and follows grouped non-ε transitions.
func determinize[T comparable](n *automaton.Automaton[automaton.Maybe[T]]) *automaton.Automaton[T] {
	d := automaton.New[T]()
	counter := automaton.NewCounter(0)
	cl := newCloser(n)
	table := make(map[string]automaton.State)

	// stateFor allocates the DFA state of a multiState on first sighting.
	stateFor := func(m multiState) automaton.State {
		key := m.key()
		if s, ok := table[key]; ok {
			return s
		}
		s := counter.Next()
		table[key] = s
		for _, q := range m.states {
			if n.Accept[q] {
				d.Accept[s] = true
				break
			}
		}
		return s
	}

	seed := make([]automaton.State, 0, len(n.Initial))
	for s := range n.Initial {
		seed = append(seed, s)
	}
	initial := cl.closure(seed)
	d.Initial[stateFor(initial)] = true

	queue := []multiState{initial}
	explored := map[string]bool{initial.key(): true}

	for len(queue) > 0 {
		from := queue[0]
		queue = queue[1:]

		// Group successor states of the current multiState by symbol.
		// Symbol order is first appearance in the link list, keeping the
		// construction deterministic.
		bySymbol := make(map[T][]automaton.State)
		var order []T
		for _, l := range n.Links {
			if l.Symbol.Epsilon || !from.contains(l.From) {
				continue
			}
			sym := l.Symbol.Symbol
			if _, ok := bySymbol[sym]; !ok {
				order = append(order, sym)
			}
			bySymbol[sym] = append(bySymbol[sym], l.To)
		}

		dfaFrom := stateFor(from)

		for _, sym := range order {
			to := cl.closure(bySymbol[sym])
			d.Link(dfaFrom, stateFor(to), sym)

			if key := to.key(); !explored[key] {
				explored[key] = true
				queue = append(queue, to)
			}
		}
	}

	return d
}
