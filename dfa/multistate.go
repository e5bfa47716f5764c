package dfa

import (
	"encoding/binary"
	"slices"

	"github.com/Wardenfar/regex-automata/automaton"
	"github.com/Wardenfar/regex-automata/internal/sparse"
)

// multiState is a canonical set of NFA states standing in for one DFA
// state during subset construction. The slice is always sorted ascending,
// which makes the encoded key independent of exploration order.
type multiState struct {
	states []automaton.State
}

// key encodes the sorted states into a map key.
func (m multiState) key() string {
	buf := make([]byte, 0, 4*len(m.states))
	for _, s := range m.states {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(s))
	}
	return string(buf)
}

// contains reports whether s is a member, by binary search.
func (m multiState) contains(s automaton.State) bool {
	_, ok := slices.BinarySearch(m.states, s)
	return ok
}

// closer computes ε-closures over one NFA. The ε adjacency is indexed once
// and the visited set is reused across calls.
type closer[T comparable] struct {
	eps     map[automaton.State][]automaton.State
	visited *sparse.Set
}

func newCloser[T comparable](n *automaton.Automaton[automaton.Maybe[T]]) *closer[T] {
	eps := make(map[automaton.State][]automaton.State)
	for _, l := range n.Links {
		if l.Symbol.Epsilon {
			eps[l.From] = append(eps[l.From], l.To)
		}
	}

	capacity := uint32(0)
	if max, ok := n.MaxState(); ok {
		capacity = uint32(max) + 1
	}

	return &closer[T]{
		eps:     eps,
		visited: sparse.New(capacity),
	}
}

// closure returns the canonical ε-closure of seed: every state reachable
// from seed along ε transitions alone, sorted ascending.
func (c *closer[T]) closure(seed []automaton.State) multiState {
	c.visited.Clear()

	queue := make([]automaton.State, 0, len(seed))
	for _, s := range seed {
		if !c.visited.Contains(uint32(s)) {
			c.visited.Insert(uint32(s))
			queue = append(queue, s)
		}
	}

	for i := 0; i < len(queue); i++ {
		for _, to := range c.eps[queue[i]] {
			if !c.visited.Contains(uint32(to)) {
				c.visited.Insert(uint32(to))
				queue = append(queue, to)
			}
		}
	}

	states := make([]automaton.State, len(queue))
	copy(states, queue)
	slices.Sort(states)
	return multiState{states: states}
}
