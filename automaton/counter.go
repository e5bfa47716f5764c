package automaton

import "math"

// Counter hands out fresh state IDs in ascending order.
//
// A counter is scoped to the automaton it fills; seed a counter with
// NextCounter when extending an automaton that already has states.
type Counter struct {
	next State
}

// NewCounter returns a counter whose first allocated state is first.
func NewCounter(first State) *Counter {
	return &Counter{next: first}
}

// Next returns the current state ID and advances the counter.
// It panics if the state space is exhausted.
func (c *Counter) Next() State {
	if c.next == math.MaxUint32 {
		panic("automaton: state counter overflow")
	}
	s := c.next
	c.next++
	return s
}
