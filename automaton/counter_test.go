package automaton

import (
	"math"
	"testing"
)

func TestCounter_Sequence(t *testing.T) {
	c := NewCounter(0)
	for want := State(0); want < 5; want++ {
		if got := c.Next(); got != want {
			t.Errorf("Next: got %d, want %d", got, want)
		}
	}
}

func TestCounter_Seeded(t *testing.T) {
	c := NewCounter(42)
	if got := c.Next(); got != 42 {
		t.Errorf("Next: got %d, want 42", got)
	}
}

func TestCounter_Overflow(t *testing.T) {
	c := NewCounter(math.MaxUint32)
	defer func() {
		if recover() == nil {
			t.Error("Next at the end of the state space did not panic")
		}
	}()
	c.Next()
}

func TestNextCounter_SeedsPastMaxState(t *testing.T) {
	a := New[byte]()
	a.Link(3, 7, 'x')
	if got := a.NextCounter().Next(); got != 8 {
		t.Errorf("seeded counter: got %d, want 8", got)
	}
}

func TestNextCounter_EmptyAutomaton(t *testing.T) {
	a := New[byte]()
	if got := a.NextCounter().Next(); got != 0 {
		t.Errorf("seeded counter on empty automaton: got %d, want 0", got)
	}
}
