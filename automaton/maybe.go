package automaton

import "fmt"

// Maybe is the edge symbol type of an NFA: either a concrete symbol or the
// ε marker. A DFA never carries ε, so DFAs use the bare symbol type
// instead.
//
// Maybe[T] is comparable whenever T is, which makes it usable as a map key
// during subset construction.
type Maybe[T any] struct {
	// Symbol is the concrete symbol. Only meaningful when Epsilon is false.
	Symbol T

	// Epsilon marks an ε transition.
	Epsilon bool
}

// Sym wraps a concrete symbol.
func Sym[T any](symbol T) Maybe[T] {
	return Maybe[T]{Symbol: symbol}
}

// Eps returns the ε marker.
func Eps[T any]() Maybe[T] {
	return Maybe[T]{Epsilon: true}
}

// String renders ε transitions as "ε" and concrete symbols through their
// default formatting. Used by the DOT serializer.
func (m Maybe[T]) String() string {
	if m.Epsilon {
		return "ε"
	}
	return fmt.Sprint(m.Symbol)
}
