// Package literal extracts the exact literal set of a regex pattern.
//
// A pattern whose language is a small finite set of strings (literals,
// alternations of literals, small character classes and concatenations of
// those) does not need an automaton to match: the engine can hand the set
// to a multi-pattern string matcher instead. Extract recovers that set
// when it exists within configured limits.
package literal

import "bytes"

// Seq is a set of alternative byte-string literals, deduplicated, in
// first-derived order.
type Seq struct {
	lits [][]byte
}

// NewSeq builds a Seq from the given literals, dropping duplicates.
func NewSeq(lits [][]byte) *Seq {
	s := &Seq{}
	for _, l := range lits {
		s.push(l)
	}
	return s
}

func (s *Seq) push(lit []byte) {
	for _, have := range s.lits {
		if bytes.Equal(have, lit) {
			return
		}
	}
	s.lits = append(s.lits, lit)
}

// Len returns the number of literals in the set.
func (s *Seq) Len() int {
	return len(s.lits)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) []byte {
	return s.lits[i]
}

// HasEmpty reports whether the empty string is in the set.
func (s *Seq) HasEmpty() bool {
	for _, l := range s.lits {
		if len(l) == 0 {
			return true
		}
	}
	return false
}

// Literals returns the underlying literal slices. The result must not be
// mutated.
func (s *Seq) Literals() [][]byte {
	return s.lits
}
