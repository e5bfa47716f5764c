// Package regexautomata converts between regular expressions and finite
// automata.
//
// The pipeline has three representations of a regular language and a
// transformation between each pair of neighbors:
//
//   - a parsed syntax tree (regexp/syntax.Regexp),
//   - a byte NFA with ε transitions (nfa.Compile, Thompson construction),
//   - a minimal byte DFA (dfa.FromNFA, Brzozowski minimization),
//
// plus the way back: regen.FromDFA reconstructs a syntax tree from a DFA
// by state elimination, closing the round trip.
//
// This package is the facade over those stages. A compiled Regex holds
// the minimal DFA of the pattern and matches anchored prefixes with it:
//
//	re, err := regexautomata.Compile("ab?c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Match([]byte("abc")) // true
//	re.Match([]byte("ab"))  // false
//
// Patterns whose language is a small finite set of strings skip the DFA
// for boolean matching and use an Aho-Corasick automaton over the literal
// set instead.
//
// Matching is anchored at the start of the input and reports the shortest
// accepted prefix. Lookaround (anchors, word boundaries), captures with
// meaning, and unanchored searching are out of scope; see the nfa package
// for the rejection behavior.
package regexautomata

import (
	"regexp/syntax"
	"sync"

	"github.com/coregx/ahocorasick"

	"github.com/Wardenfar/regex-automata/automaton"
	"github.com/Wardenfar/regex-automata/dfa"
	"github.com/Wardenfar/regex-automata/literal"
	"github.com/Wardenfar/regex-automata/nfa"
	"github.com/Wardenfar/regex-automata/regen"
)

// DFA is a deterministic finite automaton over bytes.
type DFA = automaton.Automaton[byte]

// Regex is a compiled pattern backed by its minimal DFA.
//
// A Regex is safe for concurrent use.
type Regex struct {
	pattern string
	dfa     *DFA

	// literals is the exact finite literal set of the pattern, nil when
	// the language is infinite or extraction hit its limits.
	literals     *literal.Seq
	ac           *ahocorasick.Automaton
	matchesEmpty bool

	rebuildOnce sync.Once
	rebuilt     *syntax.Regexp
}

// Compile parses a pattern with Perl syntax and compiles it down to its
// minimal DFA.
func Compile(pattern string) (*Regex, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &nfa.CompileError{Pattern: pattern, Err: err}
	}
	return CompileRegexp(re)
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileRegexp compiles an already-parsed syntax tree.
func CompileRegexp(re *syntax.Regexp) (*Regex, error) {
	n, err := nfa.Compile(re)
	if err != nil {
		return nil, err
	}

	r := &Regex{
		pattern: re.String(),
		dfa:     dfa.FromNFA(n),
	}
	r.buildLiteralPath(re)
	return r, nil
}

// buildLiteralPath sets up the Aho-Corasick fast path when the pattern's
// language is an exact finite literal set.
func (r *Regex) buildLiteralPath(re *syntax.Regexp) {
	seq := literal.Extract(re, literal.DefaultConfig())
	if seq == nil {
		return
	}
	r.literals = seq
	r.matchesEmpty = seq.HasEmpty()

	builder := ahocorasick.NewBuilder()
	patterns := 0
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		if len(lit) == 0 {
			continue
		}
		builder.AddPattern(lit)
		patterns++
	}
	if patterns == 0 {
		return
	}

	auto, err := builder.Build()
	if err != nil {
		// Fall back to DFA execution; the literal set stays available
		// for inspection.
		return
	}
	r.ac = auto
}

// Match reports whether some prefix of input matches the pattern.
//
// When the literal fast path is available it answers without touching the
// DFA: a literal set matches a prefix iff the leftmost occurrence of any
// literal starts at offset 0.
func (r *Regex) Match(input []byte) bool {
	if r.literals != nil {
		if r.matchesEmpty {
			return true
		}
		if r.ac != nil {
			m := r.ac.Find(input, 0)
			return m != nil && m.Start == 0
		}
		if r.literals.Len() == 0 {
			// Exact empty set: the pattern matches nothing.
			return false
		}
	}

	_, ok := dfa.Execute(r.dfa, input)
	return ok
}

// Find returns the length of the shortest prefix of input accepted by the
// pattern. The second result is false when no prefix matches.
//
// Find always executes the DFA: the literal path answers only the boolean
// question, since a multi-pattern matcher does not report the shortest
// accepted prefix.
func (r *Regex) Find(input []byte) (int, bool) {
	return dfa.Execute(r.dfa, input)
}

// Regexp reconstructs a syntax tree recognizing the same language as the
// pattern, derived from the minimal DFA by state elimination. The result
// is computed once and cached; it is language-equivalent to the input
// pattern but usually not textually identical.
func (r *Regex) Regexp() *syntax.Regexp {
	r.rebuildOnce.Do(func() {
		r.rebuilt = regen.FromDFA(r.dfa, regen.ByteHir)
	})
	return r.rebuilt
}

// DFA returns the pattern's minimal DFA. The automaton must be treated as
// read-only.
func (r *Regex) DFA() *DFA {
	return r.dfa
}

// Literals returns the exact literal set of the pattern, or nil when the
// language is not a small finite set.
func (r *Regex) Literals() *literal.Seq {
	return r.literals
}

// Pattern returns the source pattern in its parsed, normalized form.
func (r *Regex) Pattern() string {
	return r.pattern
}

// Dot renders the pattern's DFA in Graphviz form for debugging.
func (r *Regex) Dot() string {
	return r.dfa.ToDot()
}
