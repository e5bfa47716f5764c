package regexautomata

import (
	"regexp"
	"testing"
)

// acceptsWhole runs the DFA over the entire input: exact language
// membership, independent of Match's prefix semantics.
func acceptsWhole(d *DFA, input string) bool {
	state := d.InitialState()
next:
	for i := 0; i < len(input); i++ {
		for _, l := range d.LinksFrom(state) {
			if l.Symbol == input[i] {
				state = l.To
				continue next
			}
		}
		return false
	}
	return d.Accept[state]
}

// TestRoundTrip_LanguageEquality drives the full pipeline both ways:
// pattern → NFA → DFA → regex → NFA → DFA, then checks the original DFA,
// the rebuilt DFA, and stdlib regexp agree on every sampled string. The
// alternation-under-star cases are the historically fragile ones; they
// are tested by execution, never by comparing regex text.
func TestRoundTrip_LanguageEquality(t *testing.T) {
	tests := []struct {
		pattern  string
		alphabet string
		maxLen   int
	}{
		{"a", "ab", 3},
		{"abc", "abc", 4},
		{"a|b|c", "abcd", 3},
		{"ab?c", "abc", 5},
		{"ab{1,3}c", "abc", 6},
		{"(a|b)*", "abc", 5},
		{"(a|b)*abb(a|b)*", "ab", 7},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			rebuilt := re.Regexp()

			re2, err := CompileRegexp(rebuilt)
			if err != nil {
				t.Fatalf("compile rebuilt regex %v: %v", rebuilt, err)
			}

			oracle := regexp.MustCompile("^(?:" + tt.pattern + ")$")
			for _, w := range allStrings(tt.alphabet, tt.maxLen) {
				want := oracle.MatchString(w)
				if got := acceptsWhole(re.DFA(), w); got != want {
					t.Errorf("%q: original DFA accepts=%v, stdlib=%v", w, got, want)
				}
				if got := acceptsWhole(re2.DFA(), w); got != want {
					t.Errorf("%q: rebuilt DFA accepts=%v, stdlib=%v", w, got, want)
				}
			}
		})
	}
}

// TestRoundTrip_MinimalDFAUnchanged checks the rebuilt regex determinizes
// to a DFA of the same size: the round trip must not grow the minimal
// automaton.
func TestRoundTrip_MinimalDFAUnchanged(t *testing.T) {
	patterns := []string{"a", "a|b|c", "(a|b)*abb", "ab?c"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			re := MustCompile(pattern)
			re2, err := CompileRegexp(re.Regexp())
			if err != nil {
				t.Fatal(err)
			}

			before := len(re.DFA().StatesSet())
			after := len(re2.DFA().StatesSet())
			if before != after {
				t.Errorf("state count changed across round trip: %d -> %d", before, after)
			}
		})
	}
}

func TestRegexp_Cached(t *testing.T) {
	re := MustCompile("ab")
	if re.Regexp() != re.Regexp() {
		t.Error("Regexp() rebuilt the tree on the second call")
	}
}
