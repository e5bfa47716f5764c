package regen

import (
	"regexp/syntax"
	"slices"

	"github.com/Wardenfar/regex-automata/internal/zom"
)

// ByteHir lifts a byte into a single-element character class.
//
// The byte is interpreted as the code point of the same value, so for
// bytes below 0x80 the class denotes exactly that byte. Reconstructions of
// DFAs whose edges carry non-ASCII UTF-8 continuation bytes are therefore
// Latin-1-flavored in textual form; language comparisons should stay on
// ASCII alphabets.
func ByteHir(b byte) *syntax.Regexp {
	return RuneHir(rune(b))
}

// RuneHir lifts a rune into a single-element character class.
func RuneHir(r rune) *syntax.Regexp {
	return &syntax.Regexp{
		Op:   syntax.OpCharClass,
		Rune: []rune{r, r},
	}
}

// BoolHir lifts a boolean symbol onto the characters '1' and '0', for
// automata over binary alphabets.
func BoolHir(b bool) *syntax.Regexp {
	if b {
		return ByteHir('1')
	}
	return ByteHir('0')
}

func emptyMatch() *syntax.Regexp {
	return &syntax.Regexp{Op: syntax.OpEmptyMatch}
}

func noMatch() *syntax.Regexp {
	return &syntax.Regexp{Op: syntax.OpNoMatch}
}

func eqHir(a, b *syntax.Regexp) bool {
	return a.Equal(b)
}

// star wraps sub in an unbounded greedy repetition.
func star(sub *syntax.Regexp) *syntax.Regexp {
	return &syntax.Regexp{
		Op:  syntax.OpStar,
		Sub: []*syntax.Regexp{sub},
	}
}

// alternation combines alternative branches into one node.
//
// Branches are deduplicated by structural equality, a single survivor is
// returned unwrapped, and an alternation made up entirely of character
// classes is fused into one merged class (so a|b|c becomes [a-c]).
func alternation(subs []*syntax.Regexp) *syntax.Regexp {
	unique := zom.Unique(subs, eqHir)

	switch len(unique) {
	case 0:
		return noMatch()
	case 1:
		return unique[0]
	}

	if fused, ok := fuseClasses(unique); ok {
		return fused
	}

	return &syntax.Regexp{
		Op:  syntax.OpAlternate,
		Sub: unique,
	}
}

// fuseClasses merges an all-character-class alternation into a single
// class with sorted, coalesced ranges.
func fuseClasses(subs []*syntax.Regexp) (*syntax.Regexp, bool) {
	var pairs [][2]rune
	for _, sub := range subs {
		if sub.Op != syntax.OpCharClass {
			return nil, false
		}
		for i := 0; i+1 < len(sub.Rune); i += 2 {
			pairs = append(pairs, [2]rune{sub.Rune[i], sub.Rune[i+1]})
		}
	}

	slices.SortFunc(pairs, func(a, b [2]rune) int {
		if a[0] != b[0] {
			return int(a[0] - b[0])
		}
		return int(a[1] - b[1])
	})

	merged := make([]rune, 0, 2*len(pairs))
	for _, p := range pairs {
		n := len(merged)
		if n > 0 && p[0] <= merged[n-1]+1 {
			if p[1] > merged[n-1] {
				merged[n-1] = p[1]
			}
			continue
		}
		merged = append(merged, p[0], p[1])
	}

	return &syntax.Regexp{Op: syntax.OpCharClass, Rune: merged}, true
}

// concat chains parts in sequence, flattening nested concatenations and
// dropping empty-match units. Zero parts collapse to an empty match, one
// part is returned unwrapped.
func concat(parts []*syntax.Regexp) *syntax.Regexp {
	var flat []*syntax.Regexp
	for _, p := range parts {
		switch p.Op {
		case syntax.OpEmptyMatch:
		case syntax.OpConcat:
			flat = append(flat, p.Sub...)
		default:
			flat = append(flat, p)
		}
	}

	switch len(flat) {
	case 0:
		return emptyMatch()
	case 1:
		return flat[0]
	default:
		return &syntax.Regexp{Op: syntax.OpConcat, Sub: flat}
	}
}
