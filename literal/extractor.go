package literal

import (
	"regexp/syntax"
	"unicode/utf8"
)

// ExtractorConfig bounds literal extraction.
//
// The limits stop extraction from exploding on patterns like (a|b|c)(d|e|f)...
// or large classes like [a-z]; a pattern over any limit is simply reported
// as not finite.
type ExtractorConfig struct {
	// MaxLiterals limits the size of the extracted set. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the byte length of each literal. Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits how large a character class may be expanded.
	// Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extract returns the exact literal set of the pattern, or nil when the
// pattern's language is infinite, not literal-shaped, or over the
// configured limits.
//
// A non-nil result is exact: the pattern matches a string iff the string
// is in the set.
func Extract(re *syntax.Regexp, config ExtractorConfig) *Seq {
	e := extractor{config: config}
	lits, ok := e.extract(re)
	if !ok {
		return nil
	}
	return NewSeq(lits)
}

type extractor struct {
	config ExtractorConfig
}

func (e *extractor) extract(re *syntax.Regexp) ([][]byte, bool) {
	switch re.Op {
	case syntax.OpEmptyMatch:
		return [][]byte{nil}, true

	case syntax.OpNoMatch:
		return nil, true

	case syntax.OpLiteral:
		var lit []byte
		for _, r := range re.Rune {
			lit = utf8.AppendRune(lit, r)
		}
		if len(lit) > e.config.MaxLiteralLen {
			return nil, false
		}
		return [][]byte{lit}, true

	case syntax.OpCharClass:
		return e.expandClass(re.Rune)

	case syntax.OpCapture:
		return e.extract(re.Sub[0])

	case syntax.OpConcat:
		acc := [][]byte{nil}
		for _, sub := range re.Sub {
			next, ok := e.extract(sub)
			if !ok {
				return nil, false
			}
			acc, ok = e.cross(acc, next)
			if !ok {
				return nil, false
			}
		}
		return acc, true

	case syntax.OpAlternate:
		var union [][]byte
		for _, sub := range re.Sub {
			branch, ok := e.extract(sub)
			if !ok {
				return nil, false
			}
			union = append(union, branch...)
			if len(union) > e.config.MaxLiterals {
				return nil, false
			}
		}
		return union, true

	default:
		// Repetitions, '.' forms, and anchors have no exact finite set.
		return nil, false
	}
}

// expandClass enumerates a character class into one literal per code
// point, respecting MaxClassSize.
func (e *extractor) expandClass(ranges []rune) ([][]byte, bool) {
	size := 0
	for i := 0; i+1 < len(ranges); i += 2 {
		size += int(ranges[i+1]-ranges[i]) + 1
		if size > e.config.MaxClassSize {
			return nil, false
		}
	}

	var out [][]byte
	for i := 0; i+1 < len(ranges); i += 2 {
		for r := ranges[i]; r <= ranges[i+1]; r++ {
			out = append(out, utf8.AppendRune(nil, r))
		}
	}
	return out, true
}

// cross concatenates every accumulated literal with every literal of the
// next part.
func (e *extractor) cross(acc, next [][]byte) ([][]byte, bool) {
	if len(acc)*len(next) > e.config.MaxLiterals {
		return nil, false
	}

	out := make([][]byte, 0, len(acc)*len(next))
	for _, a := range acc {
		for _, b := range next {
			lit := make([]byte, 0, len(a)+len(b))
			lit = append(lit, a...)
			lit = append(lit, b...)
			if len(lit) > e.config.MaxLiteralLen {
				return nil, false
			}
			out = append(out, lit)
		}
	}
	return out, true
}
