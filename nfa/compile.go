// Package nfa compiles parsed regex syntax trees into nondeterministic
// finite automata using Thompson's construction.
//
// The produced NFA is an automaton.Automaton over Maybe[byte]: every
// transition consumes a single byte or is an ε transition. Unicode
// character classes are lowered to byte transitions through a shared
// UTF-8 prefix tree, so code points with a common encoding prefix share
// states.
//
// Lookaround (anchors, word boundaries) cannot be expressed in the
// automaton model and is rejected with an UnsupportedError.
package nfa

import (
	"regexp/syntax"
	"unicode/utf8"

	"github.com/Wardenfar/regex-automata/automaton"
)

// NFA is a nondeterministic finite automaton over bytes with ε transitions.
type NFA = automaton.Automaton[automaton.Maybe[byte]]

// CompilerConfig configures NFA compilation behavior
type CompilerConfig struct {
	// MaxRecursionDepth limits recursion during compilation to prevent
	// stack overflow on pathologically nested patterns. Default: 1000.
	MaxRecursionDepth int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxRecursionDepth: 1000,
	}
}

// Compiler compiles regexp/syntax.Regexp trees into Thompson NFAs
type Compiler struct {
	config  CompilerConfig
	nfa     *NFA
	counter *automaton.Counter
	depth   int
}

// NewCompiler creates a new NFA compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxRecursionDepth == 0 {
		config.MaxRecursionDepth = 1000
	}
	return &Compiler{config: config}
}

// Compile compiles a parsed syntax tree into an NFA with default
// configuration. The NFA has exactly one initial and one accept state.
func Compile(re *syntax.Regexp) (*NFA, error) {
	return NewCompiler(DefaultCompilerConfig()).Compile(re)
}

// CompilePattern parses a pattern with Perl syntax and compiles it.
func (c *Compiler) CompilePattern(pattern string) (*NFA, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return c.Compile(re)
}

// Compile compiles a parsed syntax tree into an NFA.
func (c *Compiler) Compile(re *syntax.Regexp) (*NFA, error) {
	c.nfa = automaton.New[automaton.Maybe[byte]]()
	c.counter = automaton.NewCounter(0)
	c.depth = 0

	sp, err := c.compile(re)
	if err != nil {
		return nil, err
	}

	c.nfa.Initial[sp.start] = true
	c.nfa.Accept[sp.end] = true
	return c.nfa, nil
}

// span is the fresh (start, end) state pair of a compiled subexpression.
type span struct {
	start automaton.State
	end   automaton.State
}

func (c *Compiler) compile(re *syntax.Regexp) (span, error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.config.MaxRecursionDepth {
		return span{}, &CompileError{Err: ErrTooComplex}
	}

	start := c.counter.Next()
	end := c.counter.Next()
	sp := span{start: start, end: end}

	switch re.Op {
	case syntax.OpEmptyMatch:
		c.epsilon(start, end)

	case syntax.OpNoMatch:
		// Empty language: start and end stay disconnected.

	case syntax.OpLiteral:
		prev := start
		var buf [utf8.UTFMax]byte
		for _, r := range re.Rune {
			n := utf8.EncodeRune(buf[:], r)
			for _, b := range buf[:n] {
				next := c.counter.Next()
				c.nfa.Link(prev, next, automaton.Sym(b))
				prev = next
			}
		}
		c.epsilon(prev, end)

	case syntax.OpCharClass:
		c.compileClass(re.Rune, start, end)

	case syntax.OpAnyChar:
		c.compileClass([]rune{0, utf8.MaxRune}, start, end)

	case syntax.OpAnyCharNotNL:
		c.compileClass([]rune{0, '\n' - 1, '\n' + 1, utf8.MaxRune}, start, end)

	case syntax.OpStar:
		return sp, c.compileRepeat(0, -1, re.Sub[0], start, end)

	case syntax.OpPlus:
		return sp, c.compileRepeat(1, -1, re.Sub[0], start, end)

	case syntax.OpQuest:
		return sp, c.compileRepeat(0, 1, re.Sub[0], start, end)

	case syntax.OpRepeat:
		return sp, c.compileRepeat(re.Min, re.Max, re.Sub[0], start, end)

	case syntax.OpCapture:
		// Grouping carries no meaning in the automaton; traverse the body.
		item, err := c.compile(re.Sub[0])
		if err != nil {
			return span{}, err
		}
		c.epsilon(start, item.start)
		c.epsilon(item.end, end)

	case syntax.OpConcat:
		prev := start
		for _, sub := range re.Sub {
			item, err := c.compile(sub)
			if err != nil {
				return span{}, err
			}
			c.epsilon(prev, item.start)
			prev = item.end
		}
		c.epsilon(prev, end)

	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			item, err := c.compile(sub)
			if err != nil {
				return span{}, err
			}
			c.epsilon(start, item.start)
			c.epsilon(item.end, end)
		}

	default:
		// Anchors and word boundaries are lookaround in the syntax tree.
		return span{}, &UnsupportedError{Op: re.Op}
	}

	return sp, nil
}

// compileClass lowers a character class (inclusive rune range pairs) to
// byte transitions between start and end.
//
// An all-ASCII class emits one direct byte link per member. A class with
// code points above 0x7F is lowered through a shared UTF-8 prefix tree:
// code points are enumerated in range order, and each encoding reuses the
// states of its longest common prefix with the previous encoding.
func (c *Compiler) compileClass(ranges []rune, start, end automaton.State) {
	ascii := true
	for i := 1; i < len(ranges); i += 2 {
		if ranges[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}

	if ascii {
		for i := 0; i+1 < len(ranges); i += 2 {
			for r := ranges[i]; r <= ranges[i+1]; r++ {
				c.nfa.Link(start, end, automaton.Sym(byte(r)))
			}
		}
		return
	}

	var prevBytes [utf8.UTFMax]byte
	var commonStates [utf8.UTFMax]automaton.State
	commonLen := 0

	for i := 0; i+1 < len(ranges); i += 2 {
		for r := ranges[i]; r <= ranges[i+1]; r++ {
			if r >= 0xD800 && r <= 0xDFFF {
				// Surrogate halves have no UTF-8 encoding.
				continue
			}

			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)

			prev := start
			for j := 0; j < n; j++ {
				if j >= commonLen || buf[j] != prevBytes[j] {
					commonLen = j
					next := c.counter.Next()
					commonStates[j] = next
					c.nfa.Link(prev, next, automaton.Sym(buf[j]))
					prev = next
				} else {
					prev = commonStates[j]
				}
			}

			c.epsilon(prev, end)
			commonLen = n
			prevBytes = buf
		}
	}
}

// compileRepeat compiles min mandatory copies of sub followed by the
// optional tail: max-min early-exit copies when max is bounded, or a
// single looped copy when max is -1 (unbounded).
func (c *Compiler) compileRepeat(min, max int, sub *syntax.Regexp, start, end automaton.State) error {
	prev := start

	for i := 0; i < min; i++ {
		item, err := c.compile(sub)
		if err != nil {
			return err
		}
		c.epsilon(prev, item.start)
		prev = item.end
	}

	if max >= 0 {
		for i := min; i < max; i++ {
			item, err := c.compile(sub)
			if err != nil {
				return err
			}
			c.epsilon(prev, item.start)
			c.epsilon(prev, end)
			prev = item.end
		}
	} else {
		item, err := c.compile(sub)
		if err != nil {
			return err
		}
		c.epsilon(prev, item.start)
		c.epsilon(item.end, item.start)
		c.epsilon(item.end, end)
	}

	c.epsilon(prev, end)
	return nil
}

func (c *Compiler) epsilon(from, to automaton.State) {
	c.nfa.Link(from, to, automaton.Eps[byte]())
}
