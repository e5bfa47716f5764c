package nfa

import (
	"errors"
	"regexp/syntax"
	"strings"
	"testing"
)

func TestCompile_RejectsLookaround(t *testing.T) {
	patterns := []string{`^a`, `a$`, `\bword`, `a\B`, `\Aa`, `a\z`}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			_, err := Compile(mustParse(t, pattern))
			if err == nil {
				t.Fatal("expected an error for lookaround construct")
			}
			if !errors.Is(err, ErrUnsupported) {
				t.Errorf("got %v, want ErrUnsupported", err)
			}

			var ue *UnsupportedError
			if !errors.As(err, &ue) {
				t.Errorf("error is not an *UnsupportedError: %v", err)
			}
		})
	}
}

func TestCompilePattern_ParseError(t *testing.T) {
	c := NewCompiler(DefaultCompilerConfig())
	_, err := c.CompilePattern("a(")
	if err == nil {
		t.Fatal("expected a parse error")
	}

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error is not a *CompileError: %v", err)
	}
	if ce.Pattern != "a(" {
		t.Errorf("CompileError.Pattern: got %q, want %q", ce.Pattern, "a(")
	}
	if !strings.Contains(err.Error(), "a(") {
		t.Errorf("error text does not mention the pattern: %v", err)
	}

	var parseErr *syntax.Error
	if !errors.As(err, &parseErr) {
		t.Errorf("CompileError does not unwrap to the syntax error: %v", err)
	}
}

func TestUnsupportedError_Message(t *testing.T) {
	err := &UnsupportedError{Op: syntax.OpBeginText}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("unexpected message: %v", err)
	}
}
