package nfa

import (
	"testing"
	"unicode/utf8"
)

// TestCompileUTF8_SharedLeadByte checks that code points with a common
// UTF-8 lead byte share its transition instead of each getting their own.
func TestCompileUTF8_SharedLeadByte(t *testing.T) {
	// [а-я]: U+0430..U+044F, two-byte encodings under lead bytes 0xD0
	// (U+0430-U+043F) and 0xD1 (U+0440-U+044F).
	n := mustCompile(t, "[а-я]")
	start := n.InitialState()

	leads := map[byte]int{}
	for _, l := range n.LinksFrom(start) {
		if l.Symbol.Epsilon {
			t.Fatalf("ε link out of the class start state: %v", l)
		}
		leads[l.Symbol.Symbol]++
	}

	if len(leads) != 2 {
		t.Fatalf("got %d distinct lead bytes %v, want 2", len(leads), leads)
	}
	for _, b := range []byte{0xD0, 0xD1} {
		if leads[b] != 1 {
			t.Errorf("lead byte %#x has %d transitions, want exactly 1", b, leads[b])
		}
	}

	// 32 code points: 2 shared lead links + 32 tail links, one ε per
	// code point into the end state.
	symbols, epsilons := countLinks(n)
	if symbols != 34 {
		t.Errorf("got %d symbol links, want 34", symbols)
	}
	if epsilons != 32 {
		t.Errorf("got %d ε links, want 32", epsilons)
	}
}

// TestCompileUTF8_SharedTwoBytePrefix checks prefix sharing across a
// three-byte encoding: a k-byte common prefix yields exactly k shared
// transitions.
func TestCompileUTF8_SharedTwoBytePrefix(t *testing.T) {
	// [一-丁]: U+4E00 (E4 B8 80) and U+4E01 (E4 B8 81) share two bytes.
	n := mustCompile(t, "[一-丁]")

	symbols, epsilons := countLinks(n)
	if symbols != 4 {
		t.Errorf("got %d symbol links, want 4 (E4, B8 shared; 80, 81 distinct)", symbols)
	}
	if epsilons != 2 {
		t.Errorf("got %d ε links, want 2", epsilons)
	}
}

// TestCompileUTF8_PrefixDivergenceResets checks that after two encodings
// diverge at byte i, deeper bytes are not accidentally shared again.
func TestCompileUTF8_PrefixDivergenceResets(t *testing.T) {
	// [℀-℁] U+2100 (E2 84 80), U+2101 (E2 84 81) and then a far-away
	// range member resets the shared prefix entirely.
	n := mustCompile(t, "[℀℁㐀]") // U+2100, U+2101, U+3400 (E3 90 80)

	// U+2100: 3 links. U+2101: shares E2 84, adds 1. U+3400: diverges at
	// the lead byte, adds 3.
	symbols, epsilons := countLinks(n)
	if symbols != 7 {
		t.Errorf("got %d symbol links, want 7", symbols)
	}
	if epsilons != 3 {
		t.Errorf("got %d ε links, want 3", epsilons)
	}
}

func TestCompileUTF8_LiteralEncoding(t *testing.T) {
	// A multi-byte literal chains the encoded bytes of each rune.
	n := mustCompile(t, "é") // U+00E9: C3 A9

	symbols, epsilons := countLinks(n)
	if want := utf8.RuneLen('é'); symbols != want {
		t.Errorf("got %d symbol links, want %d", symbols, want)
	}
	if epsilons != 1 {
		t.Errorf("got %d ε links, want 1", epsilons)
	}
}
