// Package regen reconstructs a regular expression syntax tree from a DFA.
//
// The reconstruction is state elimination: every DFA edge is first lifted
// to a one-symbol regex, a synthetic source and sink are attached around
// the initial and accept states, and each original state is then removed
// in turn, rewriting the edges around it so the remaining graph keeps
// recognizing the same language. When only the source and sink remain,
// the label of the single surviving edge is the answer.
//
// The output regex denotes the same language as the DFA; it is generally
// not the textually smallest equivalent form.
package regen

import (
	"fmt"
	"regexp/syntax"
	"slices"

	"github.com/Wardenfar/regex-automata/automaton"
	"github.com/Wardenfar/regex-automata/internal/zom"
)

// FromDFA converts a DFA back into a regex syntax tree.
//
// lift maps one edge symbol to the regex matching exactly that symbol
// (ByteHir for byte DFAs). States are eliminated in ascending ID order,
// so the output is deterministic for a given DFA.
//
// A DFA with no accept states, or whose accept states are unreachable,
// yields an OpNoMatch tree (the empty language).
func FromDFA[T any](d *automaton.Automaton[T], lift func(T) *syntax.Regexp) *syntax.Regexp {
	if len(d.Accept) == 0 {
		return noMatch()
	}

	counter := d.NextCounter()

	g := automaton.New[*syntax.Regexp]()
	for _, l := range d.Links {
		g.Link(l.From, l.To, lift(l.Symbol))
	}

	start := counter.Next()
	end := counter.Next()

	for _, s := range sortedStates(d.Initial) {
		g.Link(start, s, emptyMatch())
	}
	for _, f := range sortedStates(d.Accept) {
		g.Link(f, end, emptyMatch())
	}

	mergeSiblingEdges(g)

	middle := g.SortedStates()
	middle = slices.DeleteFunc(middle, func(s automaton.State) bool {
		return s == start || s == end
	})

	for _, rip := range middle {
		eliminate(g, rip)
	}

	mergeSiblingEdges(g)

	switch len(g.Links) {
	case 0:
		// Accept states were unreachable from the initial state.
		return noMatch()
	case 1:
		return g.Links[0].Symbol
	default:
		panic(fmt.Sprintf("regen: %d links remain after state elimination, want 1", len(g.Links)))
	}
}

// eliminate removes state rip from the graph, bridging every predecessor
// to every successor with in·loop*·out.
func eliminate(g *automaton.Automaton[*syntax.Regexp], rip automaton.State) {
	var loopSyms []*syntax.Regexp
	for _, l := range g.LinksFromTo(rip, rip) {
		loopSyms = append(loopSyms, l.Symbol)
	}

	var selfLoop *syntax.Regexp
	switch res := zom.Classify(loopSyms, eqHir); res.Kind {
	case zom.Many:
		selfLoop = star(alternation(res.Items))
	case zom.One:
		selfLoop = star(res.Item)
	}

	incoming := make(map[automaton.State][]*syntax.Regexp)
	for _, l := range g.LinksTo(rip) {
		if l.From != rip {
			incoming[l.From] = append(incoming[l.From], l.Symbol)
		}
	}

	outgoing := make(map[automaton.State][]*syntax.Regexp)
	for _, l := range g.LinksFrom(rip) {
		if l.To != rip {
			outgoing[l.To] = append(outgoing[l.To], l.Symbol)
		}
	}

	g.RemoveLinksAny(rip)

	for _, from := range sortedKeys(incoming) {
		in := alternation(incoming[from])
		for _, to := range sortedKeys(outgoing) {
			out := alternation(outgoing[to])

			items := []*syntax.Regexp{in, out}
			if selfLoop != nil {
				items = []*syntax.Regexp{in, selfLoop, out}
			}

			g.Link(from, to, concat(items))
		}
	}

	mergeSiblingEdges(g)
}

// mergeSiblingEdges collapses parallel edges between every ordered state
// pair into a single edge labeled with their alternation.
func mergeSiblingEdges(g *automaton.Automaton[*syntax.Regexp]) {
	states := g.SortedStates()

	for _, from := range states {
		for _, to := range states {
			if from == to {
				continue
			}

			var syms []*syntax.Regexp
			for _, l := range g.LinksFromTo(from, to) {
				syms = append(syms, l.Symbol)
			}

			res := zom.Classify(syms, eqHir)
			if res.Kind == zom.Zero {
				continue
			}

			g.RemoveLinks(from, to)

			switch res.Kind {
			case zom.Many:
				g.Link(from, to, alternation(res.Items))
			case zom.One:
				g.Link(from, to, res.Item)
			}
		}
	}
}

func sortedStates(set map[automaton.State]bool) []automaton.State {
	out := make([]automaton.State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func sortedKeys[V any](m map[automaton.State]V) []automaton.State {
	out := make([]automaton.State, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
