// Package grammar implements the context-free grammar machinery behind the
// English→Twi engine: a plain-text production format, per-sentence grammar
// extension for proper names, and a memoized top-down parser.
//
// The grammar format is one nonterminal per line, alternatives separated by
// a pipe, terminals in single quotes:
//
//	NP -> DET JJ NN | PRP | PROPN
//	DET -> 'the' | 'a'
//
// The first left-hand side in the file is the start symbol.
package grammar

import (
	"fmt"
	"strings"

	"github.com/akanlabs/nkyerease/internal/names"
)

// NamePlaceholder marks the production whose alternatives are generated per
// sentence from the proper names found in it. A grammar line such as
// "PROPN -> ANY_NAME" is replaced by ExtendForSentence.
const NamePlaceholder = "ANY_NAME"

// Sym is one right-hand-side element of a production.
type Sym struct {
	Value    string
	Terminal bool
}

func (s Sym) String() string {
	if s.Terminal {
		return "'" + s.Value + "'"
	}
	return s.Value
}

// Production is a single context-free rule LHS -> RHS.
type Production struct {
	Lhs string
	Rhs []Sym
}

// String renders the production in the grammar's text format,
// e.g. "NP -> DET JJ NN" or "DET -> 'the'".
func (p Production) String() string {
	parts := make([]string, len(p.Rhs))
	for i, s := range p.Rhs {
		parts[i] = s.String()
	}
	return p.Lhs + " -> " + strings.Join(parts, " ")
}

// Grammar is an immutable set of productions with a start symbol.
// Build one with Parse; per-sentence variants come from ExtendForSentence.
type Grammar struct {
	Start string
	prods map[string][]Production
}

// Parse reads a grammar from its text form. It fails on malformed lines and
// on left-recursive grammars, which the top-down parser cannot terminate on.
func Parse(src string) (*Grammar, error) {
	g := &Grammar{prods: make(map[string][]Production)}

	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lhs, rhs, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("line %d: missing '->': %q", i+1, line)
		}
		lhs = strings.TrimSpace(lhs)
		if lhs == "" || strings.ContainsAny(lhs, " '") {
			return nil, fmt.Errorf("line %d: invalid left-hand side %q", i+1, lhs)
		}
		if g.Start == "" {
			g.Start = lhs
		}

		for _, alt := range strings.Split(rhs, "|") {
			syms, err := parseSyms(alt)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			if len(syms) == 0 {
				return nil, fmt.Errorf("line %d: empty alternative", i+1)
			}
			g.prods[lhs] = append(g.prods[lhs], Production{Lhs: lhs, Rhs: syms})
		}
	}

	if g.Start == "" {
		return nil, fmt.Errorf("grammar has no productions")
	}
	if sym, ok := g.leftRecursive(); ok {
		return nil, fmt.Errorf("grammar is left-recursive through %s", sym)
	}
	return g, nil
}

func parseSyms(alt string) ([]Sym, error) {
	var syms []Sym
	for _, tok := range strings.Fields(alt) {
		if strings.HasPrefix(tok, "'") {
			if len(tok) < 3 || !strings.HasSuffix(tok, "'") {
				return nil, fmt.Errorf("malformed terminal %q", tok)
			}
			syms = append(syms, Sym{Value: tok[1 : len(tok)-1], Terminal: true})
			continue
		}
		syms = append(syms, Sym{Value: tok})
	}
	return syms, nil
}

// Productions returns the alternatives for a nonterminal, in the order they
// were written. Unknown nonterminals have none.
func (g *Grammar) Productions(lhs string) []Production {
	return g.prods[lhs]
}

// ExtendForSentence clones the grammar, replacing NamePlaceholder
// alternatives with productions for the capitalized words of sent and MWP_n
// productions for its multi-word names ("Kofi ne Kwame"). When the sentence
// contains no proper names, the placeholder nonterminal is left without
// productions and simply never matches.
func (g *Grammar) ExtendForSentence(sent string) *Grammar {
	ng := &Grammar{Start: g.Start, prods: make(map[string][]Production, len(g.prods))}

	// The placeholder's left-hand side anchors the generated productions.
	anchor := ""
	for lhs, prods := range g.prods {
		kept := prods[:0:0]
		for _, p := range prods {
			if len(p.Rhs) == 1 && !p.Rhs[0].Terminal && p.Rhs[0].Value == NamePlaceholder {
				anchor = lhs
				continue
			}
			kept = append(kept, p)
		}
		ng.prods[lhs] = kept
	}
	if anchor == "" {
		return ng
	}

	for _, w := range names.Single(sent) {
		ng.prods[anchor] = append(ng.prods[anchor], Production{
			Lhs: anchor,
			Rhs: []Sym{{Value: w, Terminal: true}},
		})
	}
	for j, name := range names.MultiWord(sent) {
		mwp := fmt.Sprintf("MWP_%d", j)
		ng.prods[anchor] = append(ng.prods[anchor], Production{
			Lhs: anchor,
			Rhs: []Sym{{Value: mwp}},
		})
		rhs := make([]Sym, len(name))
		for k, w := range name {
			rhs[k] = Sym{Value: w, Terminal: true}
		}
		ng.prods[mwp] = append(ng.prods[mwp], Production{Lhs: mwp, Rhs: rhs})
	}
	return ng
}

// leftRecursive reports whether some nonterminal can derive itself through
// leftmost positions. The grammar has no epsilon productions, so only the
// first right-hand-side symbol matters.
func (g *Grammar) leftRecursive() (string, bool) {
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int)

	var visit func(sym string) bool
	visit = func(sym string) bool {
		switch state[sym] {
		case visiting:
			return true
		case done:
			return false
		}
		state[sym] = visiting
		for _, p := range g.prods[sym] {
			first := p.Rhs[0]
			if !first.Terminal && visit(first.Value) {
				return true
			}
		}
		state[sym] = done
		return false
	}

	for lhs := range g.prods {
		if visit(lhs) {
			return lhs, true
		}
	}
	return "", false
}
