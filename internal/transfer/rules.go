// Package transfer rewrites English parse trees into Twi-ordered trees.
// A rule maps a source production onto a target production over the same
// constituents, expressing word-order changes and constituent drops:
//
//	QP -> WP AUX PRP => QP -> PRP WP     reorder, drop AUX
//	VP -> AUX V PP   => VP -> V PP       drop the auxiliary
//	DET -> 'the'     => DET -> ''        erase the constituent
package transfer

import (
	"fmt"
	"strings"

	"github.com/akanlabs/nkyerease/internal/grammar"
)

// Rule is one source-to-target production mapping. An empty Tgt erases the
// constituent entirely.
type Rule struct {
	Src string
	Tgt []grammar.Sym
	str string
}

// String renders the rule as written in the rules file.
func (r Rule) String() string { return r.str }

// RuleSet maps a source production (in grammar text form) to its rule.
type RuleSet map[string]Rule

// ParseRules reads a rule file: one "SRC => TGT" mapping per line, blank
// lines and #-comments ignored. The target left-hand side must match the
// source's, and every target symbol must occur on the source side.
func ParseRules(src string) (RuleSet, error) {
	rs := make(RuleSet)

	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		srcSide, tgtSide, ok := strings.Cut(line, "=>")
		if !ok {
			return nil, fmt.Errorf("line %d: missing '=>': %q", i+1, line)
		}

		srcProd, err := parseProduction(srcSide)
		if err != nil {
			return nil, fmt.Errorf("line %d: source side: %w", i+1, err)
		}
		tgtProd, err := parseProduction(tgtSide)
		if err != nil {
			return nil, fmt.Errorf("line %d: target side: %w", i+1, err)
		}
		if tgtProd.Lhs != srcProd.Lhs {
			return nil, fmt.Errorf("line %d: target rewrites %s, source is %s", i+1, tgtProd.Lhs, srcProd.Lhs)
		}

		tgt := tgtProd.Rhs
		if len(tgt) == 1 && tgt[0].Terminal && tgt[0].Value == "" {
			tgt = nil
		}
		avail := symbolCounts(srcProd.Rhs)
		for _, s := range tgt {
			if avail[s.String()] == 0 {
				return nil, fmt.Errorf("line %d: target symbol %s not on source side", i+1, s)
			}
			avail[s.String()]--
		}

		key := srcProd.String()
		if _, dup := rs[key]; dup {
			return nil, fmt.Errorf("line %d: duplicate rule for %q", i+1, key)
		}
		rs[key] = Rule{Src: key, Tgt: tgt, str: key + " => " + strings.TrimSpace(tgtSide)}
	}
	return rs, nil
}

// parseProduction parses "LHS -> SYM SYM" reusing the grammar line parser.
// The '' empty terminal is only meaningful on target sides.
func parseProduction(s string) (grammar.Production, error) {
	s = strings.TrimSpace(s)
	lhs, rhs, ok := strings.Cut(s, "->")
	if !ok {
		return grammar.Production{}, fmt.Errorf("missing '->': %q", s)
	}
	lhs = strings.TrimSpace(lhs)
	if lhs == "" {
		return grammar.Production{}, fmt.Errorf("empty left-hand side: %q", s)
	}

	var syms []grammar.Sym
	for _, tok := range strings.Fields(rhs) {
		if tok == "''" {
			syms = append(syms, grammar.Sym{Value: "", Terminal: true})
			continue
		}
		if strings.HasPrefix(tok, "'") {
			if len(tok) < 3 || !strings.HasSuffix(tok, "'") {
				return grammar.Production{}, fmt.Errorf("malformed terminal %q", tok)
			}
			syms = append(syms, grammar.Sym{Value: tok[1 : len(tok)-1], Terminal: true})
			continue
		}
		syms = append(syms, grammar.Sym{Value: tok})
	}
	if len(syms) == 0 {
		return grammar.Production{}, fmt.Errorf("empty right-hand side: %q", s)
	}
	return grammar.Production{Lhs: lhs, Rhs: syms}, nil
}

func symbolCounts(rhs []grammar.Sym) map[string]int {
	counts := make(map[string]int, len(rhs))
	for _, s := range rhs {
		counts[s.String()]++
	}
	return counts
}

// Apply rewrites the tree top-down and returns the transformed tree along
// with the rules applied, in application order. The input tree is not
// modified.
func (rs RuleSet) Apply(t *grammar.Tree) (*grammar.Tree, []string) {
	var applied []string
	out := rs.rewrite(t, &applied)
	return out, applied
}

func (rs RuleSet) rewrite(t *grammar.Tree, applied *[]string) *grammar.Tree {
	if t.Terminal {
		return &grammar.Tree{Label: t.Label, Terminal: true}
	}

	children := t.Children
	if rule, ok := rs[t.Production()]; ok {
		*applied = append(*applied, rule.str)
		if len(rule.Tgt) == 0 {
			return &grammar.Tree{Label: t.Label}
		}
		children = reorder(t.Children, rule.Tgt)
	}

	node := &grammar.Tree{Label: t.Label, Children: make([]*grammar.Tree, len(children))}
	for i, c := range children {
		node.Children[i] = rs.rewrite(c, applied)
	}
	return node
}

// reorder selects source children in target order. Repeated symbols are
// matched by occurrence: the nth mention of a symbol on the target side
// takes the nth source child with that symbol.
func reorder(children []*grammar.Tree, tgt []grammar.Sym) []*grammar.Tree {
	used := make([]bool, len(children))
	out := make([]*grammar.Tree, 0, len(tgt))
	for _, sym := range tgt {
		for i, c := range children {
			if used[i] || childSym(c) != sym.String() {
				continue
			}
			used[i] = true
			out = append(out, c)
			break
		}
	}
	return out
}

func childSym(c *grammar.Tree) string {
	if c.Terminal {
		return "'" + c.Label + "'"
	}
	return c.Label
}
