package grammar

import (
	"errors"
	"fmt"
)

// ErrNoParse is returned when no derivation covers the whole sentence.
var ErrNoParse = errors.New("no parse covers the sentence")

// ParseSentence parses tokens with a memoized top-down parser and returns
// the first derivation that covers every token, trying alternatives in the
// order they appear in the grammar. Parse has already rejected left
// recursion, so the descent terminates.
func (g *Grammar) ParseSentence(tokens []string) (*Tree, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty sentence", ErrNoParse)
	}
	p := &parser{
		g:      g,
		tokens: tokens,
		memo:   make(map[memoKey][]parseResult),
	}
	for _, r := range p.parseSym(g.Start, 0) {
		if r.end == len(tokens) {
			return r.node, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrNoParse, tokens)
}

type memoKey struct {
	sym string
	pos int
}

type parseResult struct {
	end  int
	node *Tree
}

type seqResult struct {
	end      int
	children []*Tree
}

type parser struct {
	g      *Grammar
	tokens []string
	memo   map[memoKey][]parseResult
}

// parseSym returns every parse of sym starting at pos, ordered by the
// grammar's alternative order.
func (p *parser) parseSym(sym string, pos int) []parseResult {
	key := memoKey{sym, pos}
	if cached, ok := p.memo[key]; ok {
		return cached
	}

	var out []parseResult
	for _, prod := range p.g.prods[sym] {
		for _, seq := range p.parseSeq(prod.Rhs, pos) {
			out = append(out, parseResult{
				end:  seq.end,
				node: &Tree{Label: sym, Children: seq.children},
			})
		}
	}
	p.memo[key] = out
	return out
}

// parseSeq matches a right-hand side starting at pos, producing one result
// per way of consuming the input.
func (p *parser) parseSeq(rhs []Sym, pos int) []seqResult {
	if len(rhs) == 0 {
		return []seqResult{{end: pos}}
	}

	head, rest := rhs[0], rhs[1:]

	var heads []parseResult
	if head.Terminal {
		if pos < len(p.tokens) && p.tokens[pos] == head.Value {
			heads = []parseResult{{end: pos + 1, node: Leaf(head.Value)}}
		}
	} else {
		heads = p.parseSym(head.Value, pos)
	}

	var out []seqResult
	for _, h := range heads {
		for _, tail := range p.parseSeq(rest, h.end) {
			children := make([]*Tree, 0, 1+len(tail.children))
			children = append(children, h.node)
			children = append(children, tail.children...)
			out = append(out, seqResult{end: tail.end, children: children})
		}
	}
	return out
}
