package grammar

import "strings"

// Tree is a parse tree node. Terminal nodes carry the surface token in
// Label and have no children.
type Tree struct {
	Label    string
	Terminal bool
	Children []*Tree
}

// Leaf returns a terminal node for a surface token.
func Leaf(tok string) *Tree {
	return &Tree{Label: tok, Terminal: true}
}

// Leaves returns the surface tokens of the tree in order.
func (t *Tree) Leaves() []string {
	if t.Terminal {
		return []string{t.Label}
	}
	var out []string
	for _, c := range t.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Production renders this node's rule in the grammar text format, e.g.
// "NP -> DET JJ NN" or "DET -> 'the'". Terminal nodes have no production.
func (t *Tree) Production() string {
	if t.Terminal || len(t.Children) == 0 {
		return ""
	}
	parts := make([]string, len(t.Children))
	for i, c := range t.Children {
		if c.Terminal {
			parts[i] = "'" + c.Label + "'"
		} else {
			parts[i] = c.Label
		}
	}
	return t.Label + " -> " + strings.Join(parts, " ")
}

// Productions returns the derivation: every production of the tree in
// pre-order. This is what the debug trace shows.
func (t *Tree) Productions() []string {
	if t.Terminal {
		return nil
	}
	out := []string{t.Production()}
	for _, c := range t.Children {
		out = append(out, c.Productions()...)
	}
	return out
}

// String renders the tree in bracketed form: (S (NP (PRP I)) …).
func (t *Tree) String() string {
	if t.Terminal {
		return t.Label
	}
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(t.Label)
	for _, c := range t.Children {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}
