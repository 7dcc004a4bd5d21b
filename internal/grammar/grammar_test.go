package grammar

import (
	"strings"
	"testing"
)

const testGrammar = `
# comment
S     -> NP VP
NP    -> PRP | JJ NN | PROPN
VP    -> V NP | V
PRP   -> 'I'
V     -> 'love' | 'met'
JJ    -> 'good'
NN    -> 'dogs'
PROPN -> ANY_NAME
`

func TestParse(t *testing.T) {
	g, err := Parse(testGrammar)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.Start != "S" {
		t.Errorf("start symbol = %q, want S", g.Start)
	}
	if got := len(g.Productions("NP")); got != 3 {
		t.Errorf("NP has %d alternatives, want 3", got)
	}
	if got := len(g.Productions("UNKNOWN")); got != 0 {
		t.Errorf("unknown nonterminal has %d productions, want 0", got)
	}
	if got := g.Productions("S")[0].String(); got != "S -> NP VP" {
		t.Errorf("production string = %q", got)
	}
	if got := g.Productions("JJ")[0].String(); got != "JJ -> 'good'" {
		t.Errorf("terminal production string = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing arrow", "NP DET", "missing '->'"},
		{"empty lhs", "-> 'a'", "invalid left-hand side"},
		{"empty alternative", "NP -> | DET", "empty alternative"},
		{"malformed terminal", "NP -> 'x", "malformed terminal"},
		{"no productions", "# only a comment", "no productions"},
		{"left recursion", "A -> A 'x'\n", "left-recursive"},
		{"indirect left recursion", "A -> B 'x'\nB -> A 'y'", "left-recursive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.src)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestExtendForSentence(t *testing.T) {
	g, err := Parse(testGrammar)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ext := g.ExtendForSentence("Kofi ne Kwame visited Accra")

	prods := ext.Productions("PROPN")
	if len(prods) != 4 {
		t.Fatalf("PROPN has %d alternatives, want 4: %v", len(prods), prods)
	}
	wantSingles := []string{"Accra", "Kofi", "Kwame"}
	for i, w := range wantSingles {
		p := prods[i]
		if len(p.Rhs) != 1 || !p.Rhs[0].Terminal || p.Rhs[0].Value != w {
			t.Errorf("PROPN alternative %d = %v, want terminal %q", i, p, w)
		}
	}
	if got := prods[3].String(); got != "PROPN -> MWP_0" {
		t.Errorf("multi-word alternative = %q", got)
	}
	mwp := ext.Productions("MWP_0")
	if len(mwp) != 1 || mwp[0].String() != "MWP_0 -> 'Kofi' 'ne' 'Kwame'" {
		t.Errorf("MWP_0 = %v", mwp)
	}

	// The base grammar keeps its placeholder untouched.
	base := g.Productions("PROPN")
	if len(base) != 1 || base[0].Rhs[0].Value != NamePlaceholder {
		t.Errorf("base PROPN changed: %v", base)
	}
}

func TestExtendForSentenceNoNames(t *testing.T) {
	g, err := Parse(testGrammar)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ext := g.ExtendForSentence("i love good dogs")
	if prods := ext.Productions("PROPN"); len(prods) != 0 {
		t.Errorf("PROPN has %d alternatives for a nameless sentence, want 0", len(prods))
	}
}
