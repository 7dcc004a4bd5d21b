package grammar

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) *Grammar {
	t.Helper()
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

func TestParseSentence(t *testing.T) {
	g := mustParse(t, testGrammar)

	tree, err := g.ParseSentence([]string{"I", "love", "good", "dogs"})
	if err != nil {
		t.Fatalf("ParseSentence failed: %v", err)
	}
	want := "(S (NP (PRP I)) (VP (V love) (NP (JJ good) (NN dogs))))"
	if got := tree.String(); got != want {
		t.Errorf("tree = %s, want %s", got, want)
	}
	if got := tree.Leaves(); !reflect.DeepEqual(got, []string{"I", "love", "good", "dogs"}) {
		t.Errorf("leaves = %v", got)
	}
}

func TestParseSentenceWithNames(t *testing.T) {
	g := mustParse(t, testGrammar).ExtendForSentence("Kofi ne Kwame met Ama")

	tree, err := g.ParseSentence([]string{"Kofi", "ne", "Kwame", "met", "Ama"})
	if err != nil {
		t.Fatalf("ParseSentence failed: %v", err)
	}
	want := "(S (NP (PROPN (MWP_0 Kofi ne Kwame))) (VP (V met) (NP (PROPN Ama))))"
	if got := tree.String(); got != want {
		t.Errorf("tree = %s, want %s", got, want)
	}
}

func TestParseSentenceNoParse(t *testing.T) {
	g := mustParse(t, testGrammar)

	for _, tokens := range [][]string{
		{"dogs", "love", "I"},
		{"unknown", "words"},
		{"I"},
		nil,
	} {
		if _, err := g.ParseSentence(tokens); !errors.Is(err, ErrNoParse) {
			t.Errorf("ParseSentence(%v) err = %v, want ErrNoParse", tokens, err)
		}
	}

	// A bare-V VP covers the two-token sentence.
	if _, err := g.ParseSentence([]string{"I", "met"}); err != nil {
		t.Errorf("ParseSentence(I met) failed: %v", err)
	}
}

func TestTreeProductions(t *testing.T) {
	g := mustParse(t, testGrammar)

	tree, err := g.ParseSentence([]string{"I", "love", "good", "dogs"})
	if err != nil {
		t.Fatalf("ParseSentence failed: %v", err)
	}

	prods := tree.Productions()
	want := []string{
		"S -> NP VP",
		"NP -> PRP",
		"PRP -> 'I'",
		"VP -> V NP",
		"V -> 'love'",
		"NP -> JJ NN",
		"JJ -> 'good'",
		"NN -> 'dogs'",
	}
	if !reflect.DeepEqual(prods, want) {
		t.Errorf("productions = %v, want %v", prods, want)
	}
	if got := tree.Production(); got != "S -> NP VP" {
		t.Errorf("root production = %q", got)
	}
	if got := Leaf("dogs").Production(); got != "" {
		t.Errorf("leaf production = %q, want empty", got)
	}
}

func TestParseSentenceAmbiguityOrder(t *testing.T) {
	// The first alternative in grammar order wins when several cover the
	// input.
	g := mustParse(t, `
S -> A | B
A -> 'x'
B -> 'x'
`)
	tree, err := g.ParseSentence([]string{"x"})
	if err != nil {
		t.Fatalf("ParseSentence failed: %v", err)
	}
	if !strings.Contains(tree.String(), "(A x)") {
		t.Errorf("tree = %s, want the A derivation", tree)
	}
}
