package translator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akanlabs/nkyerease/internal/dictionary"
	"github.com/akanlabs/nkyerease/internal/grammar"
)

func newEngine(t *testing.T) *GrammarService {
	t.Helper()
	dict, err := dictionary.Default()
	if err != nil {
		t.Fatalf("dictionary.Default failed: %v", err)
	}
	svc, err := DefaultGrammarService(dict)
	if err != nil {
		t.Fatalf("DefaultGrammarService failed: %v", err)
	}
	return svc
}

func mustTranslate(t *testing.T, svc *GrammarService, text string, debug bool) *ServiceResult {
	t.Helper()
	res, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: text, Debug: debug})
	if err != nil {
		t.Fatalf("Translate(%q) failed: %v", text, err)
	}
	return res
}

func TestTranslate(t *testing.T) {
	svc := newEngine(t)

	tests := []struct {
		input string
		want  string
	}{
		{"I love good dogs", "Me dɔ papa kraman"},
		{"I love good dogs.", "Me dɔ papa kraman"},
		{"Kofi ne Kwame are going to Accra", "Kofi ne Kwame kɔ Accra"},
		{"I am going to the market", "Me kɔ dwam"},
	}
	for _, tt := range tests {
		res := mustTranslate(t, svc, tt.input, false)
		if res.TranslatedText != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.input, res.TranslatedText, tt.want)
		}
		if res.ServiceName != "grammar" {
			t.Errorf("service name = %q", res.ServiceName)
		}
		if res.Trace != nil {
			t.Errorf("Translate(%q) attached a trace without debug", tt.input)
		}
	}
}

func TestTranslatePhrases(t *testing.T) {
	svc := newEngine(t)

	tests := []struct {
		input string
		want  string
	}{
		{"how are you", "ɛte sɛn"},
		{"How are you?", "ɛte sɛn"},
		{"what is your name", "wo din de sɛn"},
	}
	for _, tt := range tests {
		res := mustTranslate(t, svc, tt.input, false)
		// Phrase hits return the recorded Twi verbatim, uncapitalized.
		if res.TranslatedText != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.input, res.TranslatedText, tt.want)
		}
		if res.Confidence != 1.0 {
			t.Errorf("Translate(%q) confidence = %v, want 1.0", tt.input, res.Confidence)
		}
	}
}

func TestTranslateDeterministic(t *testing.T) {
	svc := newEngine(t)
	first := mustTranslate(t, svc, "Kofi ne Kwame are going to Accra", false)
	second := mustTranslate(t, svc, "Kofi ne Kwame are going to Accra", false)
	if first.TranslatedText != second.TranslatedText {
		t.Errorf("results differ: %q vs %q", first.TranslatedText, second.TranslatedText)
	}
}

func TestTranslateDebugTrace(t *testing.T) {
	svc := newEngine(t)

	res := mustTranslate(t, svc, "Kofi ne Kwame are going to Accra", true)
	if len(res.Trace) == 0 {
		t.Fatal("debug request produced no trace")
	}
	var sawParse, sawTransfer, sawLexicon bool
	for _, line := range res.Trace {
		switch {
		case strings.HasPrefix(line, "parse: "):
			sawParse = true
		case strings.HasPrefix(line, "transfer: "):
			sawTransfer = true
		case strings.HasPrefix(line, "lexicon: "):
			sawLexicon = true
		}
	}
	if !sawParse || !sawTransfer || !sawLexicon {
		t.Errorf("trace missing stages (parse=%v transfer=%v lexicon=%v): %v",
			sawParse, sawTransfer, sawLexicon, res.Trace)
	}

	phrase := mustTranslate(t, svc, "how are you", true)
	if len(phrase.Trace) != 1 || !strings.HasPrefix(phrase.Trace[0], "phrase table:") {
		t.Errorf("phrase trace = %v", phrase.Trace)
	}
}

func TestTranslateNoParse(t *testing.T) {
	svc := newEngine(t)

	_, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text: "colorless green ideas sleep furiously",
	})
	if !errors.Is(err, grammar.ErrNoParse) {
		t.Errorf("err = %v, want ErrNoParse", err)
	}
}

func TestTranslateUnknownWordsKept(t *testing.T) {
	svc := newEngine(t)

	// "Google" has no dictionary entry and passes through untranslated.
	res := mustTranslate(t, svc, "I work at Google", false)
	if !strings.Contains(res.TranslatedText, "Google") {
		t.Errorf("proper name dropped: %q", res.TranslatedText)
	}
	if res.Confidence <= 0 || res.Confidence > 1 {
		t.Errorf("confidence = %v", res.Confidence)
	}
}

func TestDefaultGrammarData(t *testing.T) {
	g, rules, err := DefaultGrammarData()
	if err != nil {
		t.Fatalf("DefaultGrammarData failed: %v", err)
	}
	if g.Start != "S" {
		t.Errorf("start symbol = %q", g.Start)
	}
	if len(rules) == 0 {
		t.Error("no transfer rules loaded")
	}
}
