package translator

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/akanlabs/nkyerease/internal/dictionary"
	"github.com/akanlabs/nkyerease/internal/grammar"
	"github.com/akanlabs/nkyerease/internal/postprocess"
	"github.com/akanlabs/nkyerease/internal/sentence"
	"github.com/akanlabs/nkyerease/internal/transfer"
)

//go:embed english.cfg
var defaultGrammar string

//go:embed english_twi.rules
var defaultRules string

// GrammarService is the in-process translation engine: it parses the
// English sentence with a context-free grammar, rewrites the tree with the
// transfer rules, and realizes the Twi surface form from the dictionary.
type GrammarService struct {
	grammar *grammar.Grammar
	rules   transfer.RuleSet
	dict    *dictionary.Dictionary
}

// NewGrammarService builds an engine over an already-parsed grammar, rule
// set, and dictionary.
func NewGrammarService(g *grammar.Grammar, rules transfer.RuleSet, dict *dictionary.Dictionary) *GrammarService {
	return &GrammarService{grammar: g, rules: rules, dict: dict}
}

// DefaultGrammarService builds the engine from the grammar and transfer
// rules embedded in the binary.
func DefaultGrammarService(dict *dictionary.Dictionary) (*GrammarService, error) {
	g, rules, err := DefaultGrammarData()
	if err != nil {
		return nil, err
	}
	return NewGrammarService(g, rules, dict), nil
}

// DefaultGrammarData returns the embedded grammar and transfer rules, for
// callers replacing one of the two with a file override.
func DefaultGrammarData() (*grammar.Grammar, transfer.RuleSet, error) {
	g, err := grammar.Parse(defaultGrammar)
	if err != nil {
		return nil, nil, fmt.Errorf("embedded grammar: %w", err)
	}
	rules, err := transfer.ParseRules(defaultRules)
	if err != nil {
		return nil, nil, fmt.Errorf("embedded rules: %w", err)
	}
	return g, rules, nil
}

func (s *GrammarService) Name() string {
	return "grammar"
}

// Translate maps one validated English sentence to Twi. The phrase table is
// consulted first and returns its recorded equivalent verbatim; otherwise
// the sentence is parsed, transferred, and realized. The derivation trace
// is attached when req.Debug is set.
func (s *GrammarService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	text := strings.TrimSpace(req.Text)
	var trace []string

	if twi, ok := s.dict.Phrase(text); ok {
		result.TranslatedText = twi
		result.Confidence = 1.0
		if req.Debug {
			result.Trace = []string{fmt.Sprintf("phrase table: %q -> %q", text, twi)}
		}
		return result, nil
	}

	tokens := strings.Fields(sentence.Strip(text))
	if len(tokens) == 0 {
		result.Error = "empty sentence"
		return result, fmt.Errorf("empty sentence")
	}

	g := s.grammar.ExtendForSentence(sentence.Strip(text))
	tree, err := g.ParseSentence(tokens)
	if err != nil {
		result.Error = fmt.Sprintf("sentence does not match the grammar: %v", err)
		return result, fmt.Errorf("grammar engine: %w", err)
	}
	for _, p := range tree.Productions() {
		trace = append(trace, "parse: "+p)
	}

	tree, applied := s.rules.Apply(tree)
	for _, r := range applied {
		trace = append(trace, "transfer: "+r)
	}

	leaves := tree.Leaves()
	realized := make([]string, 0, len(leaves))
	covered := 0
	for _, leaf := range leaves {
		switch twi, ok := s.dict.Word(leaf); {
		case ok:
			realized = append(realized, twi)
			covered++
			trace = append(trace, fmt.Sprintf("lexicon: %s -> %s", leaf, twi))
		case isName(leaf):
			realized = append(realized, leaf)
			covered++
			trace = append(trace, fmt.Sprintf("lexicon: %s (proper name, kept)", leaf))
		default:
			realized = append(realized, leaf)
			trace = append(trace, fmt.Sprintf("lexicon: %s (no entry, kept)", leaf))
		}
	}

	result.TranslatedText = postprocess.Surface(realized)
	if len(leaves) > 0 {
		result.Confidence = float64(covered) / float64(len(leaves))
	}
	if req.Debug {
		result.Trace = trace
	}
	return result, nil
}

func (s *GrammarService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *GrammarService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "ak"}, nil
}

func isName(tok string) bool {
	for _, r := range tok {
		return unicode.IsUpper(r)
	}
	return false
}
