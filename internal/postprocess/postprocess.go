// Package postprocess finishes translation output. Surface assembles the
// engine's realized tokens into a presentable sentence; Clean strips common
// LLM artifacts from refiner output before it is used downstream.
package postprocess

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Surface joins realized tokens into the final sentence: tokens erased by
// the transfer rules are dropped, whitespace is collapsed, and the first
// letter is capitalized ("me dɔ papa kraman" → "Me dɔ papa kraman").
func Surface(tokens []string) string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			kept = append(kept, tok)
		}
	}
	return Capitalize(strings.Join(kept, " "))
}

// Capitalize upper-cases the first letter of s, leaving the rest untouched.
// Works on non-ASCII initials such as ɛ → Ɛ.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// --- LLM artifact cleanup (refiner output) ---

// thinkingBlockRe matches complete <thinking>…</thinking> style blocks.
// Each tag variant is listed explicitly because Go's RE2 engine does not
// support backreferences.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>`,
)

// truncatedThinkingRe matches an opened thinking tag whose closing tag is
// missing (the model was cut off mid-thought).
var truncatedThinkingRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>).*$`,
)

// echoPatterns match introductory phrases that models sometimes prepend
// even when instructed not to. Anchored to the start of the string.
var echoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the)? (?:polished |refined |translated )?(?:translation|sentence|text)\s*:`),
	regexp.MustCompile(`(?i)^(?:the )?(?:polished |refined )?(?:translation|translated sentence|translated text)\s*:`),
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.]? here(?:'s| is)(?: the)? (?:polished |refined )?(?:translation|sentence|text)\s*:`),
}

// Clean removes LLM artifacts from text: thinking blocks, instruction
// echoes, and quote wrapping. The result is trimmed.
func Clean(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	for _, re := range echoPatterns {
		text = strings.TrimSpace(re.ReplaceAllString(text, ""))
	}

	if len(text) >= 2 {
		if (text[0] == '"' && text[len(text)-1] == '"') ||
			(text[0] == '\'' && text[len(text)-1] == '\'') {
			text = strings.TrimSpace(text[1 : len(text)-1])
		}
	}
	return text
}
