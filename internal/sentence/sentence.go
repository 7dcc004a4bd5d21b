// Package sentence segments raw input on terminal punctuation. The
// validator uses it to enforce the one-sentence rule and the batch command
// uses it to reject multi-sentence cells.
package sentence

import (
	"regexp"
	"strings"
)

// terminalRe matches a run of sentence-terminal punctuation.
var terminalRe = regexp.MustCompile(`[.!?]+`)

// Split returns the non-empty sentence segments of text, in order. A
// trailing terminal mark does not create an empty segment: "Hello." is one
// sentence, "Hello. Bye." is two.
func Split(text string) []string {
	var out []string
	for _, seg := range terminalRe.Split(text, -1) {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// Count returns the number of sentence segments in text.
func Count(text string) int {
	return len(Split(text))
}

// Strip removes a trailing run of terminal punctuation and surrounding
// whitespace, leaving the bare sentence for tokenization.
func Strip(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, ".!?")
	return strings.TrimSpace(text)
}
