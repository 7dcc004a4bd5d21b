// Package names extracts proper names from an English sentence so the
// grammar can treat them as pass-through vocabulary. Multi-word names keep
// common connectors: "Kofi ne Kwame", "Bank of Ghana".
package names

import (
	"regexp"
	"sort"
	"strings"
)

// multiWordRe matches a capitalized word optionally followed by further
// capitalized words or name connectors (ne/and/of/de/bin).
var multiWordRe = regexp.MustCompile(`\b[A-Z][a-z]*(?:\s+(?:ne|and|of|de|bin|[A-Z][a-z]*))*\b`)

// notNames are capitalized tokens that are never proper names.
var notNames = map[string]bool{
	"I": true, "The": true, "A": true, "An": true,
}

// Single returns the sorted, deduplicated capitalized words of sent that can
// act as single-token proper names.
func Single(sent string) []string {
	seen := make(map[string]bool)
	for _, w := range strings.Fields(sent) {
		if w == "" || notNames[w] {
			continue
		}
		r := rune(w[0])
		if r >= 'A' && r <= 'Z' && !seen[w] {
			seen[w] = true
		}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// MultiWord returns the multi-word proper names of sent as token slices,
// sorted by their joined form. Single-word matches are excluded; Single
// covers those.
func MultiWord(sent string) [][]string {
	seen := make(map[string][]string)
	for _, m := range multiWordRe.FindAllString(sent, -1) {
		toks := strings.Fields(m)
		if len(toks) < 2 {
			continue
		}
		seen[strings.Join(toks, " ")] = toks
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}
