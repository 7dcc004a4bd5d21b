// Package dictionary loads the English↔Twi lookup table from CSV. The
// table has columns english,twi,type where type is "word" (default) or
// "phrase"; phrases match whole sentences, words match single tokens. The
// dictionary is loaded once at startup and immutable afterwards.
package dictionary

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/akanlabs/nkyerease/internal/sentence"
)

//go:embed dict.csv
var defaultCSV []byte

// Entry is one dictionary row, exposed for listings.
type Entry struct {
	English string
	Twi     string
	Kind    string // "word" or "phrase"
}

type Dictionary struct {
	words   map[string]string
	phrases map[string]string
}

// Default returns the dictionary embedded in the binary.
func Default() (*Dictionary, error) {
	return parse(bytes.NewReader(defaultCSV))
}

// Load reads a dictionary CSV from path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()
	d, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func parse(r io.Reader) (*Dictionary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	engCol, twiCol, typeCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "english":
			engCol = i
		case "twi":
			twiCol = i
		case "type":
			typeCol = i
		}
	}
	if engCol < 0 || twiCol < 0 {
		return nil, fmt.Errorf("header must contain english and twi columns, got %v", header)
	}

	d := &Dictionary{
		words:   make(map[string]string),
		phrases: make(map[string]string),
	}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if engCol >= len(row) || twiCol >= len(row) {
			continue
		}
		eng := strings.ToLower(strings.TrimSpace(row[engCol]))
		twi := strings.TrimSpace(row[twiCol])
		if eng == "" || twi == "" {
			continue
		}
		kind := "word"
		if typeCol >= 0 && typeCol < len(row) {
			if k := strings.ToLower(strings.TrimSpace(row[typeCol])); k != "" {
				kind = k
			}
		}

		// First occurrence wins; raw rows need not be unique.
		switch kind {
		case "phrase":
			if _, dup := d.phrases[eng]; !dup {
				d.phrases[eng] = twi
			}
		default:
			if _, dup := d.words[eng]; !dup {
				d.words[eng] = twi
			}
		}
	}
	return d, nil
}

// Word looks up the Twi equivalent of a single English token,
// case-insensitively.
func (d *Dictionary) Word(s string) (string, bool) {
	twi, ok := d.words[strings.ToLower(strings.TrimSpace(s))]
	return twi, ok
}

// Phrase looks up a whole sentence in the phrase table, ignoring case and
// trailing terminal punctuation. Hits return the recorded Twi verbatim.
func (d *Dictionary) Phrase(sent string) (string, bool) {
	key := strings.ToLower(sentence.Strip(sent))
	key = strings.Join(strings.Fields(key), " ")
	twi, ok := d.phrases[key]
	return twi, ok
}

// Len returns the total number of entries.
func (d *Dictionary) Len() int {
	return len(d.words) + len(d.phrases)
}

// Entries returns every entry sorted by kind (words first) then English key.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, 0, d.Len())
	for eng, twi := range d.words {
		out = append(out, Entry{English: eng, Twi: twi, Kind: "word"})
	}
	for eng, twi := range d.phrases {
		out = append(out, Entry{English: eng, Twi: twi, Kind: "phrase"})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == "word"
		}
		return out[i].English < out[j].English
	})
	return out
}
