// Package detector wraps the lingua-go language detector. Twi itself is not
// among lingua's languages, so detection is used negatively: input should
// look English, and a fallback service's output should not.
package detector

import (
	lingua "github.com/pemistahl/lingua-go"
)

// candidates keeps the model load small: English plus languages likely to
// be confused with form input or with Twi output.
var candidates = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Swahili,
	lingua.Yoruba,
	lingua.Ganda,
	lingua.Shona,
	lingua.Zulu,
}

// Detector is expensive to build; reuse the instance.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(candidates...).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return lang.IsoCode639_1().String(), true
}

// IsEnglish reports whether text is detected as English. Undetectable text
// is not English.
func (d *Detector) IsEnglish(text string) bool {
	lang, ok := d.Detect(text)
	return ok && lang == lingua.English
}
