// Package validator checks form and CLI input before it reaches the
// translation engine.
package validator

import (
	"strings"

	"github.com/akanlabs/nkyerease/internal/detector"
	"github.com/akanlabs/nkyerease/internal/sentence"
)

// minDetectionLength is the minimum rune count required to attempt language
// detection. Shorter inputs produce unreliable results and skip the check.
const minDetectionLength = 20

// ValidationError describes input rejected before translation. It is
// surfaced to the user as an inline message and never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validate accepts exactly one sentence. Empty or whitespace-only input and
// input with more than one sentence segment are rejected with a
// *ValidationError; the text is otherwise passed through unchanged.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Reason: "please enter a sentence"}
	}
	if n := sentence.Count(text); n > 1 {
		return &ValidationError{Reason: "please enter only one sentence at a time"}
	}
	return nil
}

// Validator adds an advisory source-language check on top of Validate.
// The underlying language detector is expensive to build; reuse the
// instance.
type Validator struct {
	det *detector.Detector
}

// New creates a Validator backed by the lingua-go language detector.
func New() *Validator {
	return &Validator{det: detector.New()}
}

// Validate applies the package-level sentence checks.
func (v *Validator) Validate(text string) error {
	return Validate(text)
}

// CheckSource returns a warning when text does not look like English, and
// "" otherwise. It never rejects: short texts and ambiguous detections pass
// silently, and the engine itself decides whether the sentence parses.
func (v *Validator) CheckSource(text string) string {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minDetectionLength {
		return ""
	}
	if iso, ok := v.det.DetectISO(text); ok && iso != "EN" {
		return "input does not look like English (detected " + iso + ")"
	}
	return ""
}
