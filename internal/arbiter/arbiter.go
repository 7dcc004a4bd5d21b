// Package arbiter selects the best result when several services translated
// the same sentence (the --compare path).
package arbiter

import (
	"context"
	"fmt"

	"github.com/akanlabs/nkyerease/internal/detector"
	"github.com/akanlabs/nkyerease/internal/translator"
)

type EvaluationResult struct {
	SelectedService string
	FinalText       string
	Reasoning       string
}

type Arbiter interface {
	Evaluate(ctx context.Context, source string, results []translator.ServiceResult) (*EvaluationResult, error)
}

// minDetectionLength mirrors the validator: language detection on shorter
// texts is noise, so short candidates are scored on confidence alone.
const minDetectionLength = 20

// Selector ranks candidates deterministically: a result whose text is no
// longer detected as English outranks one that is, then higher confidence
// wins, then service order breaks ties.
type Selector struct {
	det *detector.Detector
}

func NewSelector(det *detector.Detector) *Selector {
	return &Selector{det: det}
}

func (s *Selector) Evaluate(ctx context.Context, source string, results []translator.ServiceResult) (*EvaluationResult, error) {
	best := -1
	bestScore := -1.0

	for i, r := range results {
		if r.Error != "" || r.TranslatedText == "" {
			continue
		}
		score := r.Confidence
		if len([]rune(r.TranslatedText)) >= minDetectionLength && !s.det.IsEnglish(r.TranslatedText) {
			// Output left the source language; strong signal.
			score += 2
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 {
		return nil, fmt.Errorf("no usable results to evaluate")
	}
	chosen := results[best]
	return &EvaluationResult{
		SelectedService: chosen.ServiceName,
		FinalText:       chosen.TranslatedText,
		Reasoning: fmt.Sprintf("selected %s (confidence %.2f) out of %d candidates",
			chosen.ServiceName, chosen.Confidence, len(results)),
	}, nil
}
