// Package refiner implements the optional polish pass: a local LLM reviews
// the Twi draft and smooths it without changing its meaning.
package refiner

import "context"

// Refiner reviews and improves a draft translation.
type Refiner interface {
	Refine(ctx context.Context, sourceText, draftText string) (string, error)
}
