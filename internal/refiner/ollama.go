package refiner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/akanlabs/nkyerease/internal/postprocess"
)

// OllamaRefiner asks a local Ollama model to polish the Twi draft.
type OllamaRefiner struct {
	model   string
	baseURL string
	client  *http.Client
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// NewOllamaRefiner creates a refiner backed by a local Ollama model.
func NewOllamaRefiner(model, baseURL string) *OllamaRefiner {
	return &OllamaRefiner{
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// Refine sends the draft to the model and returns the polished sentence.
// An empty model answer falls back to the draft unchanged.
func (r *OllamaRefiner) Refine(ctx context.Context, sourceText, draftText string) (string, error) {
	reqBody := ollamaRequest{
		Model:  r.model,
		Prompt: buildPrompt(sourceText, draftText),
		Stream: false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal refinement request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/api/generate", r.baseURL), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create refinement request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("refinement request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("refiner returned status %d", resp.StatusCode)
	}

	var ollamaResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return "", fmt.Errorf("failed to decode refinement response: %w", err)
	}

	refined := postprocess.Clean(ollamaResp.Response)
	if refined == "" {
		return draftText, nil
	}
	return refined, nil
}

func buildPrompt(sourceText, draftText string) string {
	return fmt.Sprintf(`You are a fluent speaker of Twi (Akan, Ghana).

You will receive an English sentence and a draft Twi translation produced
by a rule-based system. Smooth the draft into natural Twi.

ENGLISH:
%s

DRAFT TWI:
%s

Rules:
- Keep the meaning of the English sentence intact.
- Keep proper nouns unchanged.
- If the draft is already natural Twi, return it unchanged.

Output ONLY the Twi sentence. Do not include any explanation.`,
		sourceText, draftText)
}
