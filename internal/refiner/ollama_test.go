package refiner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaRefine(t *testing.T) {
	var gotModel, gotPrompt string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		gotModel, gotPrompt = req.Model, req.Prompt
		fmt.Fprint(w, `{"response":"\"Me dɔ papa kraman\""}`)
	}))
	defer ts.Close()

	r := NewOllamaRefiner("gemma2:27b", ts.URL)
	got, err := r.Refine(context.Background(), "I love good dogs", "Me dɔ papa kraman")
	if err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	// Quote wrapping is stripped from the model answer.
	if got != "Me dɔ papa kraman" {
		t.Errorf("refined = %q", got)
	}
	if gotModel != "gemma2:27b" {
		t.Errorf("model = %q", gotModel)
	}
	if gotPrompt == "" {
		t.Error("empty prompt sent")
	}
}

func TestOllamaRefineEmptyAnswer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":"<think>still thinking"}`)
	}))
	defer ts.Close()

	r := NewOllamaRefiner("gemma2:27b", ts.URL)
	got, err := r.Refine(context.Background(), "hi", "draft")
	if err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	if got != "draft" {
		t.Errorf("refined = %q, want the draft back", got)
	}
}

func TestOllamaRefineServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusInternalServerError)
	}))
	defer ts.Close()

	r := NewOllamaRefiner("missing", ts.URL)
	if _, err := r.Refine(context.Background(), "hi", "draft"); err == nil {
		t.Fatal("Refine succeeded on server error")
	}
}
