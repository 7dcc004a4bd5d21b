// Package server serves the web front-end: an HTML form for one English
// sentence with an optional derivation trace, plus a small JSON API.
package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akanlabs/nkyerease/internal"
	"github.com/akanlabs/nkyerease/internal/orchestrator"
	"github.com/akanlabs/nkyerease/internal/refiner"
	"github.com/akanlabs/nkyerease/internal/store"
	"github.com/akanlabs/nkyerease/internal/translator"
	"github.com/akanlabs/nkyerease/internal/validator"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// Examples are the quick-selection sentences shown under the form.
var Examples = []string{
	"I love good dogs",
	"how are you",
	"what is your name",
	"I am going to the market",
	"Kofi ne Kwame are going to Accra",
	"I work at Google",
}

// Options wires the server's collaborators. Store and Refiner are optional.
type Options struct {
	Validator     *validator.Validator
	Orchestrator  *orchestrator.Orchestrator
	Store         *store.Store
	Refiner       refiner.Refiner
	ServiceConfig translator.ServiceConfig
}

type Server struct {
	opts Options
}

func New(opts Options) *Server {
	return &Server{opts: opts}
}

// Handler returns the full route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /translate", s.handleTranslateForm)
	mux.HandleFunc("POST /api/translate", s.handleAPITranslate)
	mux.HandleFunc("GET /api/examples", s.handleExamples)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	var handler http.Handler = mux
	handler = CorsMiddleware(handler)
	handler = LoggingMiddleware(handler)
	handler = RecoverMiddleware(handler)
	return handler
}

// pageData feeds the form template.
type pageData struct {
	Text     string
	Twi      string
	Service  string
	Error    string
	Warning  string
	Debug    bool
	Trace    []string
	Examples []string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, pageData{
		Text:     r.URL.Query().Get("text"),
		Examples: Examples,
	})
}

func (s *Server) handleTranslateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	text := r.PostFormValue("text")
	debug := r.PostFormValue("debug") != ""

	data := pageData{
		Text:     text,
		Debug:    debug,
		Examples: Examples,
	}

	result, err := s.translate(r.Context(), text, debug)
	switch {
	case isValidationError(err):
		data.Error = err.Error()
	case err != nil:
		data.Error = "translation unavailable"
	default:
		data.Twi = result.TranslatedText
		data.Service = result.ServiceName
		data.Trace = result.Trace
		data.Warning = s.opts.Validator.CheckSource(text)
	}
	s.renderPage(w, data)
}

type apiRequest struct {
	Text  string `json:"text"`
	Debug bool   `json:"debug"`
}

type apiResponse struct {
	Twi        string   `json:"twi"`
	Service    string   `json:"service"`
	Confidence float64  `json:"confidence"`
	Trace      []string `json:"trace,omitempty"`
}

func (s *Server) handleAPITranslate(w http.ResponseWriter, r *http.Request) {
	var req apiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.translate(r.Context(), req.Text, req.Debug)
	switch {
	case isValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		respondError(w, http.StatusBadGateway, "translation unavailable")
		return
	}

	respondJSON(w, http.StatusOK, apiResponse{
		Twi:        result.TranslatedText,
		Service:    result.ServiceName,
		Confidence: result.Confidence,
		Trace:      result.Trace,
	})
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Examples)
}

// translate runs the request pipeline: validation, memory lookup, the
// service chain, the optional refiner, and persistence. Memory is bypassed
// for debug requests because cached hits carry no derivation trace.
func (s *Server) translate(ctx context.Context, text string, debug bool) (*translator.ServiceResult, error) {
	if err := validator.Validate(text); err != nil {
		return nil, err
	}

	if s.opts.Store != nil {
		if err := s.opts.Store.SaveRequest(ctx, internal.TranslationRequest{
			ID:         uuid.NewString(),
			SourceText: text,
			Debug:      debug,
			Timestamp:  time.Now(),
		}); err != nil {
			log.Printf("failed to save request: %v", err)
		}

		if !debug {
			if twi, service, found, err := s.opts.Store.GetCached(ctx, text); err == nil && found {
				return &translator.ServiceResult{
					ServiceName:    "memory (" + service + ")",
					TranslatedText: twi,
					Confidence:     1.0,
				}, nil
			}
		}
	}

	result, err := s.opts.Orchestrator.ExecuteWithFallback(ctx, s.opts.ServiceConfig, translator.TranslateRequest{
		Text:  text,
		Debug: debug,
	})
	if err != nil {
		return nil, err
	}

	if s.opts.Refiner != nil {
		if refined, err := s.opts.Refiner.Refine(ctx, text, result.TranslatedText); err != nil {
			log.Printf("refiner failed, keeping draft: %v", err)
		} else {
			result.TranslatedText = refined
		}
	}

	if s.opts.Store != nil {
		if err := s.opts.Store.SaveToMemory(ctx, text, result.TranslatedText, result.ServiceName); err != nil {
			log.Printf("failed to save to memory: %v", err)
		}
	}

	return result, nil
}

func (s *Server) renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		log.Printf("failed to render page: %v", err)
	}
}

func isValidationError(err error) bool {
	var verr *validator.ValidationError
	return errors.As(err, &verr)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// ListenAndServe runs the server on addr until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}
