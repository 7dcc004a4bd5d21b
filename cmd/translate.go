/*
Copyright © 2026 Akan Labs

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/akanlabs/nkyerease/internal"
	"github.com/akanlabs/nkyerease/internal/arbiter"
	"github.com/akanlabs/nkyerease/internal/detector"
	"github.com/akanlabs/nkyerease/internal/orchestrator"
	"github.com/akanlabs/nkyerease/internal/refiner"
	"github.com/akanlabs/nkyerease/internal/store"
	"github.com/akanlabs/nkyerease/internal/translator"
	"github.com/akanlabs/nkyerease/internal/validator"
)

var (
	trDictPath    string
	trGrammarPath string
	trRulesPath   string

	trDebug    bool
	trCompare  bool
	trFallback []string

	trCredentials   string
	trMymemoryEmail string

	trDBPath  string
	trNoCache bool

	trRefine       bool
	trRefinerModel string
	trRefinerURL   string
)

var translateCmd = &cobra.Command{
	Use:   "translate <sentence>",
	Short: "Translate one English sentence to Twi",
	Long: `Translate a single English sentence to Twi with the grammar engine.

Remote fallback services (tried when the grammar cannot parse the
sentence): google (requires credentials), mymemory (free).

Use --compare to run every configured service and let the selector pick,
and --debug to print the grammar derivation trace.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		if err := validator.Validate(text); err != nil {
			return err
		}

		ctx := cmd.Context()

		var db *store.Store
		if !trNoCache && trDBPath != "" {
			var err error
			if db, err = store.New(trDBPath); err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			if err := db.SaveRequest(ctx, internal.TranslationRequest{
				ID:         uuid.NewString(),
				SourceText: text,
				Debug:      trDebug,
				Timestamp:  time.Now(),
			}); err != nil {
				fmt.Fprintf(os.Stderr, "failed to save request: %v\n", err)
			}

			if !trDebug {
				if twi, service, found, err := db.GetCached(ctx, text); err == nil && found {
					fmt.Fprintf(os.Stderr, "Using translation memory (%s)\n", service)
					fmt.Println(twi)
					return nil
				}
			}
		}

		engine, _, err := buildEngine(trDictPath, trGrammarPath, trRulesPath)
		if err != nil {
			return err
		}
		services := buildServices(engine, trFallback, trMymemoryEmail)

		orch := orchestrator.New(services, orchestrator.Config{
			Timeout:     30 * time.Second,
			MaxAttempts: 2,
			RetryDelay:  time.Second,
		})

		cfg := translator.ServiceConfig{
			Credentials: trCredentials,
			Email:       trMymemoryEmail,
		}
		req := translator.TranslateRequest{Text: text, Debug: trDebug}

		result, err := runTranslation(ctx, orch, cfg, req)
		if err != nil {
			return fmt.Errorf("translation unavailable: %w", err)
		}

		if trRefine {
			ref := refiner.NewOllamaRefiner(trRefinerModel, trRefinerURL)
			if refined, err := ref.Refine(ctx, text, result.TranslatedText); err != nil {
				fmt.Fprintf(os.Stderr, "refiner failed, keeping draft: %v\n", err)
			} else {
				result.TranslatedText = refined
			}
		}

		fmt.Println(result.TranslatedText)
		if trDebug {
			for _, line := range result.Trace {
				fmt.Fprintln(os.Stderr, line)
			}
		}

		if db != nil {
			if err := db.SaveToMemory(ctx, text, result.TranslatedText, result.ServiceName); err != nil {
				fmt.Fprintf(os.Stderr, "failed to save to memory: %v\n", err)
			}
		}
		return nil
	},
}

// runTranslation picks between the fallback chain and the compare mode.
func runTranslation(ctx context.Context, orch *orchestrator.Orchestrator, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	if !trCompare {
		return orch.ExecuteWithFallback(ctx, cfg, req)
	}

	all := orch.ExecuteAll(ctx, cfg, req)
	for _, r := range all.Results {
		fmt.Fprintf(os.Stderr, "%-10s %s (confidence %.2f, %s)\n",
			r.ServiceName+":", r.TranslatedText, r.Confidence, r.Latency.Round(time.Millisecond))
	}
	for _, err := range all.Errors {
		fmt.Fprintf(os.Stderr, "failed: %v\n", err)
	}

	sel := arbiter.NewSelector(detector.New())
	eval, err := sel.Evaluate(ctx, req.Text, all.Results)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(os.Stderr, eval.Reasoning)

	for i := range all.Results {
		if all.Results[i].ServiceName == eval.SelectedService {
			return &all.Results[i], nil
		}
	}
	return nil, fmt.Errorf("selected service %s not found in results", eval.SelectedService)
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVar(&trDictPath, "dict", "", "dictionary CSV path (default: embedded dictionary)")
	translateCmd.Flags().StringVar(&trGrammarPath, "grammar", "", "grammar file path (default: embedded grammar)")
	translateCmd.Flags().StringVar(&trRulesPath, "rules", "", "transfer rules path (default: embedded rules)")

	translateCmd.Flags().BoolVar(&trDebug, "debug", false, "print the derivation trace")
	translateCmd.Flags().BoolVar(&trCompare, "compare", false, "run all services and pick the best result")
	translateCmd.Flags().StringSliceVar(&trFallback, "fallback", nil, "remote fallback services (google,mymemory)")

	translateCmd.Flags().StringVar(&trCredentials, "credentials", "", "Google Cloud credentials file")
	translateCmd.Flags().StringVar(&trMymemoryEmail, "mymemory-email", "", "MyMemory contact email (raises quota)")

	translateCmd.Flags().StringVar(&trDBPath, "db", "nkyerease.db", "translation memory database path")
	translateCmd.Flags().BoolVar(&trNoCache, "no-cache", false, "bypass the translation memory")

	translateCmd.Flags().BoolVar(&trRefine, "refine", false, "polish the draft with a local Ollama model")
	translateCmd.Flags().StringVar(&trRefinerModel, "refiner-model", "gemma2:27b", "Ollama model for --refine")
	translateCmd.Flags().StringVar(&trRefinerURL, "refiner-url", "http://localhost:11434", "Ollama base URL for --refine")
}
