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
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akanlabs/nkyerease/internal/orchestrator"
	"github.com/akanlabs/nkyerease/internal/refiner"
	"github.com/akanlabs/nkyerease/internal/server"
	"github.com/akanlabs/nkyerease/internal/store"
	"github.com/akanlabs/nkyerease/internal/translator"
	"github.com/akanlabs/nkyerease/internal/validator"
)

var (
	srvPort        int
	srvDictPath    string
	srvGrammarPath string
	srvRulesPath   string
	srvDBPath      string
	srvFallback    []string

	srvCredentials   string
	srvMymemoryEmail string

	srvRefine       bool
	srvRefinerModel string
	srvRefinerURL   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web form front-end",
	Long: `Serve the English → Twi web UI: a single-sentence form with an
optional derivation trace, plus a JSON API under /api.

Flags can also be set in the config file or NKYEREASE_* environment
variables (e.g. server.port / NKYEREASE_SERVER_PORT).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.IsSet("server.port") && !cmd.Flags().Changed("port") {
			srvPort = viper.GetInt("server.port")
		}
		if viper.IsSet("dictionary.path") && !cmd.Flags().Changed("dict") {
			srvDictPath = viper.GetString("dictionary.path")
		}

		engine, _, err := buildEngine(srvDictPath, srvGrammarPath, srvRulesPath)
		if err != nil {
			return err
		}
		services := buildServices(engine, srvFallback, srvMymemoryEmail)

		var db *store.Store
		if srvDBPath != "" {
			if db, err = store.New(srvDBPath); err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()
		}

		var ref refiner.Refiner
		if srvRefine {
			ref = refiner.NewOllamaRefiner(srvRefinerModel, srvRefinerURL)
		}

		srv := server.New(server.Options{
			Validator: validator.New(),
			Orchestrator: orchestrator.New(services, orchestrator.Config{
				Timeout:     30 * time.Second,
				MaxAttempts: 2,
				RetryDelay:  time.Second,
			}),
			Store:   db,
			Refiner: ref,
			ServiceConfig: translator.ServiceConfig{
				Credentials: srvCredentials,
				Email:       srvMymemoryEmail,
			},
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := fmt.Sprintf(":%d", srvPort)
		log.Printf("Starting nkyerease web UI on http://localhost%s", addr)
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&srvPort, "port", 7860, "HTTP port")
	serveCmd.Flags().StringVar(&srvDictPath, "dict", "", "dictionary CSV path (default: embedded dictionary)")
	serveCmd.Flags().StringVar(&srvGrammarPath, "grammar", "", "grammar file path (default: embedded grammar)")
	serveCmd.Flags().StringVar(&srvRulesPath, "rules", "", "transfer rules path (default: embedded rules)")
	serveCmd.Flags().StringVar(&srvDBPath, "db", "nkyerease.db", "translation memory database path (empty to disable)")
	serveCmd.Flags().StringSliceVar(&srvFallback, "fallback", nil, "remote fallback services (google,mymemory)")

	serveCmd.Flags().StringVar(&srvCredentials, "credentials", "", "Google Cloud credentials file")
	serveCmd.Flags().StringVar(&srvMymemoryEmail, "mymemory-email", "", "MyMemory contact email (raises quota)")

	serveCmd.Flags().BoolVar(&srvRefine, "refine", false, "polish drafts with a local Ollama model")
	serveCmd.Flags().StringVar(&srvRefinerModel, "refiner-model", "gemma2:27b", "Ollama model for --refine")
	serveCmd.Flags().StringVar(&srvRefinerURL, "refiner-url", "http://localhost:11434", "Ollama base URL for --refine")
}
