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
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akanlabs/nkyerease/internal/orchestrator"
	"github.com/akanlabs/nkyerease/internal/translator"
	"github.com/akanlabs/nkyerease/internal/validator"
)

var (
	batchInputFile  string
	batchOutputFile string
	batchColumn     int
	batchHeader     bool

	batchDictPath    string
	batchGrammarPath string
	batchRulesPath   string
	batchFallback    []string

	batchCredentials   string
	batchMymemoryEmail string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Translate one column of a CSV file",
	Long: `Translate a column of English sentences in a CSV file, writing the
translated file to the output path. Cells that fail validation (empty or
multi-sentence) or that no service can translate are kept unchanged and
reported on stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if batchInputFile == batchOutputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		in, err := os.Open(batchInputFile)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer in.Close()

		rows, err := csv.NewReader(in).ReadAll()
		if err != nil {
			return fmt.Errorf("failed to read input CSV: %w", err)
		}

		engine, _, err := buildEngine(batchDictPath, batchGrammarPath, batchRulesPath)
		if err != nil {
			return err
		}
		services := buildServices(engine, batchFallback, batchMymemoryEmail)

		orch := orchestrator.New(services, orchestrator.Config{
			Timeout:     30 * time.Second,
			MaxAttempts: 2,
			RetryDelay:  time.Second,
		})
		cfg := translator.ServiceConfig{
			Credentials: batchCredentials,
			Email:       batchMymemoryEmail,
		}

		ctx := cmd.Context()
		translated, skipped := 0, 0
		for i, row := range rows {
			if batchHeader && i == 0 {
				continue
			}
			if batchColumn >= len(row) {
				continue
			}
			text := row[batchColumn]

			if err := validator.Validate(text); err != nil {
				fmt.Fprintf(os.Stderr, "row %d: %v, kept unchanged\n", i+1, err)
				skipped++
				continue
			}

			result, err := orch.ExecuteWithFallback(ctx, cfg, translator.TranslateRequest{Text: text})
			if err != nil {
				fmt.Fprintf(os.Stderr, "row %d: translation unavailable, kept unchanged\n", i+1)
				skipped++
				continue
			}
			row[batchColumn] = result.TranslatedText
			translated++
		}

		out, err := os.Create(batchOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()

		w := csv.NewWriter(out)
		if err := w.WriteAll(rows); err != nil {
			return fmt.Errorf("failed to write output CSV: %w", err)
		}

		fmt.Printf("Translated %d rows (%d skipped) into %s\n", translated, skipped, batchOutputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInputFile, "input", "i", "", "input CSV file")
	batchCmd.Flags().StringVarP(&batchOutputFile, "output", "o", "", "output CSV file")
	batchCmd.Flags().IntVar(&batchColumn, "column", 0, "zero-based index of the English column")
	batchCmd.Flags().BoolVar(&batchHeader, "header", true, "treat the first row as a header")

	batchCmd.Flags().StringVar(&batchDictPath, "dict", "", "dictionary CSV path (default: embedded dictionary)")
	batchCmd.Flags().StringVar(&batchGrammarPath, "grammar", "", "grammar file path (default: embedded grammar)")
	batchCmd.Flags().StringVar(&batchRulesPath, "rules", "", "transfer rules path (default: embedded rules)")
	batchCmd.Flags().StringSliceVar(&batchFallback, "fallback", nil, "remote fallback services (google,mymemory)")

	batchCmd.Flags().StringVar(&batchCredentials, "credentials", "", "Google Cloud credentials file")
	batchCmd.Flags().StringVar(&batchMymemoryEmail, "mymemory-email", "", "MyMemory contact email (raises quota)")

	batchCmd.MarkFlagRequired("input")
	batchCmd.MarkFlagRequired("output")
}
