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
	"os"

	"github.com/akanlabs/nkyerease/internal/dictionary"
	"github.com/akanlabs/nkyerease/internal/grammar"
	"github.com/akanlabs/nkyerease/internal/transfer"
	"github.com/akanlabs/nkyerease/internal/translator"
)

// loadDictionary returns the dictionary at path, or the embedded default
// when path is empty.
func loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return dictionary.Default()
	}
	return dictionary.Load(path)
}

// buildEngine constructs the grammar engine, overriding the embedded
// grammar or rule files when paths are given.
func buildEngine(dictPath, grammarPath, rulesPath string) (*translator.GrammarService, *dictionary.Dictionary, error) {
	dict, err := loadDictionary(dictPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	if grammarPath == "" && rulesPath == "" {
		engine, err := translator.DefaultGrammarService(dict)
		if err != nil {
			return nil, nil, err
		}
		return engine, dict, nil
	}

	g, rules, err := translator.DefaultGrammarData()
	if err != nil {
		return nil, nil, err
	}
	if grammarPath != "" {
		src, err := os.ReadFile(grammarPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read grammar: %w", err)
		}
		if g, err = grammar.Parse(string(src)); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", grammarPath, err)
		}
	}
	if rulesPath != "" {
		src, err := os.ReadFile(rulesPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read rules: %w", err)
		}
		if rules, err = transfer.ParseRules(string(src)); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", rulesPath, err)
		}
	}

	return translator.NewGrammarService(g, rules, dict), dict, nil
}

// buildServices puts the grammar engine first, then the requested remote
// fallbacks in order.
func buildServices(engine *translator.GrammarService, fallbackNames []string, mymemoryEmail string) []translator.TranslationService {
	list := []translator.TranslationService{engine}

	for _, name := range fallbackNames {
		switch name {
		case "google":
			list = append(list, translator.NewGoogleService())
		case "mymemory":
			list = append(list, translator.NewMyMemoryService(mymemoryEmail))
		default:
			fmt.Fprintf(os.Stderr, "Unknown fallback service: %s, skipping\n", name)
		}
	}

	return list
}
