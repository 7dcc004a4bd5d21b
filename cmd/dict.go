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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var dictPath string

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Inspect the bilingual dictionary",
	Long: `List and look up entries of the English↔Twi dictionary. The
dictionary is a CSV table with english,twi,type columns; "phrase" rows
match whole sentences, everything else matches single words.`,
}

var dictListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all dictionary entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary(dictPath)
		if err != nil {
			return fmt.Errorf("failed to load dictionary: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ENGLISH\tTWI\tTYPE")
		for _, e := range dict.Entries() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.English, e.Twi, e.Kind)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d entries\n", dict.Len())
		return nil
	},
}

var dictLookupCmd = &cobra.Command{
	Use:   "lookup <english>",
	Short: "Look up a word or phrase",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary(dictPath)
		if err != nil {
			return fmt.Errorf("failed to load dictionary: %w", err)
		}

		query := strings.Join(args, " ")
		if twi, ok := dict.Phrase(query); ok {
			fmt.Printf("%s (phrase)\n", twi)
			return nil
		}
		if twi, ok := dict.Word(query); ok {
			fmt.Println(twi)
			return nil
		}
		return fmt.Errorf("no entry for %q", query)
	},
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictListCmd)
	dictCmd.AddCommand(dictLookupCmd)

	dictCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "dictionary CSV path (default: embedded dictionary)")
}
