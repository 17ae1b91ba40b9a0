// Package tag handles single-statement classification commands
package tag

import (
	"encoding/json"
	"fmt"
	"strings"

	"tactics-csv/cmd/root"
	"tactics-csv/internal/classifier"
	"tactics-csv/internal/store"

	"github.com/spf13/cobra"
)

var (
	// Statement is the text to classify
	Statement string
	// AsJSON prints the raw match results as JSON
	AsJSON bool
)

// Cmd represents the tag command
var Cmd = &cobra.Command{
	Use:   "tag",
	Short: "Classify a single statement",
	Long:  `Classify one statement against the keyword dictionaries and print the per-category match results.`,
	Run:   tagFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Statement, "statement", "s", "", "Statement text to classify")
	Cmd.Flags().BoolVar(&AsJSON, "json", false, "Print results as JSON")
	if err := Cmd.MarkFlagRequired("statement"); err != nil {
		panic(err)
	}
}

func tagFunc(cmd *cobra.Command, args []string) {
	dictionaries, err := store.NewDictionaryStore(root.DictionaryFile()).Load()
	if err != nil {
		root.Log.Fatalf("Error loading dictionaries: %v", err)
	}

	snapshot := dictionaries.Snapshot()
	results := classifier.Classify(Statement, snapshot)

	if AsJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			root.Log.Fatalf("Error encoding results: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	for _, entry := range snapshot {
		r := results[entry.Category]
		if r.Present {
			fmt.Printf("%s: present (%d): %s\n", entry.Category, r.Count, strings.Join(r.Matches, ", "))
		} else {
			fmt.Printf("%s: not present\n", entry.Category)
		}
	}
}
