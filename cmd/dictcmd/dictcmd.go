// Package dictcmd handles dictionary management commands
package dictcmd

import (
	"fmt"
	"os"
	"strings"

	"tactics-csv/cmd/root"
	"tactics-csv/internal/dict"
	"tactics-csv/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the dict command and its subcommands
var Cmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage the keyword dictionaries",
	Long: `Inspect and edit the keyword dictionaries used for classification.
Edits are saved back to the dictionary YAML file so they survive between runs.`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCategoryCmd)
	Cmd.AddCommand(deleteCategoryCmd)
	Cmd.AddCommand(addKeywordCmd)
	Cmd.AddCommand(removeKeywordCmd)
	Cmd.AddCommand(setKeywordsCmd)
	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(importCmd)
	Cmd.AddCommand(resetCmd)
}

// load reads the dictionary file, falling back to the seeded defaults when
// no file exists yet.
func load() (store.DictionaryPersistence, *dict.Store) {
	persistence := store.NewDictionaryStore(root.DictionaryFile())
	dictionaries, err := persistence.Load()
	if err != nil {
		root.Log.Fatalf("Error loading dictionaries: %v", err)
	}
	return persistence, dictionaries
}

func save(persistence store.DictionaryPersistence, dictionaries *dict.Store) {
	if err := persistence.Save(dictionaries); err != nil {
		root.Log.Fatalf("Error saving dictionaries: %v", err)
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and their keywords",
	Run: func(cmd *cobra.Command, args []string) {
		_, dictionaries := load()
		for _, entry := range dictionaries.Export() {
			fmt.Printf("%s (%d keywords)\n", entry.Category, len(entry.Keywords))
			for _, kw := range entry.Keywords {
				fmt.Printf("  %s\n", kw)
			}
		}
	},
}

var addCategoryCmd = &cobra.Command{
	Use:   "add-category <name>",
	Short: "Add an empty category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		persistence, dictionaries := load()
		if err := dictionaries.AddCategory(args[0]); err != nil {
			root.Log.Fatalf("Cannot add category: %v", err)
		}
		save(persistence, dictionaries)
		root.Log.Infof("Added category %q", args[0])
	},
}

var deleteCategoryCmd = &cobra.Command{
	Use:   "delete-category <name>",
	Short: "Delete a category and all its keywords",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		persistence, dictionaries := load()
		if err := dictionaries.DeleteCategory(args[0]); err != nil {
			root.Log.Fatalf("Cannot delete category: %v", err)
		}
		save(persistence, dictionaries)
		root.Log.Infof("Deleted category %q", args[0])
	},
}

var addKeywordCmd = &cobra.Command{
	Use:   "add-keyword <category> <keyword>",
	Short: "Add a keyword to a category",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		persistence, dictionaries := load()
		if err := dictionaries.AddKeyword(args[0], args[1]); err != nil {
			root.Log.Fatalf("Cannot add keyword: %v", err)
		}
		save(persistence, dictionaries)
		root.Log.Infof("Added keyword %q to %q", args[1], args[0])
	},
}

var removeKeywordCmd = &cobra.Command{
	Use:   "remove-keyword <category> <keyword>",
	Short: "Remove a keyword from a category",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		persistence, dictionaries := load()
		if err := dictionaries.RemoveKeyword(args[0], args[1]); err != nil {
			root.Log.Fatalf("Cannot remove keyword: %v", err)
		}
		save(persistence, dictionaries)
		root.Log.Infof("Removed keyword %q from %q", args[1], args[0])
	},
}

var setKeywordsCmd = &cobra.Command{
	Use:   "set-keywords <category> <keyword>...",
	Short: "Replace a category's keyword list wholesale",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		persistence, dictionaries := load()
		if err := dictionaries.ReplaceKeywords(args[0], args[1:]); err != nil {
			root.Log.Fatalf("Cannot replace keywords: %v", err)
		}
		save(persistence, dictionaries)
		root.Log.Infof("Replaced keywords of %q (%d keywords)", args[0], len(args)-1)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dictionaries as JSON",
	Long:  `Export the dictionaries as a JSON object mapping category name to keyword list. Writes to --output, or stdout when no output file is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		_, dictionaries := load()
		data, err := dictionaries.ExportJSON()
		if err != nil {
			root.Log.Fatalf("Error exporting dictionaries: %v", err)
		}
		if root.SharedFlags.Output == "" {
			fmt.Println(string(data))
			return
		}
		if err := os.WriteFile(root.SharedFlags.Output, data, 0600); err != nil {
			root.Log.Fatalf("Error writing export file: %v", err)
		}
		root.Log.Infof("Exported dictionaries to %s", root.SharedFlags.Output)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the dictionaries from a JSON export",
	Long:  `Replace the dictionaries wholesale from a JSON object mapping category name to keyword list. A malformed payload leaves the existing dictionaries untouched.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		persistence, dictionaries := load()
		data, err := os.ReadFile(args[0])
		if err != nil {
			root.Log.Fatalf("Error reading import file: %v", err)
		}
		if err := dictionaries.ImportJSON(data); err != nil {
			root.Log.Fatalf("Cannot import dictionaries: %v", err)
		}
		save(persistence, dictionaries)
		root.Log.Infof("Imported dictionaries from %s (%s)", args[0], strings.Join(dictionaries.Categories(), ", "))
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the dictionaries to the built-in defaults",
	Run: func(cmd *cobra.Command, args []string) {
		persistence, _ := load()
		save(persistence, dict.NewSeededStore())
		root.Log.Info("Dictionaries reset to defaults")
	},
}
