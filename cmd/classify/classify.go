// Package classify handles dataset classification commands
package classify

import (
	"errors"
	"fmt"

	"tactics-csv/cmd/root"
	"tactics-csv/internal/classifier"
	"tactics-csv/internal/classifyerror"
	"tactics-csv/internal/common"
	"tactics-csv/internal/logging"
	"tactics-csv/internal/report"
	"tactics-csv/internal/store"
	"tactics-csv/internal/validation"

	"github.com/spf13/cobra"
)

var (
	// Column forces the statement column instead of auto-detection
	Column string
	// SummaryFormat selects the summary output format (text, json, csv)
	SummaryFormat string
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify the statements of a CSV dataset",
	Long: `Classify every row of a CSV dataset against the keyword dictionaries.
The output dataset carries three extra columns per category (present, count,
matches) and the run prints a summary of per-category statistics.`,
	Run: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Column, "column", "c", "", "Statement column (default: auto-detect)")
	Cmd.Flags().StringVarP(&SummaryFormat, "summary", "s", "", "Summary format: text, json or csv")
}

func classifyFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required (use --input)")
	}
	if err := validation.IsValidInputPath(root.SharedFlags.Input); err != nil {
		root.Log.Fatalf("Invalid input file: %v", err)
	}

	format := SummaryFormat
	if format == "" {
		format = root.Cfg.Report.Format
	}
	if err := validation.IsValidReportFormat(format); err != nil {
		root.Log.Fatalf("Invalid summary format: %v", err)
	}

	ds, err := common.ReadDatasetCSV(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading dataset: %v", err)
	}

	dictionaries, err := store.NewDictionaryStore(root.DictionaryFile()).Load()
	if err != nil {
		root.Log.Fatalf("Error loading dictionaries: %v", err)
	}

	opts := classifier.Options{
		StatementColumn:  Column,
		PresentSuffix:    root.Cfg.Classification.PresentSuffix,
		CountSuffix:      root.Cfg.Classification.CountSuffix,
		MatchesSuffix:    root.Cfg.Classification.MatchesSuffix,
		MatchesSeparator: root.Cfg.Classification.MatchesSeparator,
	}
	if opts.StatementColumn == "" {
		opts.StatementColumn = root.Cfg.Classification.StatementColumn
	}

	engine := classifier.New(opts, logging.NewLogrusAdapterFromLogger(root.Log))
	result, err := engine.ClassifyDataset(ds, dictionaries)
	if err != nil {
		var missing *classifyerror.MissingColumnError
		if errors.As(err, &missing) {
			root.Log.Fatalf("Cannot classify dataset: %v", missing)
		}
		root.Log.Fatalf("Error classifying dataset: %v", err)
	}

	root.Log.WithField("column", result.StatementColumn).Info("Statement column resolved")

	if root.SharedFlags.Output != "" {
		if err := common.WriteDatasetCSV(result.Dataset, root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Error writing classified dataset: %v", err)
		}
	}

	summary := report.NewSummary(result.StatementColumn, result.Stats)
	rendered, err := report.NewGenerator().Generate(summary, format)
	if err != nil {
		root.Log.Fatalf("Error generating summary: %v", err)
	}
	fmt.Print(string(rendered))
}
