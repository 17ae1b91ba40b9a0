// Package report renders the summary of a classification pass in the
// supported output formats.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"tactics-csv/internal/logging"
	"tactics-csv/internal/models"

	"github.com/gocarina/gocsv"
)

// Summary is the serializable form of a classification pass summary.
type Summary struct {
	StatementColumn string            `json:"statement_column"`
	TotalRows       int               `json:"total_rows"`
	AnyCategoryRows int               `json:"any_category_rows"`
	Categories      []CategorySummary `json:"categories"`
}

// CategorySummary is one category's aggregates. The csv tags drive the
// gocsv writer for the csv format.
type CategorySummary struct {
	Category          string  `json:"category" csv:"category"`
	PresentCount      int     `json:"present_count" csv:"present_count"`
	PresentPercentage float64 `json:"present_percentage" csv:"present_percentage"`
}

// NewSummary builds a Summary from pass statistics.
func NewSummary(statementColumn string, stats models.ClassificationStats) *Summary {
	summary := &Summary{
		StatementColumn: statementColumn,
		TotalRows:       stats.TotalRows,
		AnyCategoryRows: stats.AnyCategoryRows,
		Categories:      []CategorySummary{},
	}
	for _, c := range stats.Categories {
		summary.Categories = append(summary.Categories, CategorySummary{
			Category:          c.Name,
			PresentCount:      c.PresentCount,
			PresentPercentage: c.PresentPercentage,
		})
	}
	return summary
}

// Generator renders classification summaries in various formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new instance of Generator.
func NewGenerator() *Generator {
	return &Generator{
		logger: logging.GetLogger().WithField("component", "ReportGenerator"),
	}
}

// Generate renders the summary in the specified format (text, json or csv).
// It returns the report as a byte slice and an error if generation fails or
// the format is unsupported.
func (g *Generator) Generate(summary *Summary, format string) ([]byte, error) {
	switch format {
	case "text":
		return g.generateTextReport(summary)
	case "json":
		return g.generateJSONReport(summary)
	case "csv":
		return g.generateCSVReport(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateTextReport(summary *Summary) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Statement column: %s\n", summary.StatementColumn)
	fmt.Fprintf(&buf, "Total rows: %d\n", summary.TotalRows)
	fmt.Fprintf(&buf, "Rows with any category: %d\n", summary.AnyCategoryRows)
	for _, c := range summary.Categories {
		fmt.Fprintf(&buf, "  %s: %d/%d (%.1f%%)\n",
			c.Category, c.PresentCount, summary.TotalRows, c.PresentPercentage)
	}
	return buf.Bytes(), nil
}

func (g *Generator) generateJSONReport(summary *Summary) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return jsonReport, nil
}

func (g *Generator) generateCSVReport(summary *Summary) ([]byte, error) {
	csvReport, err := gocsv.MarshalBytes(&summary.Categories)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return csvReport, nil
}
