package models

import (
	"tactics-csv/internal/logging"
)

// CategoryStats holds the per-category aggregates of a classification pass.
type CategoryStats struct {
	Name              string
	PresentCount      int
	PresentPercentage float64
}

// ClassificationStats tracks dataset-level statistics for one pass.
type ClassificationStats struct {
	TotalRows       int // number of rows classified
	AnyCategoryRows int // rows where at least one category was present
	Categories      []CategoryStats
}

// PercentOf computes count as a percentage of total, 0 when total is 0.
func PercentOf(count, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(count) / float64(total) * 100.0
}

// LogSummary logs a summary of the classification pass.
func (cs ClassificationStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}

	logger.Info("Classification summary",
		logging.Field{Key: "total_rows", Value: cs.TotalRows},
		logging.Field{Key: "any_category_rows", Value: cs.AnyCategoryRows},
		logging.Field{Key: "categories", Value: len(cs.Categories)},
	)
	for _, c := range cs.Categories {
		logger.Info("Category summary",
			logging.Field{Key: logging.FieldCategory, Value: c.Name},
			logging.Field{Key: "present_count", Value: c.PresentCount},
			logging.Field{Key: "present_percentage", Value: c.PresentPercentage},
		)
	}
}
