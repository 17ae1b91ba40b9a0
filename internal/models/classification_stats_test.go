package models

import (
	"testing"

	"tactics-csv/internal/logging"

	"github.com/stretchr/testify/assert"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		total    int
		expected float64
	}{
		{name: "quarter", count: 1, total: 4, expected: 25.0},
		{name: "all", count: 3, total: 3, expected: 100.0},
		{name: "none", count: 0, total: 10, expected: 0.0},
		{name: "zero total", count: 0, total: 0, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PercentOf(tt.count, tt.total), 0.0001)
		})
	}
}

func TestClassificationStats_LogSummary(t *testing.T) {
	stats := ClassificationStats{
		TotalRows:       4,
		AnyCategoryRows: 1,
		Categories: []CategoryStats{
			{Name: "urgency_marketing", PresentCount: 1, PresentPercentage: 25.0},
		},
	}

	logger := &logging.MockLogger{}
	stats.LogSummary(logger)

	entries := logger.GetEntriesByLevel("INFO")
	assert.Len(t, entries, 2)

	// nil logger must not panic
	stats.LogSummary(nil)
}
