// Package classifier implements the keyword classification engine: matching
// one statement against a dictionary snapshot, and classifying whole
// datasets into derived columns and summary statistics.
package classifier

import (
	"strings"

	"tactics-csv/internal/dict"
)

// MatchResult is the outcome of classifying one statement against one
// category. Present, Count and Matches always agree:
// Present == (Count > 0) == (len(Matches) > 0).
type MatchResult struct {
	Present bool     `json:"present"`
	Count   int      `json:"count"`
	Matches []string `json:"matches"`
}

// Classify matches a statement against every category of the snapshot and
// returns a result per category name.
//
// Matching is case-insensitive substring containment, so a keyword like
// "vip" also matches inside "viper". This is intentional: the matching
// is transparent and literal rather than word-boundary aware, and callers
// rely on exactly these semantics. Matched keywords are reported in
// dictionary order, not in text order. Count counts distinct matching
// dictionary entries, not occurrences in the text.
//
// An empty statement matches nothing and is not an error.
func Classify(statement string, snapshot dict.Snapshot) map[string]MatchResult {
	results := make(map[string]MatchResult, len(snapshot))
	lowered := strings.ToLower(statement)

	for _, entry := range snapshot {
		matches := []string{}
		if statement != "" {
			for _, keyword := range entry.Keywords {
				if strings.Contains(lowered, strings.ToLower(keyword)) {
					matches = append(matches, keyword)
				}
			}
		}
		results[entry.Category] = MatchResult{
			Present: len(matches) > 0,
			Count:   len(matches),
			Matches: matches,
		}
	}
	return results
}
