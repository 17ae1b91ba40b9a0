package classifier

import (
	"testing"

	"tactics-csv/internal/dict"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotFrom(t *testing.T, entries []dict.Entry) dict.Snapshot {
	t.Helper()
	s := dict.NewStore()
	require.NoError(t, s.ReplaceAll(entries))
	return s.Snapshot()
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		entries   []dict.Entry
		expected  map[string]MatchResult
	}{
		{
			name:      "case-insensitive match, matches in dictionary order",
			statement: "Hurry! Limited time offer",
			entries: []dict.Entry{
				{Category: "urgency_marketing", Keywords: []string{"limited time", "hurry"}},
			},
			expected: map[string]MatchResult{
				"urgency_marketing": {Present: true, Count: 2, Matches: []string{"limited time", "hurry"}},
			},
		},
		{
			name:      "substring match inside an unrelated word",
			statement: "viper tour",
			entries: []dict.Entry{
				{Category: "exclusive_marketing", Keywords: []string{"vip"}},
			},
			expected: map[string]MatchResult{
				"exclusive_marketing": {Present: true, Count: 1, Matches: []string{"vip"}},
			},
		},
		{
			name:      "no match",
			statement: "a perfectly ordinary sentence",
			entries: []dict.Entry{
				{Category: "urgency_marketing", Keywords: []string{"hurry"}},
			},
			expected: map[string]MatchResult{
				"urgency_marketing": {Present: false, Count: 0, Matches: []string{}},
			},
		},
		{
			name:      "empty statement matches nothing in any category",
			statement: "",
			entries: []dict.Entry{
				{Category: "urgency_marketing", Keywords: []string{"hurry"}},
				{Category: "exclusive_marketing", Keywords: []string{"vip"}},
			},
			expected: map[string]MatchResult{
				"urgency_marketing":   {Present: false, Count: 0, Matches: []string{}},
				"exclusive_marketing": {Present: false, Count: 0, Matches: []string{}},
			},
		},
		{
			name:      "count counts keyword entries, not occurrences",
			statement: "hurry hurry hurry",
			entries: []dict.Entry{
				{Category: "urgency_marketing", Keywords: []string{"hurry"}},
			},
			expected: map[string]MatchResult{
				"urgency_marketing": {Present: true, Count: 1, Matches: []string{"hurry"}},
			},
		},
		{
			name:      "empty category matches nothing",
			statement: "anything at all",
			entries: []dict.Entry{
				{Category: "empty_category", Keywords: nil},
			},
			expected: map[string]MatchResult{
				"empty_category": {Present: false, Count: 0, Matches: []string{}},
			},
		},
		{
			name:      "uppercase keyword matches lowercase text",
			statement: "act now, members only!",
			entries: []dict.Entry{
				{Category: "urgency_marketing", Keywords: []string{"ACT NOW"}},
				{Category: "exclusive_marketing", Keywords: []string{"Members Only"}},
			},
			expected: map[string]MatchResult{
				"urgency_marketing":   {Present: true, Count: 1, Matches: []string{"ACT NOW"}},
				"exclusive_marketing": {Present: true, Count: 1, Matches: []string{"Members Only"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Classify(tt.statement, snapshotFrom(t, tt.entries))
			assert.Equal(t, tt.expected, results)
		})
	}
}

func TestClassify_Invariant(t *testing.T) {
	statements := []string{
		"",
		"Hurry! Limited time offer",
		"viper tour",
		"nothing to see",
		"EXCLUSIVE vip early access",
	}
	snapshot := dict.NewSeededStore().Snapshot()

	for _, statement := range statements {
		for category, r := range Classify(statement, snapshot) {
			assert.Equal(t, r.Count > 0, r.Present, "category %s, statement %q", category, statement)
			assert.Equal(t, len(r.Matches), r.Count, "category %s, statement %q", category, statement)
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	snapshot := dict.NewSeededStore().Snapshot()

	first := Classify("Hurry, exclusive deal, almost gone!", snapshot)
	second := Classify("Hurry, exclusive deal, almost gone!", snapshot)

	assert.Equal(t, first, second)
}

func TestClassify_DoesNotMutateSnapshot(t *testing.T) {
	snapshot := snapshotFrom(t, []dict.Entry{
		{Category: "urgency_marketing", Keywords: []string{"Hurry", "limited time"}},
	})

	Classify("hurry up", snapshot)

	assert.Equal(t, []string{"Hurry", "limited time"}, snapshot[0].Keywords)
}
