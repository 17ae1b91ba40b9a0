package classifier

import (
	"strconv"
	"strings"

	"tactics-csv/internal/classifyerror"
	"tactics-csv/internal/dict"
	"tactics-csv/internal/logging"
	"tactics-csv/internal/models"
)

// Options configures a dataset classification pass. The defaults reproduce
// the standard derived-column naming ({category}_present, {category}_count,
// {category}_matches) and comma-joined match lists.
type Options struct {
	// StatementColumn forces the statement column. When empty the column
	// is auto-detected, see ResolveStatementColumn.
	StatementColumn string

	// Derived-column naming convention.
	PresentSuffix string
	CountSuffix   string
	MatchesSuffix string

	// Separator used to join matched keywords in the matches column.
	MatchesSeparator string
}

func (o Options) withDefaults() Options {
	if o.PresentSuffix == "" {
		o.PresentSuffix = "_present"
	}
	if o.CountSuffix == "" {
		o.CountSuffix = "_count"
	}
	if o.MatchesSuffix == "" {
		o.MatchesSuffix = "_matches"
	}
	if o.MatchesSeparator == "" {
		o.MatchesSeparator = ", "
	}
	return o
}

// Result is the outcome of one dataset classification pass.
type Result struct {
	// Dataset is the input dataset with three derived columns appended per
	// category, in dictionary order. The caller's input is not modified.
	Dataset *models.Dataset

	// StatementColumn is the resolved name of the column that was
	// classified. Reported so auto-detection is never a silent guess.
	StatementColumn string

	Stats models.ClassificationStats
}

// Engine runs dataset classification passes.
type Engine struct {
	opts   Options
	logger logging.Logger
}

// New creates an Engine with the given options.
func New(opts Options, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// ResolveStatementColumn picks the statement column for a dataset.
//
// When explicit is non-empty it must name an existing column. Otherwise the
// chain is: exact case-insensitive match on "statement"; first column whose
// name contains "statement" or "text" (case-insensitive); the second
// column; the first column. A dataset without columns cannot be resolved.
func ResolveStatementColumn(columns []string, explicit string) (string, error) {
	if explicit != "" {
		for _, c := range columns {
			if c == explicit {
				return c, nil
			}
		}
		return "", &classifyerror.MissingColumnError{Column: explicit, Columns: columns}
	}

	if len(columns) == 0 {
		return "", &classifyerror.MissingColumnError{Columns: columns}
	}

	for _, c := range columns {
		if strings.EqualFold(c, "statement") {
			return c, nil
		}
	}
	for _, c := range columns {
		lower := strings.ToLower(c)
		if strings.Contains(lower, "statement") || strings.Contains(lower, "text") {
			return c, nil
		}
	}
	if len(columns) > 1 {
		return columns[1], nil
	}
	return columns[0], nil
}

// ClassifyDataset classifies every row of the dataset against the store and
// returns the augmented dataset plus summary statistics. The pass is
// all-or-nothing: if the statement column cannot be resolved no rows are
// produced. The store is snapshotted before the pass, so edits made while
// the caller holds the result do not bleed into it.
func (e *Engine) ClassifyDataset(ds *models.Dataset, store *dict.Store) (*Result, error) {
	resolved, err := ResolveStatementColumn(ds.Columns, e.opts.StatementColumn)
	if err != nil {
		return nil, err
	}

	snapshot := store.Snapshot()
	e.logger.WithFields(
		logging.Field{Key: logging.FieldColumn, Value: resolved},
		logging.Field{Key: logging.FieldRows, Value: len(ds.Rows)},
		logging.Field{Key: "categories", Value: len(snapshot)},
	).Info("Classifying dataset")

	out := ds.Clone()

	rowResults := make([]map[string]MatchResult, len(out.Rows))
	for i, row := range out.Rows {
		rowResults[i] = Classify(row[resolved], snapshot)
	}

	stats := models.ClassificationStats{
		TotalRows: len(out.Rows),
	}
	for i := range out.Rows {
		for _, entry := range snapshot {
			if rowResults[i][entry.Category].Present {
				stats.AnyCategoryRows++
				break
			}
		}
	}

	for _, entry := range snapshot {
		category := entry.Category

		// AddColumn keeps the schema free of duplicate names when the input
		// already carries a column named like a derived one.
		derived := func(name string, value func(r MatchResult) string) {
			i := 0
			out.AddColumn(name, func(models.Row) string {
				v := value(rowResults[i][category])
				i++
				return v
			})
		}
		derived(category+e.opts.PresentSuffix, func(r MatchResult) string {
			return strconv.FormatBool(r.Present)
		})
		derived(category+e.opts.CountSuffix, func(r MatchResult) string {
			return strconv.Itoa(r.Count)
		})
		derived(category+e.opts.MatchesSuffix, func(r MatchResult) string {
			return strings.Join(r.Matches, e.opts.MatchesSeparator)
		})

		presentCount := 0
		for i := range out.Rows {
			if rowResults[i][category].Present {
				presentCount++
			}
		}
		stats.Categories = append(stats.Categories, models.CategoryStats{
			Name:              category,
			PresentCount:      presentCount,
			PresentPercentage: models.PercentOf(presentCount, stats.TotalRows),
		})
	}

	stats.LogSummary(e.logger)

	return &Result{
		Dataset:         out,
		StatementColumn: resolved,
		Stats:           stats,
	}, nil
}
