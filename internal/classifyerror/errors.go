// Package classifyerror defines the error taxonomy shared by the dictionary
// store and the classification engine. Every error here is a recoverable
// condition: callers surface a message and keep the session alive.
package classifyerror

import "fmt"

// NotFoundError indicates a lookup miss for a category or keyword.
type NotFoundError struct {
	Kind string // "category" or "keyword"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Name)
}

// DuplicateCategoryError indicates an attempt to add a category that
// already exists, or one with an empty name.
type DuplicateCategoryError struct {
	Name string
}

func (e *DuplicateCategoryError) Error() string {
	if e.Name == "" {
		return "category name must not be empty"
	}
	return fmt.Sprintf("category already exists: %q", e.Name)
}

// DuplicateKeywordError indicates an attempt to add a keyword that is
// already present in the category.
type DuplicateKeywordError struct {
	Category string
	Keyword  string
}

func (e *DuplicateKeywordError) Error() string {
	return fmt.Sprintf("keyword %q already exists in category %q", e.Keyword, e.Category)
}

// InvalidFormatError indicates a malformed dictionary payload. The store is
// left untouched when import fails with this error.
type InvalidFormatError struct {
	Reason string
	Err    error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid dictionary format: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid dictionary format: %s", e.Reason)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// MissingColumnError indicates that the statement column could not be
// resolved for a dataset. The classification pass produces no output.
type MissingColumnError struct {
	Column  string   // the explicitly requested column, if any
	Columns []string // the columns the dataset actually has
}

func (e *MissingColumnError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("statement column %q not found in dataset (columns: %v)", e.Column, e.Columns)
	}
	return fmt.Sprintf("no statement column could be resolved in dataset (columns: %v)", e.Columns)
}
