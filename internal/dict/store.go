// Package dict implements the in-memory keyword dictionary: an ordered
// mapping from category name to an ordered list of unique keywords.
//
// The store is owned by the calling session. It is not safe for concurrent
// use; a classification pass works on a Snapshot so the store can keep
// being edited between passes.
package dict

import (
	"tactics-csv/internal/classifyerror"
)

// Entry is one category with its keywords, in insertion order.
type Entry struct {
	Category string
	Keywords []string
}

// Snapshot is an immutable deep copy of the store, taken for the duration
// of one classification pass.
type Snapshot []Entry

// Store holds the category to keywords mapping. Category order and keyword
// order are both insertion order; duplicate checks are case-sensitive.
type Store struct {
	categories []Entry
	index      map[string]int
}

// NewStore creates an empty dictionary store.
func NewStore() *Store {
	return &Store{
		index: make(map[string]int),
	}
}

// Categories returns the category names in insertion order.
func (s *Store) Categories() []string {
	names := make([]string, len(s.categories))
	for i, c := range s.categories {
		names[i] = c.Category
	}
	return names
}

// Len returns the number of categories.
func (s *Store) Len() int {
	return len(s.categories)
}

// Keywords returns the keyword list of a category in insertion order.
func (s *Store) Keywords(category string) ([]string, error) {
	i, ok := s.index[category]
	if !ok {
		return nil, &classifyerror.NotFoundError{Kind: "category", Name: category}
	}
	return append([]string(nil), s.categories[i].Keywords...), nil
}

// AddCategory inserts a new category with an empty keyword list.
func (s *Store) AddCategory(name string) error {
	if name == "" {
		return &classifyerror.DuplicateCategoryError{Name: ""}
	}
	if _, ok := s.index[name]; ok {
		return &classifyerror.DuplicateCategoryError{Name: name}
	}
	s.index[name] = len(s.categories)
	s.categories = append(s.categories, Entry{Category: name})
	return nil
}

// DeleteCategory removes a category and all its keywords.
func (s *Store) DeleteCategory(name string) error {
	i, ok := s.index[name]
	if !ok {
		return &classifyerror.NotFoundError{Kind: "category", Name: name}
	}
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.categories); j++ {
		s.index[s.categories[j].Category] = j
	}
	return nil
}

// AddKeyword appends a keyword to a category, preserving insertion order.
// Adding a keyword the category already has fails with DuplicateKeywordError.
func (s *Store) AddKeyword(category, keyword string) error {
	i, ok := s.index[category]
	if !ok {
		return &classifyerror.NotFoundError{Kind: "category", Name: category}
	}
	if keyword == "" {
		return &classifyerror.InvalidFormatError{Reason: "keyword must not be empty"}
	}
	for _, kw := range s.categories[i].Keywords {
		if kw == keyword {
			return &classifyerror.DuplicateKeywordError{Category: category, Keyword: keyword}
		}
	}
	s.categories[i].Keywords = append(s.categories[i].Keywords, keyword)
	return nil
}

// RemoveKeyword removes a keyword from a category.
func (s *Store) RemoveKeyword(category, keyword string) error {
	i, ok := s.index[category]
	if !ok {
		return &classifyerror.NotFoundError{Kind: "category", Name: category}
	}
	for j, kw := range s.categories[i].Keywords {
		if kw == keyword {
			s.categories[i].Keywords = append(s.categories[i].Keywords[:j], s.categories[i].Keywords[j+1:]...)
			return nil
		}
	}
	return &classifyerror.NotFoundError{Kind: "keyword", Name: keyword}
}

// ReplaceKeywords replaces a category's keyword list wholesale. Empty
// strings are dropped and duplicates collapse to their first occurrence,
// matching the behavior of re-parsing an edited keyword list.
func (s *Store) ReplaceKeywords(category string, keywords []string) error {
	i, ok := s.index[category]
	if !ok {
		return &classifyerror.NotFoundError{Kind: "category", Name: category}
	}
	s.categories[i].Keywords = dedupeKeywords(keywords)
	return nil
}

// ReplaceAll replaces the whole store with the given entries. On error the
// store is left untouched.
func (s *Store) ReplaceAll(entries []Entry) error {
	categories, index, err := buildCategories(entries)
	if err != nil {
		return err
	}
	s.categories = categories
	s.index = index
	return nil
}

// Export returns the current mapping as a deep copy, in insertion order.
func (s *Store) Export() []Entry {
	return s.copyEntries()
}

// Snapshot returns an immutable copy of the store for one classification
// pass. Mutating the store afterwards does not affect the snapshot.
func (s *Store) Snapshot() Snapshot {
	return Snapshot(s.copyEntries())
}

func (s *Store) copyEntries() []Entry {
	entries := make([]Entry, len(s.categories))
	for i, c := range s.categories {
		entries[i] = Entry{
			Category: c.Category,
			Keywords: append([]string(nil), c.Keywords...),
		}
	}
	return entries
}

func buildCategories(entries []Entry) ([]Entry, map[string]int, error) {
	categories := make([]Entry, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.Category == "" {
			return nil, nil, &classifyerror.InvalidFormatError{Reason: "category name must not be empty"}
		}
		if _, ok := index[e.Category]; ok {
			return nil, nil, &classifyerror.InvalidFormatError{Reason: "duplicate category: " + e.Category}
		}
		index[e.Category] = len(categories)
		categories = append(categories, Entry{
			Category: e.Category,
			Keywords: dedupeKeywords(e.Keywords),
		})
	}
	return categories, index, nil
}

func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	var out []string
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
