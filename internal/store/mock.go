package store

import (
	"tactics-csv/internal/dict"
)

// MockDictionaryStore is an in-memory DictionaryPersistence for testing.
type MockDictionaryStore struct {
	Store *dict.Store

	// Error flags for testing error conditions
	LoadError error
	SaveError error

	SaveCalls int
}

// Load returns the mock store, seeding defaults when none was set.
func (m *MockDictionaryStore) Load() (*dict.Store, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.Store == nil {
		m.Store = dict.NewSeededStore()
	}
	return m.Store, nil
}

// Save records the store that would have been written.
func (m *MockDictionaryStore) Save(s *dict.Store) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Store = s
	m.SaveCalls++
	return nil
}
