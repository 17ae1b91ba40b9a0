package store

import (
	"os"
	"path/filepath"
	"testing"

	"tactics-csv/internal/dict"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryStore_LoadMissingFileSeedsDefaults(t *testing.T) {
	s := NewDictionaryStore(filepath.Join(t.TempDir(), "dictionaries.yaml"))

	d, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{dict.CategoryUrgency, dict.CategoryExclusive}, d.Categories())
}

func TestDictionaryStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionaries.yaml")
	s := NewDictionaryStore(path)

	d := dict.NewSeededStore()
	require.NoError(t, d.AddCategory("scarcity_marketing"))
	require.NoError(t, d.AddKeyword("scarcity_marketing", "only 3 left"))
	require.NoError(t, s.Save(d))

	restored, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, d.Export(), restored.Export())
}

func TestDictionaryStore_LoadCanonicalShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionaries.yaml")
	content := `categories:
  - name: urgency_marketing
    keywords:
      - hurry
      - act now
  - name: exclusive_marketing
    keywords:
      - vip
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	d, err := NewDictionaryStore(path).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"urgency_marketing", "exclusive_marketing"}, d.Categories())
	keywords, err := d.Keywords("urgency_marketing")
	require.NoError(t, err)
	assert.Equal(t, []string{"hurry", "act now"}, keywords)
}

func TestDictionaryStore_LoadPlainMappingShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionaries.yaml")
	content := `urgency_marketing:
  - hurry
exclusive_marketing:
  - vip
  - members only
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	d, err := NewDictionaryStore(path).Load()
	require.NoError(t, err)

	// mapping shape keeps document order
	assert.Equal(t, []string{"urgency_marketing", "exclusive_marketing"}, d.Categories())
	keywords, err := d.Keywords("exclusive_marketing")
	require.NoError(t, err)
	assert.Equal(t, []string{"vip", "members only"}, keywords)
}

func TestDictionaryStore_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionaries.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a\n- list\n"), 0600))

	_, err := NewDictionaryStore(path).Load()
	assert.Error(t, err)
}

func TestDictionaryStore_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dictionaries.yaml")

	require.NoError(t, NewDictionaryStore(path).Save(dict.NewSeededStore()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestMockDictionaryStore(t *testing.T) {
	m := &MockDictionaryStore{}

	d, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	require.NoError(t, d.AddCategory("extra"))
	require.NoError(t, m.Save(d))
	assert.Equal(t, 1, m.SaveCalls)

	reloaded, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.Len())
}
