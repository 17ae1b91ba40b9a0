// Package store provides file-backed persistence for keyword dictionaries,
// so edits made through the CLI survive between runs. The in-memory store
// itself lives in internal/dict; this package only loads and saves it.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"tactics-csv/internal/dict"
	"tactics-csv/internal/fileutils"
	"tactics-csv/internal/logging"
	"tactics-csv/internal/models"

	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// DictionaryPersistence loads and saves a dictionary store. Implemented by
// DictionaryStore for YAML files and by MockDictionaryStore in tests.
type DictionaryPersistence interface {
	Load() (*dict.Store, error)
	Save(s *dict.Store) error
}

// DictionaryStore persists dictionaries as a YAML file.
type DictionaryStore struct {
	DictionaryFile string
}

// NewDictionaryStore creates a store backed by the given YAML file. An
// empty filename means the default "dictionaries.yaml" resolved through the
// standard config locations.
func NewDictionaryStore(dictionaryFile string) *DictionaryStore {
	return &DictionaryStore{
		DictionaryFile: dictionaryFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *DictionaryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "tactics-csv", filename)
		if fileutils.FileExists(configPath) {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

func (s *DictionaryStore) filename() string {
	if s.DictionaryFile != "" {
		return s.DictionaryFile
	}
	return "dictionaries.yaml"
}

// Load reads the dictionary file and returns a populated store. A missing
// file is not an error: the seeded default dictionaries are returned so a
// fresh session always has something to classify with.
func (s *DictionaryStore) Load() (*dict.Store, error) {
	filename := s.filename()

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, filename).Debug("Dictionary file not found, using built-in defaults")
			return dict.NewSeededStore(), nil
		}
		return nil, fmt.Errorf("error resolving dictionary file: %w", err)
	}

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading dictionary file: %w", err)
	}

	entries, err := parseDictionaryFile(data)
	if err != nil {
		return nil, err
	}

	d := dict.NewStore()
	if err := d.ReplaceAll(entries); err != nil {
		return nil, fmt.Errorf("error loading dictionary file %s: %w", filePath, err)
	}
	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: d.Len()},
	).Debug("Loaded dictionaries")
	return d, nil
}

// parseDictionaryFile accepts both supported YAML shapes: the canonical
// "categories:" list and, for hand-written files, a plain mapping from
// category name to keyword list. The mapping shape keeps document order.
func parseDictionaryFile(data []byte) ([]dict.Entry, error) {
	var config models.DictionaryConfig
	if err := yaml.Unmarshal(data, &config); err == nil && len(config.Categories) > 0 {
		entries := make([]dict.Entry, 0, len(config.Categories))
		for _, c := range config.Categories {
			entries = append(entries, dict.Entry{Category: c.Name, Keywords: c.Keywords})
		}
		return entries, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing dictionary file: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("error parsing dictionary file: expected a mapping of category to keywords")
	}

	var entries []dict.Entry
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valNode := root.Content[i+1]
		var keywords []string
		if err := valNode.Decode(&keywords); err != nil {
			return nil, fmt.Errorf("error parsing keywords for category %q: %w", keyNode.Value, err)
		}
		entries = append(entries, dict.Entry{Category: keyNode.Value, Keywords: keywords})
	}
	return entries, nil
}

// Save writes the store to the dictionary file in the canonical shape. The
// file is created next to the configured path when it does not exist yet.
func (s *DictionaryStore) Save(d *dict.Store) error {
	filename := s.filename()
	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		// No existing file, write to the configured path directly.
		filePath = filename
	}

	config := models.DictionaryConfig{}
	for _, e := range d.Export() {
		config.Categories = append(config.Categories, models.CategoryConfig{
			Name:     e.Category,
			Keywords: e.Keywords,
		})
	}

	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("error encoding dictionaries: %w", err)
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := fileutils.EnsureDirectoryExists(dir); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing dictionary file: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: d.Len()},
	).Debug("Saved dictionaries")
	return nil
}
