package models

// CategoryConfig represents one keyword category in a dictionary file.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// DictionaryConfig represents the structure of the dictionary YAML file.
type DictionaryConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
