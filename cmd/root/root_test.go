package root_test

import (
	"testing"

	"tactics-csv/cmd/root"
	"tactics-csv/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "tactics-csv", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "classify marketing statements")
	assert.Contains(t, root.Cmd.Long, "keyword dictionaries")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	if assert.NotNil(t, inputFlag) {
		assert.Equal(t, "i", inputFlag.Shorthand)
	}

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	if assert.NotNil(t, outputFlag) {
		assert.Equal(t, "o", outputFlag.Shorthand)
	}

	dictFlag := root.Cmd.PersistentFlags().Lookup("dict")
	if assert.NotNil(t, dictFlag) {
		assert.Equal(t, "d", dictFlag.Shorthand)
	}
}

func TestDictionaryFile_Precedence(t *testing.T) {
	origFlags := root.SharedFlags
	origCfg := root.Cfg
	defer func() {
		root.SharedFlags = origFlags
		root.Cfg = origCfg
	}()

	cfg := &config.Config{}
	cfg.Dictionary.File = "from-config.yaml"
	root.Cfg = cfg

	root.SharedFlags.Dictionary = ""
	assert.Equal(t, "from-config.yaml", root.DictionaryFile())

	root.SharedFlags.Dictionary = "from-flag.yaml"
	assert.Equal(t, "from-flag.yaml", root.DictionaryFile())
}
