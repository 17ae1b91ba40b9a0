package tag_test

import (
	"testing"

	"tactics-csv/cmd/tag"

	"github.com/stretchr/testify/assert"
)

func TestTagCommand_Metadata(t *testing.T) {
	assert.Equal(t, "tag", tag.Cmd.Use)
	assert.Contains(t, tag.Cmd.Short, "single statement")
	assert.NotNil(t, tag.Cmd.Run)
}

func TestTagCommand_Flags(t *testing.T) {
	statementFlag := tag.Cmd.Flags().Lookup("statement")
	if assert.NotNil(t, statementFlag) {
		assert.Equal(t, "s", statementFlag.Shorthand)
	}

	jsonFlag := tag.Cmd.Flags().Lookup("json")
	if assert.NotNil(t, jsonFlag) {
		assert.Equal(t, "false", jsonFlag.DefValue)
	}
}
