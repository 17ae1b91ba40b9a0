package classify_test

import (
	"testing"

	"tactics-csv/cmd/classify"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCommand_Metadata(t *testing.T) {
	assert.Equal(t, "classify", classify.Cmd.Use)
	assert.Contains(t, classify.Cmd.Short, "Classify the statements")
	assert.Contains(t, classify.Cmd.Long, "three extra columns per category")
	assert.NotNil(t, classify.Cmd.Run)
}

func TestClassifyCommand_Flags(t *testing.T) {
	columnFlag := classify.Cmd.Flags().Lookup("column")
	if assert.NotNil(t, columnFlag) {
		assert.Equal(t, "c", columnFlag.Shorthand)
	}

	summaryFlag := classify.Cmd.Flags().Lookup("summary")
	if assert.NotNil(t, summaryFlag) {
		assert.Equal(t, "s", summaryFlag.Shorthand)
	}
}
