package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter_InvalidLevelFallsBack(t *testing.T) {
	logger := NewLogrusAdapter("not-a-level", "text")
	require.NotNil(t, logger)

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestLogrusAdapter_FieldsReachOutput(t *testing.T) {
	underlying := logrus.New()
	var buf bytes.Buffer
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithField(FieldCategory, "urgency_marketing").Info("classified",
		Field{Key: FieldCount, Value: 2})

	out := buf.String()
	assert.Contains(t, out, `"category":"urgency_marketing"`)
	assert.Contains(t, out, `"count":2`)
	assert.Contains(t, out, `"msg":"classified"`)
}

func TestLogrusAdapter_WithErrorReturnsNewLogger(t *testing.T) {
	logger := NewLogrusAdapter("info", "text")
	withErr := logger.WithError(assert.AnError)
	assert.NotSame(t, logger, withErr)
}

func TestMockLogger_CapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("first", Field{Key: "k", Value: "v"})
	mock.Error("second")
	mock.Debug("third")

	assert.Len(t, mock.Entries, 3)

	infos := mock.GetEntriesByLevel("INFO")
	require.Len(t, infos, 1)
	assert.Equal(t, "first", infos[0].Message)
	assert.Equal(t, []Field{{Key: "k", Value: "v"}}, infos[0].Fields)

	mock.Clear()
	assert.Empty(t, mock.Entries)
}

func TestMockLogger_WithErrorAttachesError(t *testing.T) {
	mock := &MockLogger{}

	child, ok := mock.WithError(assert.AnError).(*MockLogger)
	require.True(t, ok)
	child.Error("failed")

	entries := child.GetEntriesByLevel("ERROR")
	require.Len(t, entries, 1)
	assert.Equal(t, assert.AnError, entries[0].Error)
}
