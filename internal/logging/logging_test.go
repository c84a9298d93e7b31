package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown", "component", "button")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "button", entry["component"])
}

func TestNewDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "DEBUG", Writer: &buf})
	require.NoError(t, err)

	l.With("command", "add").Debug("resolved", "count", 3)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "add", entry["command"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	l.Error(errors.New("boom"), "install failed")
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	var l *Logger
	l.Warn("ignored")
	l.Error(nil, "ignored")
	assert.Nil(t, l.With("k", "v"))

	Nop().Warn("ignored")
}
