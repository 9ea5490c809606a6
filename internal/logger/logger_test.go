package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONOutsideLocal(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "production", "info")
	require.NoError(t, err)

	log.Info("taco created", Err(errors.New("boom")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "taco created", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
}

func TestNew_TextLocal(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "local", "debug")
	require.NoError(t, err)

	log.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "production", "warn")
	require.NoError(t, err)

	log.Info("dropped")
	assert.Empty(t, buf.String())
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "local", "verbose")
	assert.Error(t, err)
}
