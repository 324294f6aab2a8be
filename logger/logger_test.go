package logger

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/leadsdesk/config"
	"testing"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(&config.LogConfig{Level: "warn", Format: "json"}, buf)
	log.Info().Msg("skipped")
	log.Warn().Str("attempt", "a1").Msg("refresh failed")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "a1", entry["attempt"])
	assert.Equal(t, "refresh failed", entry["message"])
}

func TestNew_InvalidLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(&config.LogConfig{Level: "loud", Format: "console"}, buf)
	log.Debug().Msg("skipped")
	log.Info().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "skipped")
}
