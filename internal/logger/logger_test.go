package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/samvad-hq/vzaar-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWriterRespectsLevel(t *testing.T) {
	t.Cleanup(func() { S = nil })

	var buf bytes.Buffer
	_, err := InitWriter(&config.Config{LogLevel: "warn"}, &buf)
	require.NoError(t, err)

	var log Logger = ZapLogger{}
	log.InfoObj("dropped", "k", 1)
	log.WarnObj("kept", "vzaar_status_error", map[string]any{"status": 500})
	require.NoError(t, Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.Contains(t, entry, "ts")
	assert.EqualValues(t, 500, entry["vzaar_status_error"].(map[string]any)["status"])
}

func TestHelpersAreSafeBeforeInit(t *testing.T) {
	S = nil
	InfoObj("x", "k", 1)
	ErrorObj("x", "k", 1)
	assert.NoError(t, Close())

	var log Logger = &NopLogger{}
	log.DebugObj("x", "k", 1)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("DEBUG").String())
	assert.Equal(t, "warn", parseLevel("warning").String())
	assert.Equal(t, "error", parseLevel("error").String())
	assert.Equal(t, "info", parseLevel("bogus").String())
}
