package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("xml"))
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "vetctl", Out: &buf})

	log.Debug("hidden", nil)
	log.With(map[string]any{"route": "client"}).Info("gateway request", map[string]any{"rows": 2, "": "skip"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "gateway request", entry["msg"])
	assert.Equal(t, "vetctl", entry["app"])
	assert.Equal(t, "client", entry["route"])
	assert.Equal(t, float64(2), entry["rows"])
	assert.NotContains(t, entry, "")
}

func TestTextOutputIsSorted(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Level: Debug, Out: &buf}).Warn("x", map[string]any{"b": 1, "a": 2})
	out := buf.String()
	assert.Less(t, strings.Index(out, "a=2"), strings.Index(out, "b=1"))
}
