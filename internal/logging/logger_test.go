package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", "json", &buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	WithComponent(log, "espn").Info("fetched league")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fetched league", entry["msg"])
	assert.Equal(t, "espn", entry["component"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log := New("WARN", "text", &buf)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	assert.Empty(t, buf.String())
	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("loud", "text", &buf)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "invalid_level=loud")
}
