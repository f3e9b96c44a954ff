package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger_WritesRotatedFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := InitLogger("event-planner", LogConfig{Path: dir, Level: "warn", MaxSizeMB: 1}, false)
	require.NoError(t, err)

	logger.Info("dropped below level")
	logger.Warn("venue lock slow", zap.String("venue_id", "hall-a"))
	_ = logger.Sync()

	raw, err := os.ReadFile(filepath.Join(dir, "event-planner.log"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "venue lock slow", entry["msg"])
	assert.Equal(t, "event-planner", entry["app"])
	assert.Equal(t, "hall-a", entry["venue_id"])
	assert.Contains(t, entry, "timestamp")
}

func TestInitLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := InitLogger("event-planner", LogConfig{Level: "loud"}, false)
	assert.Error(t, err)
}

func TestInitLogger_StdoutOnly(t *testing.T) {
	logger, err := InitLogger("event-planner", LogConfig{}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}
