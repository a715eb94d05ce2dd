package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hanzi.log")

	log, err := New("production", "info", path)
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("quiz finished")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"quiz finished"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_LevelOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanzi.log")

	log, err := New("development", "warn", path)
	require.NoError(t, err)
	log.Info("skipped")
	log.Warn("kept")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.NotContains(t, string(data), "skipped")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("development", "loud", "")
	assert.Error(t, err)
}
