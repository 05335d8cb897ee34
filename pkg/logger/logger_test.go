package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesRotatedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(LogOption{Format: "json", LogDir: dir, Level: "debug"}))
	defer func() {
		Sync()
		_ = Init(LogOption{})
	}()

	Infof("hello %s", "solana")
	Debugf("debug line")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, defaultLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello solana")
	assert.Contains(t, string(data), "debug line")
}

func TestInit_InvalidLevel(t *testing.T) {
	err := Init(LogOption{Level: "loud"})
	assert.Error(t, err)
}

func TestInit_LevelFilters(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(LogOption{LogDir: dir, Level: "error"}))
	defer func() {
		Sync()
		_ = Init(LogOption{})
	}()

	Infof("should not appear")
	Errorf("should appear")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, defaultLogFile))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "should not appear")
	assert.Contains(t, string(data), "should appear")
}

func TestInit_WarnLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(LogOption{Format: "json", LogDir: dir, Level: "warn"}))
	defer func() {
		Sync()
		_ = Init(LogOption{})
	}()

	Infof("info dropped")
	Warnf("literal mode %s", "enabled")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, defaultLogFile))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "info dropped")
	assert.Contains(t, string(data), "literal mode enabled")
	assert.Contains(t, string(data), `"level":"warn"`)
}
