package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), ".mentoreval")
	dirOverride = dir
	t.Cleanup(func() { dirOverride = "" })
	return dir
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	useTempDir(t)

	assert.False(t, Exists())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	dir := useTempDir(t)

	require.NoError(t, Save(&Config{GeminiModel: "gemini-2.5-pro", LogLevel: "debug"}))
	assert.True(t, Exists())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.Equal(t, filepath.Join(dir, "config.json"), Path())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadAppliesDefaults(t *testing.T) {
	useTempDir(t)
	require.NoError(t, Save(&Config{LogLevel: " INFO "}))

	cfg, err := LoadFromFile()
	require.NoError(t, err)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	dir := useTempDir(t)
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(Path(), []byte("{not json"), 0600))

	_, err := Load()
	assert.ErrorContains(t, err, "invalid config file")
}

func TestConfigNeverCarriesAPIKey(t *testing.T) {
	useTempDir(t)
	require.NoError(t, Save(Default()))

	data, err := os.ReadFile(Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "key")
}

func TestSlogLevelFallback(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelWarn},
		{"", slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, (&Config{LogLevel: tt.level}).SlogLevel())
		})
	}
}
