package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	file := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, Init(Options{File: file, Level: slog.LevelInfo, MaxSizeMB: 1}))

	slog.Debug("hidden below level")
	slog.Warn("sidecar not found", "name", "starscope-sidecar")
	require.NoError(t, Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "name=starscope-sidecar")
	assert.Contains(t, out, "source=logging_test.go:")
	assert.NotContains(t, out, "hidden below level")

	assert.NoError(t, Close())
}
