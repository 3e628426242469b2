package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--data-dir", "/tmp/starscope",
		"--sidecar", "/opt/starscope/starscope-sidecar",
		"--log-level", "debug",
		"--headless",
	}))

	flags := cmd.Flags()
	dataDir, err := flags.GetString("data-dir")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/starscope", dataDir)

	headless, err := flags.GetBool("headless")
	require.NoError(t, err)
	assert.True(t, headless)

	dev, err := flags.GetBool("dev")
	require.NoError(t, err)
	assert.False(t, dev)
}

func TestSingleInstance(t *testing.T) {
	dir := t.TempDir()

	release, err := ensureSingleInstance(dir)
	require.NoError(t, err)

	_, err = ensureSingleInstance(dir)
	if err == nil {
		t.Skip("platform lock is re-entrant within one process")
	}
	assert.ErrorIs(t, err, errAlreadyRunning)

	release()
	release2, err := ensureSingleInstance(dir)
	require.NoError(t, err)
	release2()
}
