package graph

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statbar/statbar/internal/logger"
)

func dirEntryCount(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestLaunchMissingBinary(t *testing.T) {
	dir := t.TempDir()
	buf := logger.NewBufferLogger()
	l := NewLauncher("/nonexistent/statbar-no-such-renderer", dir, buf)

	// Must not panic or error out; the failure is logged and absorbed.
	l.Launch(DefaultRequest())

	assert.True(t, buf.HasLevel("error"))
	// The request file is cleaned up after the failed spawn.
	assert.Equal(t, 0, dirEntryCount(t, dir))
}

func TestLaunchSpawnsAndReapsRequestFile(t *testing.T) {
	dir := t.TempDir()
	buf := logger.NewBufferLogger()
	l := NewLauncher("true", dir, buf)

	l.Launch(DefaultRequest())

	assert.False(t, buf.HasLevel("error"))

	// The reaper removes the request file once the process exits.
	require.Eventually(t, func() bool {
		return dirEntryCount(t, dir) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestLaunchPassesRequestFileToRenderer(t *testing.T) {
	dir := t.TempDir()
	out := dir + "/seen-args"

	// A stand-in renderer that records its argv so we can verify the
	// single-path calling convention.
	script := "#!/bin/sh\necho \"$@\" > " + out + "\n"
	bin := dir + "/fake-renderer"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))

	l := NewLauncher(bin, dir, logger.Noop())
	l.Launch(DefaultRequest())

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && len(data) > 0
	}, 2*time.Second, 10*time.Millisecond)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	args := strings.Fields(string(data))
	require.Len(t, args, 1)
	assert.Contains(t, args[0], "statbar-graph-")
	assert.True(t, strings.HasSuffix(args[0], ".json"))
}

func TestLaunchUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	buf := logger.NewBufferLogger()
	l := NewLauncher("true", dir, buf)

	l.Launch(DefaultRequest())
	assert.True(t, buf.HasLevel("error"))
}
