package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbright/punkt/internal/version"
)

func TestResolveLogPathUsesXDGStateHome(t *testing.T) {
	xdgStateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", xdgStateHome)
	t.Setenv("HOME", t.TempDir())

	path, err := resolveLogPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(xdgStateHome, "punkt", "log.jsonl"), path)
}

func TestResolveLogPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", home)

	path, err := resolveLogPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "state", "punkt", "log.jsonl"), path)
}

func TestNewCreatesWritableJSONLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	runtime, err := New()
	require.NoError(t, err)

	runtime.Logger.Info("unit-test-log", "component", "logging")
	require.NoError(t, runtime.Close())

	contents, err := os.ReadFile(runtime.Path)
	require.NoError(t, err)
	require.Contains(t, string(contents), `"msg":"unit-test-log"`)
	require.Contains(t, string(contents), `"component":"logging"`)
	require.Contains(t, string(contents), `"version":"`+version.Version+`"`)
	require.Contains(t, string(contents), `"run_id":"`)

	stat, err := os.Stat(runtime.Path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
}

func TestNewAssignsDistinctRunIDsAcrossInvocations(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	first, err := New()
	require.NoError(t, err)
	first.Logger.Info("first-run")
	require.NoError(t, first.Close())

	t.Setenv("XDG_STATE_HOME", t.TempDir())

	second, err := New()
	require.NoError(t, err)
	second.Logger.Info("second-run")
	require.NoError(t, second.Close())

	firstID := runID(t, first.Path)
	secondID := runID(t, second.Path)
	require.NotEqual(t, firstID, secondID)
}

// runID extracts the run_id field a freshly-written log line carries, by
// scanning the file's raw JSON for the field.
func runID(t *testing.T, path string) string {
	t.Helper()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	const key = `"run_id":"`
	idx := indexOfLogging(t, string(contents), key)
	rest := string(contents)[idx+len(key):]
	end := 0
	for end < len(rest) && rest[end] != '"' {
		end++
	}
	return rest[:end]
}

func indexOfLogging(t *testing.T, haystack, needle string) int {
	t.Helper()
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	t.Fatalf("expected %q to contain %q", haystack, needle)
	return -1
}
