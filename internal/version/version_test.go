package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringIncludesBuildMetadata(t *testing.T) {
	originalVersion := Version
	originalCommit := Commit
	originalDate := Date
	t.Cleanup(func() {
		Version = originalVersion
		Commit = originalCommit
		Date = originalDate
	})

	Version = "1.2.3"
	Commit = "abc123"
	Date = "2026-02-18"

	got := String()
	require.Contains(t, got, "punkt 1.2.3")
	require.Contains(t, got, "commit=abc123")
	require.Contains(t, got, "date=2026-02-18")
	require.Contains(t, got, "go=")
}

func TestReportWithNoLangShowsBundledCount(t *testing.T) {
	t.Parallel()

	got := Report("", []string{"english", "french", "german"})
	require.Contains(t, got, "[3 bundled languages]")
}

func TestReportWithBundledLangIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := Report("French", []string{"english", "french", "german"})
	require.Contains(t, got, "[lang=French: bundled]")
}

func TestReportWithNoneLangReportsEmptyTrainingData(t *testing.T) {
	t.Parallel()

	got := Report("none", []string{"english", "french"})
	require.Contains(t, got, "[lang=none: empty training data]")
}

func TestReportWithUnbundledLangIsFlagged(t *testing.T) {
	t.Parallel()

	got := Report("klingon", []string{"english", "french"})
	require.Contains(t, got, "[lang=klingon: not bundled]")
}
