package jobs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSweepStaleArtifacts(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, "VS-2026-10000_abcd1234.pdf")
	require.NoError(t, os.WriteFile(stale, []byte("%PDF-"), 0o644))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	fresh := filepath.Join(dir, "VS-2026-10001_ef567890.png")
	require.NoError(t, os.WriteFile(fresh, []byte("png"), 0o644))

	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("keep"), 0o644))
	require.NoError(t, os.Chtimes(other, old, old))

	SweepStaleArtifacts(dir)()

	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err), "stale pdf must be removed")
	_, err = os.Stat(fresh)
	require.NoError(t, err, "fresh temp file must survive")
	_, err = os.Stat(other)
	require.NoError(t, err, "unrelated files are left alone")
}

func TestSweepStaleArtifactsMissingDir(t *testing.T) {
	require.NotPanics(t, func() {
		SweepStaleArtifacts(filepath.Join(t.TempDir(), "nope"))()
	})
}
