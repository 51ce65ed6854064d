package jobset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
}

func TestGlobListerMatchesPrefix(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "job.001.in", "job.002.in", "jobs.txt", "other.001.in")

	names, err := GlobLister{}.List(filepath.Join(dir, "job"))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, "job.001.in"),
		filepath.Join(dir, "job.002.in"),
		filepath.Join(dir, "jobs.txt"),
	}, names)
}

func TestGlobListerSkipsHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "job.001.in", ".DS_Store", ".nfs0001")

	names, err := GlobLister{}.List(dir + string(filepath.Separator))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "job.001.in")}, names)
}

func TestGlobListerDotPrefixMatchesHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, ".job.001.in", ".job.002.in", "job.003.in")

	names, err := GlobLister{}.List(filepath.Join(dir, ".job"))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, ".job.001.in"),
		filepath.Join(dir, ".job.002.in"),
	}, names)
}

func TestGlobListerNoMatches(t *testing.T) {
	names, err := GlobLister{}.List(filepath.Join(t.TempDir(), "nothing"))
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestGlobListerBadPattern(t *testing.T) {
	_, err := GlobLister{}.List("job[")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrListing))
	require.True(t, errors.Is(err, filepath.ErrBadPattern))
}

func TestStaticLister(t *testing.T) {
	l := StaticLister{"job": {"job.2.in", "job.1.in"}}

	names, err := l.List("job")
	require.NoError(t, err)
	require.Equal(t, []string{"job.1.in", "job.2.in"}, names)

	names, err = l.List("missing")
	require.NoError(t, err)
	require.Empty(t, names)
}
