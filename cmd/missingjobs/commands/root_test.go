package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobtools/missingjobs/pkg/jobset"
)

func runCommand(t *testing.T, lister jobset.Lister, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newCommand(lister)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	code = execute(cmd)
	return out.String(), errOut.String(), code
}

func scenarioLister() jobset.StaticLister {
	return jobset.StaticLister{
		"job": {"job.001.in", "job.002.in", "job.003.in"},
		"res": {"res.001.out", "res.003.out"},
	}
}

func TestRootCommandDefaultMode(t *testing.T) {
	stdout, stderr, code := runCommand(t, scenarioLister(), "job", "res")
	require.Equal(t, 0, code)
	require.Equal(t, "job.002\n", stdout)
	require.Empty(t, stderr)
}

func TestRootCommandCSVMode(t *testing.T) {
	stdout, _, code := runCommand(t, scenarioLister(), "--csv", "job", "res")
	require.Equal(t, 0, code)
	require.Equal(t, "2\n", stdout)
}

func TestRootCommandNothingMissing(t *testing.T) {
	lister := jobset.StaticLister{
		"job": {"job.010.in"},
		"res": {"res.010.out", "res.020.out"},
	}

	for _, args := range [][]string{{"job", "res"}, {"--csv", "job", "res"}} {
		stdout, stderr, code := runCommand(t, lister, args...)
		require.Equal(t, 0, code)
		require.Empty(t, stdout)
		require.Empty(t, stderr)
	}
}

func TestRootCommandFailsOnMalformedName(t *testing.T) {
	lister := jobset.StaticLister{"job": {"job", "job.001.in"}}

	stdout, stderr, code := runCommand(t, lister, "--no-color", "job", "res")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Error: malformed job file name")
	require.Contains(t, stderr, `"job"`)
}

func TestRootCommandSkipMalformedWithSummary(t *testing.T) {
	lister := jobset.StaticLister{
		"job": {"job", "job.001.in", "job.002.in"},
		"res": {"res.002.out"},
	}

	stdout, stderr, code := runCommand(t, lister, "--skip-malformed", "--summary", "--no-color", "job", "res")
	require.Equal(t, 0, code)
	require.Equal(t, "job.001\n", stdout)
	require.Contains(t, stderr, "✗ 1 of 2 jobs missing (1 malformed name skipped)")
}

func TestRootCommandSkipMalformedWarnsWithoutSummary(t *testing.T) {
	lister := jobset.StaticLister{"job": {"job", "job.001.in"}}

	stdout, stderr, code := runCommand(t, lister, "--skip-malformed", "--no-color", "job", "res")
	require.Equal(t, 0, code)
	require.Equal(t, "job.001\n", stdout)
	require.Equal(t, "Warning: skipped malformed job file name \"job\"\n", stderr)
}

func TestRootCommandNumericSort(t *testing.T) {
	lister := jobset.StaticLister{"job": {"job.9.in", "job.10.in"}}

	stdout, _, code := runCommand(t, lister, "job", "res")
	require.Equal(t, 0, code)
	require.Equal(t, "job.10\njob.9\n", stdout)

	stdout, _, code = runCommand(t, lister, "--sort", "numeric", "job", "res")
	require.Equal(t, 0, code)
	require.Equal(t, "job.9\njob.10\n", stdout)
}

func TestRootCommandJSONOutput(t *testing.T) {
	stdout, _, code := runCommand(t, scenarioLister(), "-o", "json", "job", "res")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, `"file": "job.002"`)
	require.Contains(t, stdout, `"input_count": 3`)
}

func TestRootCommandRequiresTwoArgs(t *testing.T) {
	_, stderr, code := runCommand(t, scenarioLister(), "job")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "accepts 2 arg(s), received 1")
}

func TestRootCommandEarlyErrorHonorsJSONOutput(t *testing.T) {
	stdout, stderr, code := runCommand(t, scenarioLister(), "-o", "json", "job")
	require.Equal(t, 1, code)
	require.Contains(t, stdout, `"success": false`)
	require.Contains(t, stdout, "accepts 2 arg(s), received 1")
	require.Empty(t, stderr)
}

func TestRootCommandRejectsInvalidConfig(t *testing.T) {
	_, stderr, code := runCommand(t, scenarioLister(), "--no-color", "--sort", "random", "job", "res")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "invalid configuration")
}

func TestRootCommandReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missingjobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  csv: true\n"), 0o644))

	stdout, _, code := runCommand(t, scenarioLister(), "--config", path, "job", "res")
	require.Equal(t, 0, code)
	require.Equal(t, "2\n", stdout)
}

func TestRootCommandOnFilesystem(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"job.001.in", "job.002.in", "job.003.in", "job.001.out", "job.003.out"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	inbase := filepath.Join(dir, "job")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	// Input and output share a base here: every file starts with "job",
	// so both sets are {001, 002, 003} and nothing is missing.
	cmd.SetArgs([]string{inbase, inbase})
	require.Equal(t, 0, execute(cmd))
	require.Empty(t, out.String())

	require.NoError(t, os.Mkdir(filepath.Join(dir, "done"), 0o755))
	for _, name := range []string{"job.001.out", "job.003.out"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "done", name), nil, 0o600))
	}

	cmd = NewCommand()
	out.Reset()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{inbase, filepath.Join(dir, "done", "job")})
	require.Equal(t, 0, execute(cmd))
	require.Equal(t, inbase+".002\n", out.String())
}

func TestRootCommandReadsDefaultConfigFile(t *testing.T) {
	xdg := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "missingjobs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "missingjobs", "config.yaml"), []byte("output:\n  mode: csv\n"), 0o644))

	cmd := newCommand(scenarioLister())
	t.Setenv("XDG_CONFIG_HOME", xdg)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"job", "res"})

	require.Equal(t, 0, execute(cmd))
	require.Equal(t, "2\n", out.String())
}

func TestRootCommandVersionFlag(t *testing.T) {
	stdout, _, code := runCommand(t, scenarioLister(), "--version")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "missingjobs version")
}
