package main

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/click-backend/internal/config"
	"github.com/conn-castle/click-backend/internal/dispatch"
	"github.com/conn-castle/click-backend/internal/testutil"
)

// setupClick writes a fake click tool and a config pointing at it, and returns
// the package directory. Packages named bad*.click fail audit; broken*.click fail install.
func setupClick(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	clickPath := testutil.WriteScript(t, dir, "click", `case "$1" in
info)
  base=$(basename "$2" .click)
  case "$base" in
  bad*) echo "corrupt header" >&2; exit 1 ;;
  esac
  echo "{\"name\": \"$base\", \"version\": \"1.0\"}"
  ;;
install)
  case "$3" in
  *broken*) echo "Framework missing" >&2; exit 1 ;;
  esac
  ;;
esac
`)
	cfgPath := testutil.WriteFile(t, dir, "click.toml",
		"[engine]\nroot = \""+filepath.Join(dir, "root")+"\"\nclick_binary = \""+clickPath+"\"\n\n[log]\nlevel = \"error\"\n")
	original := getenv
	t.Cleanup(func() { getenv = original })
	getenv = func(key string) string {
		if key == config.EnvConfigPath {
			return cfgPath
		}
		return ""
	}
	pkgDir := t.TempDir()
	for _, name := range []string{"appA.click", "appB.click", "bad.click", "broken.click"} {
		testutil.WriteFile(t, pkgDir, name, "payload")
	}
	return pkgDir
}

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"click-backend", "--version"}, strings.NewReader(""), &out, &out))
	assert.Contains(t, out.String(), Version)
}

func TestInstallFilesCommand(t *testing.T) {
	pkgDir := setupClick(t)
	var stdout, stderr bytes.Buffer
	files := filepath.Join(pkgDir, "appA.click") + "|" + filepath.Join(pkgDir, "appB.click")

	err := execute([]string{"click-backend", "install-files", "none", files}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	assert.Equal(t, "no-percentage-updates\n"+
		"status\tinstall\n"+
		"allow-cancel\tfalse\n"+
		"package\tinstalling\tappA;1.0;;\t\n"+
		"package\tinstalled\tappA;1.0;;\t\n"+
		"package\tinstalling\tappB;1.0;;\t\n"+
		"package\tinstalled\tappB;1.0;;\t\n"+
		"finished\n", stdout.String())
}

func TestInstallFilesAuditFailureExitsSilently(t *testing.T) {
	pkgDir := setupClick(t)
	var stdout, stderr bytes.Buffer
	code := 0
	files := filepath.Join(pkgDir, "bad.click") + "|" + filepath.Join(pkgDir, "appA.click")

	runMain([]string{"click-backend", "install-files", "none", files}, strings.NewReader(""), &stdout, &stderr, func(c int) { code = c })
	assert.Equal(t, 1, code)
	assert.NotContains(t, stderr.String(), dispatch.ErrTransactionFailed.Error())
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[3], "error\tinvalid-package-file\taudit "), lines[3])
	assert.Contains(t, lines[3], "corrupt header")
	assert.NotContains(t, stdout.String(), "finished")
}

func TestInstallFilesInstallFailure(t *testing.T) {
	pkgDir := setupClick(t)
	var stdout bytes.Buffer

	err := execute([]string{"click-backend", "install-files", "none", filepath.Join(pkgDir, "broken.click")}, strings.NewReader(""), &stdout, io.Discard)
	require.ErrorIs(t, err, dispatch.ErrTransactionFailed)
	assert.Contains(t, stdout.String(), "package\tinstalling\tbroken;1.0;;\t\n")
	assert.Contains(t, stdout.String(), "error\tinternal-error\tinstall ")
	assert.Contains(t, stdout.String(), "Framework missing")
	assert.NotContains(t, stdout.String(), "package\tinstalled")
}

func TestDispatcherLoopFromStdin(t *testing.T) {
	pkgDir := setupClick(t)
	var stdout bytes.Buffer
	stdin := strings.NewReader("install-files\tnone\t" + filepath.Join(pkgDir, "appA.click") + "\nrefresh-cache\tfalse\nexit\n")

	require.NoError(t, execute([]string{"click-backend"}, stdin, &stdout, io.Discard))
	out := stdout.String()
	assert.Contains(t, out, "package\tinstalled\tappA;1.0;;\t\nfinished\n")
	assert.Contains(t, out, "error\tnot-supported\tThis function is not implemented in this backend: refresh-cache\nfinished\n")
}

func TestUnknownCommandIsNotSupported(t *testing.T) {
	setupClick(t)
	var stdout bytes.Buffer

	require.NoError(t, execute([]string{"click-backend", "get-packages", "installed"}, strings.NewReader(""), &stdout, io.Discard))
	assert.Equal(t, "error\tnot-supported\tThis function is not implemented in this backend: get-packages\nfinished\n", stdout.String())
}

func TestRunMainReportsConfigErrors(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testutil.WriteFile(t, dir, "click.toml", "[engine]\nroot = \"relative\"\n")
	original := getenv
	t.Cleanup(func() { getenv = original })
	getenv = func(key string) string {
		if key == config.EnvConfigPath {
			return cfgPath
		}
		return ""
	}

	var stdout, stderr bytes.Buffer
	code := 0
	runMain([]string{"click-backend", "install-files", "none", "/tmp/a.click"}, strings.NewReader(""), &stdout, &stderr, func(c int) { code = c })
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "absolute path")
}

func TestRunMainSuccessDoesNotExit(t *testing.T) {
	original := executeFunc
	t.Cleanup(func() { executeFunc = original })
	executeFunc = func([]string, io.Reader, io.Writer, io.Writer) error { return nil }

	called := false
	runMain(nil, strings.NewReader(""), io.Discard, io.Discard, func(int) { called = true })
	assert.False(t, called)
}

func TestRunMainPrintsUnexpectedErrors(t *testing.T) {
	original := executeFunc
	t.Cleanup(func() { executeFunc = original })
	executeFunc = func([]string, io.Reader, io.Writer, io.Writer) error { return errors.New("stdout closed") }

	var stderr bytes.Buffer
	code := 0
	runMain([]string{"click-backend"}, strings.NewReader(""), io.Discard, &stderr, func(c int) { code = c })
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "stdout closed")
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origBuild })

	Version, Commit, BuildDate = "1.2.0", "unknown", "unknown"
	assert.Equal(t, "1.2.0", versionString())

	Commit, BuildDate = "abc123", "2026-10-19"
	assert.Equal(t, "1.2.0 (commit abc123, built 2026-10-19)", versionString())
}
