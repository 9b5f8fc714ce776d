package testutil

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/click-backend/internal/pk"
)

func TestWriteStubCreatesExecutableThatSucceeds(t *testing.T) {
	dir := t.TempDir()
	stubPath := WriteStub(t, dir, "ok-stub")

	info, err := os.Stat(stubPath)
	if err != nil {
		t.Fatalf("stat stub: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Fatalf("expected executable mode, got %#o", info.Mode().Perm())
	}

	cmd := exec.Command(stubPath)
	if err := cmd.Run(); err != nil {
		t.Fatalf("expected success exit, got %v", err)
	}
}

func TestWriteStubWithExitCreatesExecutableWithRequestedExitCode(t *testing.T) {
	dir := t.TempDir()
	stubPath := WriteStubWithExit(t, dir, "exit-stub", 7)

	err := exec.Command(stubPath).Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 7 {
		t.Fatalf("expected exit code 7, got %d", exitErr.ExitCode())
	}
}

func TestWriteScriptRunsBody(t *testing.T) {
	dir := t.TempDir()
	stubPath := WriteScript(t, dir, "echo-stub", "echo \"$1\"\n")

	out, err := exec.Command(stubPath, "hello").Output()
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestRecorderRecordsAndFails(t *testing.T) {
	boom := errors.New("boom")
	r := &Recorder{FailOn: "package:installed", Err: boom}

	require.NoError(t, r.ReportProgress(pk.PercentageUnknown))
	require.NoError(t, r.ReportStatus(pk.StatusInstall))
	require.NoError(t, r.SetAllowCancel(false))
	require.NoError(t, r.ReportPackage(pk.NewPackageID("a", "1"), pk.InfoInstalling, ""))
	require.ErrorIs(t, r.ReportPackage(pk.NewPackageID("a", "1"), pk.InfoInstalled, ""), boom)
	require.NoError(t, r.ReportError(pk.ErrorInternalError, "x"))
	require.NoError(t, r.Finished())

	assert.Equal(t, []string{
		"progress:101",
		"status:install",
		"allow-cancel:false",
		"package:installing:a;1;;",
		"error:internal-error:x",
		"finished",
	}, r.Events)
}
