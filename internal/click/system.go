package click

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// System abstracts the OS operations needed by the click engine.
// Tests substitute a fake to script tool output without a click installation.
type System interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	// RunCommand runs name with args and returns its captured stdout and stderr.
	RunCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RunCommand runs name with args, capturing stdout and stderr separately.
func (RealSystem) RunCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
