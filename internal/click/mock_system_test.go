package click

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Stat and MkdirAll fall back to RealSystem so tests can use t.TempDir() fixtures.
// RunCommand fails fast: tests must never reach a real click binary by accident.
type testSystem struct {
	RealSystem

	StatFunc       func(name string) (os.FileInfo, error)
	MkdirAllFunc   func(path string, perm os.FileMode) error
	RunCommandFunc func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)
}

func (s *testSystem) Stat(name string) (os.FileInfo, error) {
	if s.StatFunc != nil {
		return s.StatFunc(name)
	}
	return s.RealSystem.Stat(name)
}

func (s *testSystem) MkdirAll(path string, perm os.FileMode) error {
	if s.MkdirAllFunc != nil {
		return s.MkdirAllFunc(path, perm)
	}
	return s.RealSystem.MkdirAll(path, perm)
}

func (s *testSystem) RunCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if s.RunCommandFunc != nil {
		return s.RunCommandFunc(ctx, name, args...)
	}
	return nil, nil, fmt.Errorf("%w: RunCommand", errNotMocked)
}
