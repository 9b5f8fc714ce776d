// Package click audits and installs click package files by driving the click tool.
package click

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/click-backend/internal/messages"
	"github.com/conn-castle/click-backend/internal/pk"
)

// DefaultRoot is the install root PackageKit-visible click packages live under.
const DefaultRoot = "/opt/click.ubuntu.com"

// DefaultBinary is the click tool looked up on PATH.
const DefaultBinary = "click"

// LockFileName is the lock file created in the install root when no lock path is set.
const LockFileName = ".click-backend.lock"

// Options configures an Engine.
type Options struct {
	// Root is the install root passed to `click install --root`.
	Root string
	// Binary is the click executable; DefaultBinary when empty.
	Binary string
	// ForceMissingFramework lets installs proceed when the package framework is absent.
	ForceMissingFramework bool
	// LockPath serializes installs into Root; Root/LockFileName when empty.
	LockPath string
	Logger   *log.Logger
}

// Engine implements transaction.Engine on top of the click tool.
type Engine struct {
	sys    System
	opts   Options
	logger *log.Logger
}

// NewEngine returns an engine using sys for all OS access.
func NewEngine(sys System, opts Options) (*Engine, error) {
	if sys == nil {
		return nil, errors.New(messages.EngineSystemRequired)
	}
	if strings.TrimSpace(opts.Root) == "" {
		return nil, errors.New(messages.EngineRootRequired)
	}
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.LockPath == "" {
		opts.LockPath = filepath.Join(opts.Root, LockFileName)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{sys: sys, opts: opts, logger: logger}, nil
}

// Audit checks that path is a readable package and returns its name and version.
// Nothing under the install root is touched.
func (e *Engine) Audit(ctx context.Context, path string) (pk.PackageID, error) {
	info, err := e.sys.Stat(path)
	if err != nil {
		return pk.PackageID{}, fmt.Errorf(messages.EngineStatFileFmt, path, err)
	}
	if !info.Mode().IsRegular() {
		return pk.PackageID{}, fmt.Errorf(messages.EngineNotRegularFileFmt, path)
	}

	stdout, stderr, err := e.sys.RunCommand(ctx, e.opts.Binary, "info", path)
	if err != nil {
		return pk.PackageID{}, fmt.Errorf(messages.EngineAuditFailedFmt, path, commandDetail(stderr, err))
	}
	manifest, err := ParseManifest(stdout)
	if err != nil {
		return pk.PackageID{}, fmt.Errorf(messages.EngineInvalidManifestFmt, path, err)
	}
	e.logger.Debug("click info", "path", path, "name", manifest.Name, "version", manifest.Version, "framework", manifest.Framework)
	return pk.NewPackageID(manifest.Name, manifest.Version), nil
}

// Install installs path into the install root while holding the root lock.
func (e *Engine) Install(ctx context.Context, path string) error {
	if err := e.sys.MkdirAll(filepath.Dir(e.opts.LockPath), 0o755); err != nil {
		return fmt.Errorf(messages.EngineCreateLockDirFmt, err)
	}
	return withRootLock(e.opts.LockPath, func() error {
		args := e.installArgs(path)
		e.logger.Debug("click install", "args", strings.Join(args, " "))
		_, stderr, err := e.sys.RunCommand(ctx, e.opts.Binary, args...)
		if err != nil {
			return fmt.Errorf(messages.EngineInstallFailedFmt, path, commandDetail(stderr, err))
		}
		return nil
	})
}

func (e *Engine) installArgs(path string) []string {
	args := []string{"install", "--root=" + e.opts.Root}
	if e.opts.ForceMissingFramework {
		args = append(args, "--force-missing-framework")
	}
	return append(args, path)
}

// commandDetail prefers the tool's own diagnostics over the exec error.
func commandDetail(stderr []byte, err error) string {
	if detail := strings.TrimSpace(string(stderr)); detail != "" {
		return detail
	}
	return err.Error()
}
