// Package transaction runs the install-files transaction: each file is audited,
// reported, installed and reported in order, and the first failure ends the batch.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/conn-castle/click-backend/internal/backend"
	"github.com/conn-castle/click-backend/internal/messages"
	"github.com/conn-castle/click-backend/internal/pk"
)

// ErrNoPaths is returned by Run when the request holds no files.
var ErrNoPaths = errors.New(messages.TransactionErrNoPaths)

// ErrAlreadyRun is returned by Run on a transaction that was already used.
var ErrAlreadyRun = errors.New(messages.TransactionErrAlreadyRun)

// Engine audits and installs package files.
type Engine interface {
	// Audit validates the file without changing the system and returns its identity.
	Audit(ctx context.Context, path string) (pk.PackageID, error)
	// Install installs a file that passed Audit.
	Install(ctx context.Context, path string) error
}

// Options configures a transaction. The zero value is usable.
type Options struct {
	// Logger receives structured progress logs. Nil discards them.
	Logger *log.Logger
	// ID correlates log lines; a random UUID is used when empty.
	ID string
	// OnTransition is called after every state change.
	OnTransition func(from State, to State)
}

// Failure describes the file that stopped the transaction.
type Failure struct {
	Index int
	Path  string
	Kind  pk.ErrorKind
	Err   error
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Outcome is the terminal result of Run.
type Outcome struct {
	State     State
	Installed []pk.PackageID
	// Failure is nil when every file was installed.
	Failure *Failure
}

// Succeeded reports whether every requested file was installed.
func (o Outcome) Succeeded() bool {
	return o.State == StateSucceeded
}

// InstallTransaction is a single-use install-files transaction.
type InstallTransaction struct {
	id           string
	engine       Engine
	reporter     backend.Reporter
	logger       *log.Logger
	onTransition func(from State, to State)
	state        State
}

// New returns an idle transaction bound to engine and reporter.
func New(engine Engine, reporter backend.Reporter, opts Options) (*InstallTransaction, error) {
	if engine == nil {
		return nil, errors.New(messages.TransactionEngineRequired)
	}
	if reporter == nil {
		return nil, errors.New(messages.TransactionReporterRequired)
	}
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &InstallTransaction{
		id:           id,
		engine:       engine,
		reporter:     reporter,
		logger:       logger.With("transaction", id),
		onTransition: opts.OnTransition,
		state:        StateIdle,
	}, nil
}

// ID returns the transaction id used in logs.
func (t *InstallTransaction) ID() string {
	return t.id
}

// State returns the current state.
func (t *InstallTransaction) State() State {
	return t.state
}

// Run installs paths in order. Engine failures are reported to the daemon and
// returned in Outcome.Failure; the returned error is reserved for misuse and for
// reporter failures, after which nothing more can reach the daemon.
func (t *InstallTransaction) Run(ctx context.Context, paths []string) (Outcome, error) {
	if t.state != StateIdle {
		return Outcome{State: t.state}, ErrAlreadyRun
	}
	if len(paths) == 0 {
		return Outcome{State: t.state}, ErrNoPaths
	}

	t.logger.Info("starting install", "files", len(paths))
	t.transition(StateAnnouncing)
	if err := t.announce(); err != nil {
		return t.finish(Outcome{}, StateFailed), err
	}

	var outcome Outcome
	for i, path := range paths {
		id, failure, err := t.runFile(ctx, i, path)
		if failure != nil {
			outcome.Failure = failure
			t.logger.Error("install stopped", "index", i, "path", path, "kind", failure.Kind, "err", failure.Err)
			return t.finish(outcome, StateFailed), err
		}
		if err != nil {
			return t.finish(outcome, StateFailed), err
		}
		outcome.Installed = append(outcome.Installed, id)
	}

	t.logger.Info("install finished", "installed", len(outcome.Installed))
	return t.finish(outcome, StateSucceeded), nil
}

// announce emits the transaction-wide signals sent once before any file is touched.
func (t *InstallTransaction) announce() error {
	if err := t.reporter.ReportProgress(pk.PercentageUnknown); err != nil {
		return fmt.Errorf(messages.TransactionReportFmt, "progress", err)
	}
	if err := t.reporter.ReportStatus(pk.StatusInstall); err != nil {
		return fmt.Errorf(messages.TransactionReportFmt, "status", err)
	}
	if err := t.reporter.SetAllowCancel(false); err != nil {
		return fmt.Errorf(messages.TransactionReportFmt, "allow-cancel", err)
	}
	return nil
}

// runFile drives one file from AuditPending to Done or to a failure state.
func (t *InstallTransaction) runFile(ctx context.Context, index int, path string) (pk.PackageID, *Failure, error) {
	t.transition(StateAuditPending)
	t.transition(StateAuditing)
	id, err := t.engine.Audit(ctx, path)
	if err != nil {
		t.transition(StateAuditFailed)
		failure, reportErr := t.fail(index, path, pk.ErrorInvalidPackageFile, err)
		return pk.PackageID{}, failure, reportErr
	}
	if !id.Valid() {
		t.transition(StateAuditFailed)
		cause := fmt.Errorf(messages.TransactionInvalidPackageIDFmt, path, id.String())
		failure, reportErr := t.fail(index, path, pk.ErrorInvalidPackageFile, cause)
		return pk.PackageID{}, failure, reportErr
	}
	t.logger.Debug("audited", "path", path, "package", id.String())
	if err := t.reporter.ReportPackage(id, pk.InfoInstalling, ""); err != nil {
		return id, nil, fmt.Errorf(messages.TransactionReportFmt, "package", err)
	}

	t.transition(StateInstallPending)
	t.transition(StateInstalling)
	if err := t.engine.Install(ctx, path); err != nil {
		t.transition(StateInstallFailed)
		failure, reportErr := t.fail(index, path, pk.ErrorInternalError, err)
		return id, failure, reportErr
	}
	t.logger.Debug("installed", "path", path, "package", id.String())
	if err := t.reporter.ReportPackage(id, pk.InfoInstalled, ""); err != nil {
		return id, nil, fmt.Errorf(messages.TransactionReportFmt, "package", err)
	}
	t.transition(StateDone)
	return id, nil, nil
}

// fail reports the single error signal of the transaction.
func (t *InstallTransaction) fail(index int, path string, kind pk.ErrorKind, cause error) (*Failure, error) {
	failure := &Failure{Index: index, Path: path, Kind: kind, Err: cause}
	if err := t.reporter.ReportError(kind, cause.Error()); err != nil {
		return failure, fmt.Errorf(messages.TransactionReportFmt, "error", err)
	}
	return failure, nil
}

func (t *InstallTransaction) finish(outcome Outcome, state State) Outcome {
	t.transition(state)
	outcome.State = state
	return outcome
}

func (t *InstallTransaction) transition(to State) {
	from := t.state
	t.state = to
	if t.onTransition != nil {
		t.onTransition(from, to)
	}
}
