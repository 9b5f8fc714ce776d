// Package dispatch routes PackageKit helper commands to their handlers, either once
// from the command line or in a loop over commands read from stdin.
package dispatch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/click-backend/internal/backend"
	"github.com/conn-castle/click-backend/internal/messages"
	"github.com/conn-castle/click-backend/internal/pk"
	"github.com/conn-castle/click-backend/internal/transaction"
)

// Helper commands handled by the dispatcher.
const (
	CommandInstallFiles = "install-files"
	CommandExit         = "exit"
)

// ErrTransactionFailed signals that an error was already reported to the daemon
// and the helper should exit without a finished line.
var ErrTransactionFailed = errors.New(messages.DispatchErrTransactionFailed)

// maxLineSize bounds one stdin command line; install-files may carry many paths.
const maxLineSize = 1 << 20

// Dispatcher runs helper commands against one engine and one reporter.
type Dispatcher struct {
	engine   transaction.Engine
	reporter backend.Reporter
	logger   *log.Logger
}

// New returns a dispatcher. A nil logger discards logs.
func New(engine transaction.Engine, reporter backend.Reporter, logger *log.Logger) (*Dispatcher, error) {
	if engine == nil {
		return nil, errors.New(messages.TransactionEngineRequired)
	}
	if reporter == nil {
		return nil, errors.New(messages.TransactionReporterRequired)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{engine: engine, reporter: reporter, logger: logger}, nil
}

// Dispatch runs a single command and writes finished when it completes.
// It returns ErrTransactionFailed when the command reported a fatal error.
func (d *Dispatcher) Dispatch(ctx context.Context, command string, args []string) error {
	d.logger.Debug("dispatch", "command", command, "args", len(args))
	var err error
	switch command {
	case CommandInstallFiles:
		err = d.installFiles(ctx, args)
	default:
		err = d.notSupported(command)
	}
	if err != nil {
		return err
	}
	return d.reporter.Finished()
}

// Serve reads tab-separated commands from r until EOF or an exit command.
// The first fatal command error stops the loop.
func (d *Dispatcher) Serve(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if fields[0] == CommandExit {
			return nil
		}
		if err := d.Dispatch(ctx, fields[0], fields[1:]); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf(messages.DispatchReadStdinFmt, err)
	}
	return nil
}

// notSupported reports an unimplemented role; the command still counts as completed.
func (d *Dispatcher) notSupported(command string) error {
	d.logger.Warn("unsupported command", "command", command)
	return d.reporter.ReportError(pk.ErrorNotSupported, fmt.Sprintf(messages.DispatchNotSupportedFmt, command))
}
