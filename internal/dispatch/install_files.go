package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/conn-castle/click-backend/internal/messages"
	"github.com/conn-castle/click-backend/internal/pk"
	"github.com/conn-castle/click-backend/internal/transaction"
)

// FilenameDelim joins the file list passed to install-files.
const FilenameDelim = "|"

// installFiles handles `install-files <transaction_flags> <path|path|...>`.
func (d *Dispatcher) installFiles(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return d.rejectRequest(fmt.Sprintf(messages.DispatchInstallFilesArgsFmt, len(args)))
	}
	flags, err := pk.ParseTransactionFlags(args[0])
	if err != nil {
		return d.rejectRequest(err.Error())
	}
	paths := SplitPaths(args[1])
	if len(paths) == 0 {
		return d.rejectRequest(messages.DispatchNoFiles)
	}

	tx, err := transaction.New(d.engine, d.reporter, transaction.Options{Logger: d.logger})
	if err != nil {
		return err
	}
	d.logger.Info("install-files", "transaction", tx.ID(), "flags", flags.String(), "files", len(paths))

	outcome, err := tx.Run(ctx, paths)
	if err != nil {
		return err
	}
	if !outcome.Succeeded() {
		return fmt.Errorf("%w: %w", ErrTransactionFailed, outcome.Failure)
	}
	return nil
}

// rejectRequest reports a malformed request and fails the command.
func (d *Dispatcher) rejectRequest(detail string) error {
	if err := d.reporter.ReportError(pk.ErrorTransactionError, detail); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", ErrTransactionFailed, detail)
}

// SplitPaths splits a FilenameDelim-joined file list, dropping empty entries.
// Paths are kept byte for byte; file names may begin or end with spaces.
func SplitPaths(raw string) []string {
	var paths []string
	for _, path := range strings.Split(raw, FilenameDelim) {
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}
