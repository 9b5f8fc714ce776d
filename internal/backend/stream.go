package backend

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/conn-castle/click-backend/internal/messages"
	"github.com/conn-castle/click-backend/internal/pk"
)

// Line protocol commands understood by the daemon.
const (
	CommandPercentage          = "percentage"
	CommandNoPercentageUpdates = "no-percentage-updates"
	CommandStatus              = "status"
	CommandAllowCancel         = "allow-cancel"
	CommandPackage             = "package"
	CommandError               = "error"
	CommandFinished            = "finished"
)

// StreamReporter writes one tab-separated line per event, as read by the daemon
// from a spawned helper's stdout.
type StreamReporter struct {
	w io.Writer
}

// NewStreamReporter returns a reporter writing to w.
func NewStreamReporter(w io.Writer) *StreamReporter {
	return &StreamReporter{w: w}
}

// ReportProgress writes a percentage line, or no-percentage-updates when unknown.
func (r *StreamReporter) ReportProgress(percent int) error {
	if percent == pk.PercentageUnknown {
		return r.writeLine(CommandNoPercentageUpdates)
	}
	if percent < 0 || percent > 100 {
		return fmt.Errorf(messages.ReporterPercentageRangeFmt, percent)
	}
	return r.writeLine(CommandPercentage, strconv.Itoa(percent))
}

// ReportStatus writes a status line.
func (r *StreamReporter) ReportStatus(status pk.Status) error {
	if !status.Valid() {
		return fmt.Errorf(messages.ReporterInvalidStatusFmt, status)
	}
	return r.writeLine(CommandStatus, string(status))
}

// SetAllowCancel writes an allow-cancel line.
func (r *StreamReporter) SetAllowCancel(allow bool) error {
	return r.writeLine(CommandAllowCancel, strconv.FormatBool(allow))
}

// ReportPackage writes a package line.
func (r *StreamReporter) ReportPackage(id pk.PackageID, info pk.Info, summary string) error {
	if !info.Valid() {
		return fmt.Errorf(messages.ReporterInvalidInfoFmt, info)
	}
	if !id.Valid() {
		return fmt.Errorf(messages.ReporterInvalidPackageIDFmt, id.String())
	}
	return r.writeLine(CommandPackage, string(info), id.String(), sanitize(summary))
}

// ReportError writes an error line.
func (r *StreamReporter) ReportError(kind pk.ErrorKind, message string) error {
	if !kind.Valid() {
		return fmt.Errorf(messages.ReporterInvalidErrorFmt, kind)
	}
	return r.writeLine(CommandError, string(kind), sanitize(message))
}

// Finished writes a finished line.
func (r *StreamReporter) Finished() error {
	return r.writeLine(CommandFinished)
}

func (r *StreamReporter) writeLine(command string, fields ...string) error {
	line := strings.Join(append([]string{command}, fields...), "\t")
	if _, err := io.WriteString(r.w, line+"\n"); err != nil {
		return fmt.Errorf(messages.ReporterWriteFmt, command, err)
	}
	return nil
}

// sanitize makes free text safe for a single protocol field.
// Line breaks become ";", which the daemon turns back into newlines.
func sanitize(text string) string {
	text = strings.TrimRight(text, "\r\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n", ";")
	return strings.ReplaceAll(text, "\t", " ")
}
