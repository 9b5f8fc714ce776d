// Package logging builds the stderr logger. Stdout belongs to the daemon protocol,
// so nothing here may write to it.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/click-backend/internal/messages"
)

// Prefix tags every log line from the helper.
const Prefix = "click-backend"

// New returns a logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf(messages.LoggingInvalidLevelFmt, level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}), nil
}
