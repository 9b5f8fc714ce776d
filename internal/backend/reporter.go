// Package backend implements the reporting side of a PackageKit spawned helper.
package backend

import (
	"github.com/conn-castle/click-backend/internal/pk"
)

// Reporter is the set of callbacks a transaction uses to talk to the daemon.
type Reporter interface {
	// ReportProgress reports the transaction percentage, or pk.PercentageUnknown.
	ReportProgress(percent int) error
	ReportStatus(status pk.Status) error
	SetAllowCancel(allow bool) error
	ReportPackage(id pk.PackageID, info pk.Info, summary string) error
	ReportError(kind pk.ErrorKind, message string) error
	// Finished tells the daemon the current command completed.
	Finished() error
}
