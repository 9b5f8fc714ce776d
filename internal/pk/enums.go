// Package pk holds the PackageKit vocabulary spoken by backend helpers: status, info and
// error enums, package ids, and transaction flags.
package pk

// PercentageUnknown is the percentage value that tells the daemon progress is unknown.
const PercentageUnknown = 101

// Status is a transaction-wide state.
type Status string

// Status values reported by this backend.
const (
	StatusInstall Status = "install"
)

// Valid reports whether s is a status this backend may emit.
func (s Status) Valid() bool {
	switch s {
	case StatusInstall:
		return true
	}
	return false
}

// Info is the lifecycle phase attached to a package event.
type Info string

// Info values reported by this backend.
const (
	InfoInstalling Info = "installing"
	InfoInstalled  Info = "installed"
)

// Valid reports whether i is an info value this backend may emit.
func (i Info) Valid() bool {
	switch i {
	case InfoInstalling, InfoInstalled:
		return true
	}
	return false
}

// ErrorKind is the error enum sent with an error report.
type ErrorKind string

// ErrorKind values reported by this backend.
const (
	// ErrorInvalidPackageFile reports a file that failed audit.
	ErrorInvalidPackageFile ErrorKind = "invalid-package-file"
	// ErrorInternalError reports a file that passed audit but failed to install.
	ErrorInternalError ErrorKind = "internal-error"
	// ErrorNotSupported reports a role this backend does not implement.
	ErrorNotSupported ErrorKind = "not-supported"
	// ErrorTransactionError reports a malformed request from the daemon.
	ErrorTransactionError ErrorKind = "transaction-error"
)

// Valid reports whether k is an error kind this backend may emit.
func (k ErrorKind) Valid() bool {
	switch k {
	case ErrorInvalidPackageFile, ErrorInternalError, ErrorNotSupported, ErrorTransactionError:
		return true
	}
	return false
}
