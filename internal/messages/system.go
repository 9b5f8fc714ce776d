package messages

// System messages for the install engine, the transaction and the dispatcher.
const (
	// EngineSystemRequired indicates a nil System was passed to the engine.
	EngineSystemRequired           = "engine system is required"
	EngineRootRequired             = "engine install root is required"
	EngineStatFileFmt              = "cannot read package file %s: %w"
	EngineNotRegularFileFmt        = "package file %s is not a regular file"
	EngineAuditFailedFmt           = "audit %s: %s"
	EngineInstallFailedFmt         = "install %s: %s"
	EngineInvalidManifestFmt       = "invalid manifest for %s: %w"
	EngineManifestFieldFmt         = "manifest field %q is missing or empty"
	EngineManifestFieldReservedFmt = "manifest field %q has a character not allowed in a package id: %q"
	EngineCreateLockDirFmt         = "create lock dir: %w"
	EngineOpenLockFmt              = "open lock %s: %w"
	EngineLockFmt                  = "lock %s: %w"
	EngineLockTimeoutFmt           = "timed out after %s waiting for install root lock"
	EngineErrInvalidManifest       = "invalid click manifest"

	// TransactionErrNoPaths indicates an install request without files.
	TransactionErrNoPaths          = "install request contains no package files"
	TransactionErrAlreadyRun       = "install transaction has already run"
	TransactionReporterRequired    = "transaction reporter is required"
	TransactionEngineRequired      = "transaction engine is required"
	TransactionReportFmt           = "report %s: %w"
	TransactionInvalidPackageIDFmt = "audit %s: package id %q cannot be reported"

	// DispatchErrTransactionFailed indicates the transaction reported an error to the host.
	DispatchErrTransactionFailed = "transaction failed"
	DispatchNotSupportedFmt      = "This function is not implemented in this backend: %s"
	DispatchInstallFilesArgsFmt  = "install-files expects <transaction_flags> <files>, got %d argument(s)"
	DispatchNoFiles              = "install-files requires at least one file"
	DispatchUnknownFlagFmt       = "unknown transaction flag %q"
	DispatchReadStdinFmt         = "read dispatcher input: %w"

	// ReporterPercentageRangeFmt indicates a progress value outside 0..100.
	ReporterPercentageRangeFmt  = "percentage %d out of range 0..100"
	ReporterInvalidInfoFmt      = "invalid package info %q"
	ReporterInvalidErrorFmt     = "invalid error kind %q"
	ReporterInvalidStatusFmt    = "invalid status %q"
	ReporterInvalidPackageIDFmt = "invalid package id %q"
	ReporterWriteFmt            = "write %s line: %w"
)
