package messages

// CLI messages for the helper entry point.
const (
	// RootUse is the CLI command name.
	RootUse = "click-backend"
	// RootShort is the short description for the root command.
	RootShort = "PackageKit backend helper for click packages"
	RootLong  = "Spawned by the PackageKit click backend. With no arguments it reads tab-separated\ncommands from stdin; otherwise it runs the single command given on the command line."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallFilesShort describes the install-files command.
	InstallFilesShort = "Install local package files (flags, |-joined paths)"

	// InteractiveHint is printed when the command loop reads from a terminal.
	InteractiveHint = "reading tab-separated commands from stdin; send \"exit\" or EOF to stop"
)
